package commands

import (
	"context"
	"testing"

	"FlashDeck/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCards_AddListEditRemove(t *testing.T) {
	cfg := withServer(t)
	ctx := context.Background()

	out := withStdoutCapture(t, func() {
		require.NoError(t, (deckAddCmd{}).Run(ctx, cfg, []string{"D1"}))
	})
	deckID := idFrom(t, out)

	out = withStdoutCapture(t, func() {
		require.NoError(t, (cardsCmd{}).Run(ctx, cfg, []string{deckID}))
	})
	assert.Contains(t, out, "Нет карточек")

	out = withStdoutCapture(t, func() {
		require.NoError(t, (cardAddCmd{}).Run(ctx, cfg, []string{deckID, "hola", "hello"}))
	})
	cardID := idFrom(t, out)

	out = withStdoutCapture(t, func() {
		require.NoError(t, (cardsCmd{}).Run(ctx, cfg, []string{deckID}))
	})
	assert.Contains(t, out, cardID+"  hola = hello")

	out = withStdoutCapture(t, func() {
		require.NoError(t, (cardEditCmd{}).Run(ctx, cfg, []string{cardID, deckID, "--value", "hi"}))
	})
	assert.Contains(t, out, "label: hola")
	assert.Contains(t, out, "value: hi")

	withInput(t, "yes\n")
	out = withStdoutCapture(t, func() {
		require.NoError(t, (cardRmCmd{}).Run(ctx, cfg, []string{cardID}))
	})
	assert.Contains(t, out, "Flashcard deleted successfully")

	out = withStdoutCapture(t, func() {
		require.NoError(t, (cardsCmd{}).Run(ctx, cfg, []string{deckID}))
	})
	assert.Contains(t, out, "Нет карточек")
}

func TestCards_UnknownDeckIsEmpty(t *testing.T) {
	cfg := withServer(t)
	out := withStdoutCapture(t, func() {
		require.NoError(t, (cardsCmd{}).Run(context.Background(), cfg, []string{"nope"}))
	})
	assert.Contains(t, out, "Нет карточек")
}

func TestCardAdd_RequiredFields(t *testing.T) {
	cfg := withServer(t)
	err := (cardAddCmd{}).Run(context.Background(), cfg, []string{"D1", "hola", ""})
	require.Error(t, err)
	assert.Equal(t, "value is required", err.Error())
}

func TestCardCommands_UsageAndErrors(t *testing.T) {
	ctx := context.Background()
	cfg := withServer(t)
	assert.ErrorIs(t, (cardsCmd{}).Run(ctx, cfg, nil), ErrUsage)
	assert.ErrorIs(t, (cardAddCmd{}).Run(ctx, cfg, []string{"d", "l"}), ErrUsage)
	assert.ErrorIs(t, (cardEditCmd{}).Run(ctx, cfg, []string{"id", "deck"}), ErrUsage)
	assert.ErrorIs(t, (cardRmCmd{}).Run(ctx, cfg, []string{}), ErrUsage)

	err := (cardsCmd{}).Run(ctx, cfg, []string{"bad id"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	err = (cardRmCmd{}).Run(ctx, cfg, []string{"--yes", "ghost"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
