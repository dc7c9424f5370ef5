package repo

import (
	"FlashDeck/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFlashcardRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	dr := NewDeckRepository(db)
	r := NewFlashcardRepository(db)
	ctx := context.Background()

	d := mustCreateDeck(t, dr, "Spanish")

	f := &model.Flashcard{Label: "hola", Value: "hello", DeckID: d.ID}
	require.NoError(t, r.Create(ctx, f))
	assert.NotEmpty(t, f.ID)

	got, err := r.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "hola", got.Label)
	assert.Equal(t, d.ID, got.DeckID)

	// частичное обновление: меняем только value
	upd, err := r.Update(ctx, f.ID, map[string]any{"value": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hola", upd.Label)
	assert.Equal(t, "hi", upd.Value)

	require.NoError(t, r.Delete(ctx, f.ID))
	_, err = r.GetByID(ctx, f.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, r.Delete(ctx, f.ID), gorm.ErrRecordNotFound)
	_, err = r.Update(ctx, f.ID, map[string]any{"label": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFlashcardRepository_ListByDeck(t *testing.T) {
	db := newTestDB(t)
	dr := NewDeckRepository(db)
	r := NewFlashcardRepository(db)
	ctx := context.Background()

	d1 := mustCreateDeck(t, dr, "D1")
	d2 := mustCreateDeck(t, dr, "D2")

	require.NoError(t, r.Create(ctx, &model.Flashcard{Label: "a", Value: "1", DeckID: d1.ID}))
	require.NoError(t, r.Create(ctx, &model.Flashcard{Label: "b", Value: "2", DeckID: d1.ID}))
	require.NoError(t, r.Create(ctx, &model.Flashcard{Label: "c", Value: "3", DeckID: d2.ID}))

	l1, err := r.ListByDeck(ctx, d1.ID)
	require.NoError(t, err)
	assert.Len(t, l1, 2)

	l2, err := r.ListByDeck(ctx, d2.ID)
	require.NoError(t, err)
	if assert.Len(t, l2, 1) {
		assert.Equal(t, "c", l2[0].Label)
	}

	// неизвестная колода — пустой список, не ошибка
	none, err := r.ListByDeck(ctx, "no-such-deck")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFlashcardRepository_Create_RejectedByStore(t *testing.T) {
	db := newTestDB(t)
	r := NewFlashcardRepository(db)
	d := mustCreateDeck(t, NewDeckRepository(db), "D")
	ctx := context.Background()

	// пустые label/value
	assert.Error(t, r.Create(ctx, &model.Flashcard{DeckID: d.ID}))
	// ссылка на несуществующую колоду
	assert.Error(t, r.Create(ctx, &model.Flashcard{Label: "a", Value: "b", DeckID: "ghost"}))
}
