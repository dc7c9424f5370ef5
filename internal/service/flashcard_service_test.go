package service

import (
	"FlashDeck/internal/apperr"
	"FlashDeck/internal/model"
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var driverDown = fmt.Errorf("dial: %w", driver.ErrBadConn)

func newFlashcardSvc() (*FlashcardService, *mockFlashcardRepo) {
	m := new(mockFlashcardRepo)
	return NewFlashcardService(m, zap.NewNop().Sugar()), m
}

func TestFlashcardService_Create(t *testing.T) {
	svc, m := newFlashcardSvc()
	ctx := context.Background()

	m.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Flashcard) bool {
		return f.Label == "hola" && f.Value == "hello" && f.DeckID == "D1"
	})).Return(nil).Once()
	f, err := svc.Create(ctx, FlashcardInput{Label: "hola", Value: "hello", DeckID: "D1"})
	require.NoError(t, err)
	assert.Equal(t, "D1", f.DeckID)

	m.On("Create", mock.Anything, mock.Anything).Return(errors.New("FOREIGN KEY constraint failed")).Once()
	_, err = svc.Create(ctx, FlashcardInput{Label: "a", Value: "b", DeckID: "ghost"})
	assert.Equal(t, apperr.Unknown, apperr.KindOf(err))

	m.AssertExpectations(t)
}

func TestFlashcardService_UpdateIgnoresDeckID(t *testing.T) {
	svc, m := newFlashcardSvc()
	m.On("Update", mock.Anything, "f1", map[string]any{"label": "new"}).
		Return(&model.Flashcard{ID: "f1", Label: "new", Value: "v", DeckID: "D1"}, nil).Once()

	f, err := svc.Update(context.Background(), "f1", FlashcardPatch{Label: Some("new")})
	require.NoError(t, err)
	assert.Equal(t, "D1", f.DeckID)
	m.AssertExpectations(t)
}

func TestFlashcardService_NotFoundPaths(t *testing.T) {
	svc, m := newFlashcardSvc()
	ctx := context.Background()

	m.On("GetByID", mock.Anything, "x").Return(nil, gorm.ErrRecordNotFound).Once()
	_, err := svc.Get(ctx, "x")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	m.On("Delete", mock.Anything, "x").Return(gorm.ErrRecordNotFound).Once()
	assert.ErrorIs(t, svc.Delete(ctx, "x"), apperr.ErrNotFound)

	m.On("Update", mock.Anything, "x", map[string]any{}).Return(nil, gorm.ErrRecordNotFound).Once()
	_, err = svc.Update(ctx, "x", FlashcardPatch{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFlashcardService_ListByDeck(t *testing.T) {
	svc, m := newFlashcardSvc()
	ctx := context.Background()

	m.On("ListByDeck", mock.Anything, "unknown").Return([]model.Flashcard{}, nil).Once()
	cards, err := svc.ListByDeck(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, cards)

	m.On("ListByDeck", mock.Anything, "D1").Return(nil, driverDown).Once()
	_, err = svc.ListByDeck(ctx, "D1")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.StoreUnavailable, ae.Kind)
	assert.Equal(t, "Failed to fetch flashcards", ae.Message)
}
