package service

import (
	"FlashDeck/internal/model"
	"FlashDeck/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// Моки для DeckRepository и FlashcardRepository
type mockDeckRepo struct{ mock.Mock }

func (m *mockDeckRepo) List(ctx context.Context) ([]model.Deck, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Deck); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDeckRepo) Create(ctx context.Context, d *model.Deck) error {
	return m.Called(ctx, d).Error(0)
}
func (m *mockDeckRepo) GetByID(ctx context.Context, id string) (*model.Deck, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Deck); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDeckRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Deck, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Deck); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDeckRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.DeckRepository = (*mockDeckRepo)(nil)

type mockFlashcardRepo struct{ mock.Mock }

func (m *mockFlashcardRepo) Create(ctx context.Context, f *model.Flashcard) error {
	return m.Called(ctx, f).Error(0)
}
func (m *mockFlashcardRepo) GetByID(ctx context.Context, id string) (*model.Flashcard, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Flashcard); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFlashcardRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Flashcard, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Flashcard); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFlashcardRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockFlashcardRepo) ListByDeck(ctx context.Context, deckID string) ([]model.Flashcard, error) {
	args := m.Called(ctx, deckID)
	if v, ok := args.Get(0).([]model.Flashcard); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.FlashcardRepository = (*mockFlashcardRepo)(nil)
