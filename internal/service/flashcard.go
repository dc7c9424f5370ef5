package service

import (
	"FlashDeck/internal/model"
	"FlashDeck/internal/repo"
	"context"

	"go.uber.org/zap"
)

// FlashcardService — операции над карточками.
type FlashcardService struct {
	repo   repo.FlashcardRepository
	logger *zap.SugaredLogger
}

func NewFlashcardService(r repo.FlashcardRepository, logger *zap.SugaredLogger) *FlashcardService {
	return &FlashcardService{repo: r, logger: logger}
}

// FlashcardInput — тело создания карточки; поля передаются в хранилище как есть.
type FlashcardInput struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	DeckID string `json:"deckId"`
}

// FlashcardPatch — частичное обновление. deckId не меняется.
type FlashcardPatch struct {
	Label Optional[string] `json:"label"`
	Value Optional[string] `json:"value"`
}

func (p FlashcardPatch) updates() map[string]any {
	u := map[string]any{}
	p.Label.apply(u, "label")
	p.Value.apply(u, "value")
	return u
}

func (s *FlashcardService) Create(ctx context.Context, in FlashcardInput) (*model.Flashcard, error) {
	f := &model.Flashcard{Label: in.Label, Value: in.Value, DeckID: in.DeckID}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, storeError(err, "Failed to create flashcard", "")
	}
	s.logger.Debugw("flashcard created", "id", f.ID, "deck_id", f.DeckID)
	return f, nil
}

func (s *FlashcardService) Get(ctx context.Context, id string) (*model.Flashcard, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Failed to fetch flashcard", "Flashcard not found")
	}
	return f, nil
}

func (s *FlashcardService) Update(ctx context.Context, id string, patch FlashcardPatch) (*model.Flashcard, error) {
	f, err := s.repo.Update(ctx, id, patch.updates())
	if err != nil {
		return nil, storeError(err, "Failed to update flashcard", "Flashcard not found")
	}
	return f, nil
}

func (s *FlashcardService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "Failed to delete flashcard", "Flashcard not found")
	}
	return nil
}

// ListByDeck не проверяет существование колоды: неизвестный id даёт пустой список.
func (s *FlashcardService) ListByDeck(ctx context.Context, deckID string) ([]model.Flashcard, error) {
	cards, err := s.repo.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, storeError(err, "Failed to fetch flashcards", "")
	}
	return cards, nil
}
