package service

import (
	"FlashDeck/internal/model"
	"FlashDeck/internal/repo"
	"context"

	"go.uber.org/zap"
)

// DeckService — операции над колодами поверх репозитория.
// Каждая операция обращается к хранилищу ровно один раз.
type DeckService struct {
	repo   repo.DeckRepository
	logger *zap.SugaredLogger
}

func NewDeckService(r repo.DeckRepository, logger *zap.SugaredLogger) *DeckService {
	return &DeckService{repo: r, logger: logger}
}

// DeckInput — тело создания колоды. Name не проверяется: пустое имя отклонит хранилище.
type DeckInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// DeckPatch — частичное обновление колоды.
type DeckPatch struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
}

func (p DeckPatch) updates() map[string]any {
	u := map[string]any{}
	p.Name.apply(u, "name")
	p.Description.apply(u, "description")
	return u
}

func (s *DeckService) List(ctx context.Context) ([]model.Deck, error) {
	decks, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, "Failed to fetch decks", "")
	}
	return decks, nil
}

func (s *DeckService) Create(ctx context.Context, in DeckInput) (*model.Deck, error) {
	d := &model.Deck{Name: in.Name, Description: in.Description}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, storeError(err, "Failed to create deck", "")
	}
	s.logger.Debugw("deck created", "id", d.ID)
	return d, nil
}

func (s *DeckService) Get(ctx context.Context, id string) (*model.Deck, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Failed to fetch deck", "Deck not found")
	}
	return d, nil
}

func (s *DeckService) Update(ctx context.Context, id string, patch DeckPatch) (*model.Deck, error) {
	d, err := s.repo.Update(ctx, id, patch.updates())
	if err != nil {
		return nil, storeError(err, "Failed to update deck", "Deck not found")
	}
	return d, nil
}

// Delete удаляет колоду; карточки колоды удаляются каскадно.
func (s *DeckService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "Failed to delete deck", "Deck not found")
	}
	s.logger.Debugw("deck deleted", "id", id)
	return nil
}
