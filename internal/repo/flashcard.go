package repo

import (
	"FlashDeck/internal/model"
	"context"

	"gorm.io/gorm"
)

// FlashcardRepository определяет контракт доступа к Flashcard.
type FlashcardRepository interface {
	Create(ctx context.Context, f *model.Flashcard) error
	GetByID(ctx context.Context, id string) (*model.Flashcard, error)
	Update(ctx context.Context, id string, updates map[string]any) (*model.Flashcard, error)
	Delete(ctx context.Context, id string) error

	// ListByDeck возвращает карточки колоды; существование колоды не проверяется.
	ListByDeck(ctx context.Context, deckID string) ([]model.Flashcard, error)
}

type flashcardRepo struct {
	db *gorm.DB
}

// NewFlashcardRepository создаёт реализацию репозитория для Flashcard.
func NewFlashcardRepository(db *gorm.DB) FlashcardRepository {
	return &flashcardRepo{db: db}
}

func (r *flashcardRepo) Create(ctx context.Context, f *model.Flashcard) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *flashcardRepo) GetByID(ctx context.Context, id string) (*model.Flashcard, error) {
	var f model.Flashcard
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *flashcardRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Flashcard, error) {
	if updates == nil {
		updates = map[string]any{}
	}
	tx := r.db.WithContext(ctx).Model(&model.Flashcard{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *flashcardRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Flashcard{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *flashcardRepo) ListByDeck(ctx context.Context, deckID string) ([]model.Flashcard, error) {
	cards := []model.Flashcard{}
	if err := r.db.WithContext(ctx).Where("deck_id = ?", deckID).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}
