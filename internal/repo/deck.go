package repo

import (
	"FlashDeck/internal/model"
	"context"

	"gorm.io/gorm"
)

// DeckRepository определяет контракт доступа к Deck для слоя сервиса.
// Отсутствующая запись сообщается через gorm.ErrRecordNotFound.
type DeckRepository interface {
	// List возвращает все колоды в порядке хранилища.
	List(ctx context.Context) ([]model.Deck, error)

	// Create сохраняет новую колоду; id и временные метки заполняются при вставке.
	Create(ctx context.Context, d *model.Deck) error

	// GetByID находит колоду по id.
	GetByID(ctx context.Context, id string) (*model.Deck, error)

	// Update применяет частичное обновление и возвращает актуальную запись.
	Update(ctx context.Context, id string, updates map[string]any) (*model.Deck, error)

	// Delete удаляет колоду вместе с её карточками.
	Delete(ctx context.Context, id string) error
}

type deckRepo struct {
	db *gorm.DB
}

// NewDeckRepository создаёт реализацию репозитория для Deck.
func NewDeckRepository(db *gorm.DB) DeckRepository {
	return &deckRepo{db: db}
}

func (r *deckRepo) List(ctx context.Context) ([]model.Deck, error) {
	decks := []model.Deck{}
	if err := r.db.WithContext(ctx).Find(&decks).Error; err != nil {
		return nil, err
	}
	return decks, nil
}

func (r *deckRepo) Create(ctx context.Context, d *model.Deck) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *deckRepo) GetByID(ctx context.Context, id string) (*model.Deck, error) {
	var d model.Deck
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *deckRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Deck, error) {
	if updates == nil {
		updates = map[string]any{}
	}
	tx := r.db.WithContext(ctx).Model(&model.Deck{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete удаляет карточки колоды и саму колоду в одной транзакции.
func (r *deckRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deck_id = ?", id).Delete(&model.Flashcard{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Deck{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
