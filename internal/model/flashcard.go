package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flashcard — пара label/value, принадлежащая ровно одной колоде.
type Flashcard struct {
	ID     string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Label  string `gorm:"not null;check:chk_flashcards_label,label <> ''" json:"label"`
	Value  string `gorm:"not null;check:chk_flashcards_value,value <> ''" json:"value"`
	DeckID string `gorm:"type:varchar(64);not null;index" json:"deckId"` // ссылка на decks.id

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate генерирует id, если он не задан.
func (f *Flashcard) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
