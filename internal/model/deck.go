package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deck — именованная коллекция карточек.
type Deck struct {
	ID          string  `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string  `gorm:"not null;check:chk_decks_name,name <> ''" json:"name"`
	Description *string `json:"description"`

	// Связи
	Flashcards []Flashcard `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate генерирует id, если он не задан.
func (d *Deck) BeforeCreate(*gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
