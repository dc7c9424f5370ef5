package model

import "time"

// Flashcard: карточка (label/value), принадлежащая одной колоде.
type Flashcard struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Value     string    `json:"value"`
	DeckID    string    `json:"deckId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
