package model

// DeckInput: тело создания колоды.
type DeckInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// DeckUpdate: частичное обновление колоды: nil-поля не отправляются,
// пустое описание отправляется как null.
type DeckUpdate struct {
	ID          string
	Name        *string
	Description *string
}

// FlashcardInput: тело создания карточки.
type FlashcardInput struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	DeckID string `json:"deckId"`
}

// FlashcardUpdate: частичное обновление карточки. DeckID нужен только для тегов кеша.
type FlashcardUpdate struct {
	ID     string
	DeckID string
	Label  *string
	Value  *string
}
