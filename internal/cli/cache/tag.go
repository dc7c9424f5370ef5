package cache

import "fmt"

// Типы сущностей для тегов.
const (
	DeckType      = "Deck"
	FlashcardType = "Flashcard"
)

// ListID: ключ тега полного списка сущностей.
const ListID = "LIST"

// Tag связывает закешированный результат с мутациями, которые его инвалидируют.
type Tag struct {
	Type string
	ID   string
}

func (t Tag) String() string { return t.Type + ":" + t.ID }

// ListTag: тег коллекции.
func ListTag(entityType string) Tag { return Tag{Type: entityType, ID: ListID} }

// DeckTag: тег списка карточек конкретной колоды.
func DeckTag(deckID string) Tag {
	return Tag{Type: FlashcardType, ID: fmt.Sprintf("DECK-%s", deckID)}
}
