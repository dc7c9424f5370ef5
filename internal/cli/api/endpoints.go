package api

import (
	"net/http"

	"FlashDeck/internal/cli/cache"
	"FlashDeck/internal/cli/model"
)

// Message: ответ сервера на удаление.
type Message struct {
	Message string `json:"message"`
}

// Реестр операций API: по одной на каждый эндпоинт сервера.
var (
	GetDecks = Query[NoArg, []model.Deck]{
		Name: "getDecks",
		Path: "/decks",
		ProvidesTags: func(res []model.Deck, _ NoArg) []cache.Tag {
			return append(itemTags(cache.DeckType, res, deckID), cache.ListTag(cache.DeckType))
		},
	}

	GetDeck = Query[string, model.Deck]{
		Name:  "getDeck",
		Path:  "/decks/{id}",
		Param: ident,
		ProvidesTags: func(_ model.Deck, id string) []cache.Tag {
			return []cache.Tag{{Type: cache.DeckType, ID: id}}
		},
	}

	CreateDeck = Mutation[model.DeckInput, model.Deck]{
		Name:   "createDeck",
		Method: http.MethodPost,
		Path:   "/decks",
		Body:   func(in model.DeckInput) any { return in },
		InvalidatesTags: func(model.DeckInput) []cache.Tag {
			return []cache.Tag{cache.ListTag(cache.DeckType)}
		},
	}

	UpdateDeck = Mutation[model.DeckUpdate, model.Deck]{
		Name:   "updateDeck",
		Method: http.MethodPut,
		Path:   "/decks/{id}",
		Param:  func(u model.DeckUpdate) string { return u.ID },
		Body: func(u model.DeckUpdate) any {
			body := map[string]any{}
			if u.Name != nil {
				body["name"] = *u.Name
			}
			switch {
			case u.Description == nil:
			case *u.Description == "":
				// пустое описание очищает поле так же, как при создании без описания
				body["description"] = nil
			default:
				body["description"] = *u.Description
			}
			return body
		},
		InvalidatesTags: func(u model.DeckUpdate) []cache.Tag {
			return []cache.Tag{{Type: cache.DeckType, ID: u.ID}}
		},
	}

	DeleteDeck = Mutation[string, Message]{
		Name:   "deleteDeck",
		Method: http.MethodDelete,
		Path:   "/decks/{id}",
		Param:  ident,
		InvalidatesTags: func(id string) []cache.Tag {
			return []cache.Tag{{Type: cache.DeckType, ID: id}}
		},
	}

	GetFlashcardsByDeckID = Query[string, []model.Flashcard]{
		Name:  "getFlashcardsByDeckId",
		Path:  "/flashcards/deck/{deckId}",
		Param: ident,
		ProvidesTags: func(res []model.Flashcard, deckID string) []cache.Tag {
			return append(itemTags(cache.FlashcardType, res, flashcardID),
				cache.ListTag(cache.FlashcardType),
				cache.DeckTag(deckID),
			)
		},
	}

	GetFlashcard = Query[string, model.Flashcard]{
		Name:  "getFlashcard",
		Path:  "/flashcards/{id}",
		Param: ident,
		ProvidesTags: func(_ model.Flashcard, id string) []cache.Tag {
			return []cache.Tag{{Type: cache.FlashcardType, ID: id}}
		},
	}

	CreateFlashcard = Mutation[model.FlashcardInput, model.Flashcard]{
		Name:   "createFlashcard",
		Method: http.MethodPost,
		Path:   "/flashcards",
		Body:   func(in model.FlashcardInput) any { return in },
		InvalidatesTags: func(in model.FlashcardInput) []cache.Tag {
			return []cache.Tag{cache.ListTag(cache.FlashcardType), cache.DeckTag(in.DeckID)}
		},
	}

	UpdateFlashcard = Mutation[model.FlashcardUpdate, model.Flashcard]{
		Name:   "updateFlashcard",
		Method: http.MethodPut,
		Path:   "/flashcards/{id}",
		Param:  func(u model.FlashcardUpdate) string { return u.ID },
		Body: func(u model.FlashcardUpdate) any {
			body := map[string]any{}
			if u.Label != nil {
				body["label"] = *u.Label
			}
			if u.Value != nil {
				body["value"] = *u.Value
			}
			return body
		},
		InvalidatesTags: func(u model.FlashcardUpdate) []cache.Tag {
			return []cache.Tag{{Type: cache.FlashcardType, ID: u.ID}, cache.DeckTag(u.DeckID)}
		},
	}

	// DeleteFlashcard инвалидирует только тег самой карточки, тег списка колоды не трогается.
	DeleteFlashcard = Mutation[string, Message]{
		Name:   "deleteFlashcard",
		Method: http.MethodDelete,
		Path:   "/flashcards/{id}",
		Param:  ident,
		InvalidatesTags: func(id string) []cache.Tag {
			return []cache.Tag{{Type: cache.FlashcardType, ID: id}}
		},
	}
)

// Endpoints перечисляет все операции реестра.
func Endpoints() []Endpoint {
	return []Endpoint{
		GetDecks.Endpoint(),
		GetDeck.Endpoint(),
		CreateDeck.Endpoint(),
		UpdateDeck.Endpoint(),
		DeleteDeck.Endpoint(),
		GetFlashcardsByDeckID.Endpoint(),
		GetFlashcard.Endpoint(),
		CreateFlashcard.Endpoint(),
		UpdateFlashcard.Endpoint(),
		DeleteFlashcard.Endpoint(),
	}
}

func ident(s string) string { return s }

func deckID(d model.Deck) string { return d.ID }

func flashcardID(f model.Flashcard) string { return f.ID }

func itemTags[T any](entityType string, items []T, id func(T) string) []cache.Tag {
	tags := make([]cache.Tag, 0, len(items)+2)
	for _, it := range items {
		tags = append(tags, cache.Tag{Type: entityType, ID: id(it)})
	}
	return tags
}
