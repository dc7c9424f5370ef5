package handlers

import (
	"FlashDeck/internal/apperr"
	"FlashDeck/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FlashcardHandler обрабатывает /flashcards, /flashcards/{id} и /flashcards/deck/{deckId}.
type FlashcardHandler struct {
	FlashcardService *service.FlashcardService
	Logger           *zap.SugaredLogger
}

// NewFlashcardHandler создаёт хендлер карточек
func NewFlashcardHandler(flashcardService *service.FlashcardService, logger *zap.SugaredLogger) *FlashcardHandler {
	return &FlashcardHandler{FlashcardService: flashcardService, Logger: logger}
}

func (h *FlashcardHandler) pathID(w http.ResponseWriter, r *http.Request, param, message string) (string, bool) {
	id := chi.URLParam(r, param)
	if !validID(id) {
		writeError(w, h.Logger, apperr.New(apperr.InvalidInput, message))
		return "", false
	}
	return id, true
}

// Create POST /flashcards
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.FlashcardInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	card, err := h.FlashcardService.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

// Get GET /flashcards/{id}
func (h *FlashcardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id", "Invalid Flashcard ID")
	if !ok {
		return
	}
	card, err := h.FlashcardService.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// Update PUT /flashcards/{id}
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id", "Invalid Flashcard ID")
	if !ok {
		return
	}
	var patch service.FlashcardPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	card, err := h.FlashcardService.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// Delete DELETE /flashcards/{id}
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id", "Invalid Flashcard ID")
	if !ok {
		return
	}
	if err := h.FlashcardService.Delete(r.Context(), id); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Flashcard deleted successfully"})
}

// ListByDeck GET /flashcards/deck/{deckId}
func (h *FlashcardHandler) ListByDeck(w http.ResponseWriter, r *http.Request) {
	deckID, ok := h.pathID(w, r, "deckId", "Invalid Deck ID")
	if !ok {
		return
	}
	cards, err := h.FlashcardService.ListByDeck(r.Context(), deckID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}
