package handlers

import (
	"FlashDeck/internal/apperr"
	"FlashDeck/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DeckHandler обрабатывает /decks и /decks/{id}.
type DeckHandler struct {
	DeckService *service.DeckService
	Logger      *zap.SugaredLogger
}

// NewDeckHandler создаёт хендлер колод
func NewDeckHandler(deckService *service.DeckService, logger *zap.SugaredLogger) *DeckHandler {
	return &DeckHandler{DeckService: deckService, Logger: logger}
}

// List GET /decks
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	decks, err := h.DeckService.List(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, decks)
}

// Create POST /decks
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.DeckInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	deck, err := h.DeckService.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, deck)
}

// deckID достаёт id из пути; при невалидном id отвечает 400 и возвращает false.
func (h *DeckHandler) deckID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validID(id) {
		writeError(w, h.Logger, apperr.New(apperr.InvalidInput, "Invalid Deck ID"))
		return "", false
	}
	return id, true
}

// Get GET /decks/{id}
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deckID(w, r)
	if !ok {
		return
	}
	deck, err := h.DeckService.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

// Update PUT /decks/{id}
func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deckID(w, r)
	if !ok {
		return
	}
	var patch service.DeckPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	deck, err := h.DeckService.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

// Delete DELETE /decks/{id}
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deckID(w, r)
	if !ok {
		return
	}
	if err := h.DeckService.Delete(r.Context(), id); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Deck deleted successfully"})
}
