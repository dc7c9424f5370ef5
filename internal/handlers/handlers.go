package handlers

import (
	"FlashDeck/internal/apperr"
	"FlashDeck/internal/config"
	"FlashDeck/internal/middleware"
	"FlashDeck/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	deckService *service.DeckService,
	flashcardService *service.FlashcardService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithCORS(config.AllowedOrigins()))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, logger, apperr.New(apperr.NotFound, "Not found"))
	})

	// Handlers
	deckHandler := NewDeckHandler(deckService, logger)
	flashcardHandler := NewFlashcardHandler(flashcardService, logger)

	apiRoot := config.APIRoot
	if apiRoot == "" {
		apiRoot = "/api"
	}

	r.Route(apiRoot, func(r chi.Router) {
		// Deck routes
		r.Get("/decks", deckHandler.List)
		r.Post("/decks", deckHandler.Create)
		for _, p := range []string{"/decks/", "/decks/{id}"} {
			r.Get(p, deckHandler.Get)
			r.Put(p, deckHandler.Update)
			r.Delete(p, deckHandler.Delete)
		}

		// Flashcard routes
		r.Post("/flashcards", flashcardHandler.Create)
		for _, p := range []string{"/flashcards/", "/flashcards/{id}"} {
			r.Get(p, flashcardHandler.Get)
			r.Put(p, flashcardHandler.Update)
			r.Delete(p, flashcardHandler.Delete)
		}
		r.Get("/flashcards/deck/", flashcardHandler.ListByDeck)
		r.Get("/flashcards/deck/{deckId}", flashcardHandler.ListByDeck)
	})

	return &Handler{Router: r}
}
