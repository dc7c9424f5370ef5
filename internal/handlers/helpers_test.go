package handlers_test

import (
	"FlashDeck/internal/config"
	"FlashDeck/internal/handlers"
	"FlashDeck/internal/model"
	"FlashDeck/internal/repo"
	"FlashDeck/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Local light mocks
type hMockDeckRepo struct{ mock.Mock }

func (m *hMockDeckRepo) List(ctx context.Context) ([]model.Deck, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Deck); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockDeckRepo) Create(ctx context.Context, d *model.Deck) error {
	return m.Called(ctx, d).Error(0)
}
func (m *hMockDeckRepo) GetByID(ctx context.Context, id string) (*model.Deck, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Deck); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockDeckRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Deck, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Deck); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockDeckRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.DeckRepository = (*hMockDeckRepo)(nil)

type hMockFlashcardRepo struct{ mock.Mock }

func (m *hMockFlashcardRepo) Create(ctx context.Context, f *model.Flashcard) error {
	return m.Called(ctx, f).Error(0)
}
func (m *hMockFlashcardRepo) GetByID(ctx context.Context, id string) (*model.Flashcard, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Flashcard); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockFlashcardRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Flashcard, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Flashcard); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockFlashcardRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *hMockFlashcardRepo) ListByDeck(ctx context.Context, deckID string) ([]model.Flashcard, error) {
	args := m.Called(ctx, deckID)
	if v, ok := args.Get(0).([]model.Flashcard); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.FlashcardRepository = (*hMockFlashcardRepo)(nil)

func testConfig() *config.Config {
	return &config.Config{APIRoot: "/api", CORSOrigins: "http://localhost:3000"}
}

// newMockRouter собирает роутер поверх мок-репозиториев.
func newMockRouter(t *testing.T) (http.Handler, *hMockDeckRepo, *hMockFlashcardRepo) {
	t.Helper()
	logger := zap.NewNop().Sugar()
	dr := &hMockDeckRepo{}
	fr := &hMockFlashcardRepo{}
	h := handlers.NewHandler(service.NewDeckService(dr, logger), service.NewFlashcardService(fr, logger), logger, testConfig())
	return h.Router, dr, fr
}

// newDBRouter собирает роутер поверх настоящей in-memory SQLite.
func newDBRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	logger := zap.NewNop().Sugar()
	h := handlers.NewHandler(
		service.NewDeckService(repo.NewDeckRepository(db), logger),
		service.NewFlashcardService(repo.NewFlashcardRepository(db), logger),
		logger, testConfig(),
	)
	return h.Router
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v), "body: %s", rr.Body.String())
	return v
}
