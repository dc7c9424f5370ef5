package commands

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"FlashDeck/internal/config"
	"FlashDeck/internal/handlers"
	"FlashDeck/internal/repo"
	"FlashDeck/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// withServer поднимает настоящий API поверх in-memory SQLite и возвращает конфиг клиента.
func withServer(t *testing.T) *config.Config {
	t.Helper()
	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	logger := zap.NewNop().Sugar()
	cfg := &config.Config{APIRoot: "/api", CORSOrigins: "http://localhost:3000"}
	h := handlers.NewHandler(
		service.NewDeckService(repo.NewDeckRepository(db), logger),
		service.NewFlashcardService(repo.NewFlashcardRepository(db), logger),
		logger, cfg,
	)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)
	cfg.ServerURL = ts.URL
	return cfg
}

// withInput подменяет ввод пользователя на время теста.
func withInput(t *testing.T, s string) {
	t.Helper()
	old := In
	In = strings.NewReader(s)
	t.Cleanup(func() { In = old })
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// idFrom достаёт значение поля "id:" из вывода команды.
func idFrom(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "id:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "id:"))
		}
	}
	t.Fatalf("no id in output: %s", out)
	return ""
}
