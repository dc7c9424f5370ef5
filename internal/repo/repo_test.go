package repo

import (
	"FlashDeck/internal/model"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// У каждого теста своя база, внешние ключи включены.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string { return &s }

func mustCreateDeck(t *testing.T, r DeckRepository, name string) *model.Deck {
	t.Helper()
	d := &model.Deck{Name: name}
	if err := r.Create(context.Background(), d); err != nil {
		t.Fatalf("create deck %q: %v", name, err)
	}
	return d
}

func TestIsPostgresDSN(t *testing.T) {
	cases := map[string]bool{
		"postgres://u:p@localhost:5432/db": true,
		"postgresql://localhost/db":        true,
		"host=localhost user=u dbname=db":  true,
		"file:flashdeck.db":                false,
		"file::memory:?cache=shared":       false,
	}
	for dsn, want := range cases {
		if got := isPostgresDSN(dsn); got != want {
			t.Fatalf("isPostgresDSN(%q) = %v, want %v", dsn, got, want)
		}
	}
}

func TestInitDB_SQLite(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := InitDB(dsn)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	if !db.Migrator().HasTable(&model.Deck{}) || !db.Migrator().HasTable(&model.Flashcard{}) {
		t.Fatalf("tables must exist after InitDB")
	}
}
