package repo

import (
	"FlashDeck/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД по DSN и выполняет миграции.
// DSN вида postgres://... или postgresql://... открывается через драйвер PostgreSQL,
// всё остальное считается строкой подключения SQLite (modernc.org/sqlite).
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(dsn string) gorm.Dialector {
	if isPostgresDSN(dsn) {
		return postgres.Open(dsn)
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// Migrate создаёт/обновляет таблицы decks и flashcards.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Deck{}, &model.Flashcard{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
