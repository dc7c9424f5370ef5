package service

import (
	"FlashDeck/internal/apperr"
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"

	"gorm.io/gorm"
)

// storeError переводит ошибку хранилища в apperr с заданным сообщением.
// notFound — сообщение для gorm.ErrRecordNotFound; пустое значение означает,
// что «не найдено» на этом пути не выделяется.
func storeError(err error, message, notFound string) error {
	if notFound != "" && errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.NotFound, notFound, err)
	}
	return apperr.Wrap(storeKind(err), message, err)
}

func storeKind(err error) apperr.Kind {
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return apperr.StoreUnavailable
	default:
		return apperr.Unknown
	}
}
