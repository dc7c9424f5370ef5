package handlers

import (
	"FlashDeck/internal/apperr"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"

	"go.uber.org/zap"
)

// ErrorResponse — тело ошибки: message для человека, kind для ветвления клиента,
// error — текст исходной ошибки хранилища.
type ErrorResponse struct {
	Message string      `json:"message"`
	Kind    apperr.Kind `json:"kind"`
	Error   string      `json:"error,omitempty"`
}

// MessageResponse — подтверждение удаления.
type MessageResponse struct {
	Message string `json:"message"`
}

var idRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// validID проверяет id из пути до любого обращения к хранилищу.
func validID(id string) bool {
	return idRe.MatchString(id)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.InvalidInput:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError отдаёт ошибку в едином формате и логирует её.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Wrap(apperr.Unknown, "Internal error", err)
	}
	status := statusFor(ae.Kind)
	if status >= http.StatusInternalServerError {
		logger.Errorw(ae.Message, "kind", ae.Kind, "error", ae.Detail)
	} else {
		logger.Warnw(ae.Message, "kind", ae.Kind)
	}
	writeJSON(w, status, ErrorResponse{Message: ae.Message, Kind: ae.Kind, Error: ae.Detail})
}

// decodeJSON читает тело запроса; пустое тело трактуется как пустой объект.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return apperr.Wrap(apperr.InvalidInput, "Invalid request body", err)
	}
	return nil
}
