package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"FlashDeck/internal/apperr"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client: транспорт клиента: JSON поверх HTTP к REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.SugaredLogger
}

// NewClient создаёт транспорт. baseURL — адрес API вместе с корнем (http://host:port/api).
// timeout == 0 оставляет поведение транспорта по умолчанию.
func NewClient(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL возвращает адрес API.
func (c *Client) BaseURL() string { return c.baseURL }

// errorBody: формат ошибок сервера.
type errorBody struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Error   string `json:"error"`
}

// DoJSON выполняет запрос с JSON-телом payload (nil — без тела) и декодирует
// успешный ответ в out (nil — ответ игнорируется).
// Любая неудача логируется здесь один раз и возвращается вызывающему.
// Ответ сервера с ошибкой приходит как *apperr.Error, сетевые сбои — обёрнутой ошибкой транспорта.
func (c *Client) DoJSON(ctx context.Context, method, path string, payload any, out any) error {
	err := c.do(ctx, method, path, payload, out)
	if err != nil {
		c.logger.Errorw("API Error",
			"method", method,
			"path", path,
			"kind", apperr.KindOf(err),
			"error", err,
		)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	url := c.baseURL + path

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, url)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read response of %s %s", method, url)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decode response of %s %s", method, url)
	}
	return nil
}

// decodeError восстанавливает *apperr.Error из тела ответа с ошибкой.
func decodeError(status int, raw []byte) *apperr.Error {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Message != "" {
		kind := apperr.ParseKind(eb.Kind)
		if eb.Kind == "" {
			kind = kindForStatus(status)
		}
		return &apperr.Error{Kind: kind, Message: eb.Message, Detail: eb.Error}
	}
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &apperr.Error{Kind: kindForStatus(status), Message: msg}
}

func kindForStatus(status int) apperr.Kind {
	switch status {
	case http.StatusBadRequest:
		return apperr.InvalidInput
	case http.StatusNotFound:
		return apperr.NotFound
	default:
		return apperr.Unknown
	}
}

// IsServerError сообщает, что запрос дошёл до сервера и тот ответил ошибкой.
func IsServerError(err error) bool {
	var ae *apperr.Error
	return errors.As(err, &ae)
}
