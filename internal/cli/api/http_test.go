package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"FlashDeck/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func TestNewClient_TrimsBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8081/api", NewClient("http://localhost:8081/api/", 0, nil).BaseURL())
}

func TestDoJSON_SendsBody_And_DecodesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/decks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Spanish"}`, string(b))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"d1","name":"Spanish"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/api/", 0, nil)
	var out struct{ ID, Name string }
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "/decks", map[string]string{"name": "Spanish"}, &out))
	assert.Equal(t, "d1", out.ID)
	assert.Equal(t, "Spanish", out.Name)
}

func TestDoJSON_ServerError_DecodedAndLoggedOnce(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Deck not found","kind":"NotFound"}`))
	}))
	defer ts.Close()

	logger, logs := observedLogger()
	c := NewClient(ts.URL, 0, logger)
	err := c.DoJSON(context.Background(), http.MethodGet, "/decks/x", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.True(t, IsServerError(err))
	assert.Equal(t, "Deck not found", err.Error())
	assert.Equal(t, 1, logs.FilterMessage("API Error").Len())
}

func TestDoJSON_StoreErrorDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Failed to update deck","kind":"StoreUnavailable","error":"driver: bad connection"}`))
	}))
	defer ts.Close()

	err := NewClient(ts.URL, 0, nil).DoJSON(context.Background(), http.MethodPut, "/decks/d1", map[string]any{}, nil)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.StoreUnavailable, ae.Kind)
	assert.Equal(t, "driver: bad connection", ae.Detail)
}

func TestDoJSON_PlainTextError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte("Method POST Not Allowed"))
	}))
	defer ts.Close()

	err := NewClient(ts.URL, 0, nil).DoJSON(context.Background(), http.MethodPost, "/x", nil, nil)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.Unknown, ae.Kind)
	assert.Equal(t, "Method POST Not Allowed", ae.Message)
}

func TestDoJSON_NetworkError(t *testing.T) {
	logger, logs := observedLogger()
	err := NewClient("http://127.0.0.1:1", 0, logger).DoJSON(context.Background(), http.MethodGet, "/decks", nil, nil)
	require.Error(t, err)
	assert.False(t, IsServerError(err))
	assert.Equal(t, apperr.Unknown, apperr.KindOf(err))
	assert.Equal(t, 1, logs.FilterMessage("API Error").Len())
}

func TestDoJSON_InvalidURL(t *testing.T) {
	err := NewClient("http://[::1", 0, nil).DoJSON(context.Background(), http.MethodGet, "/decks", nil, nil)
	assert.Error(t, err)
}

func TestDoJSON_BadJSONResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{"))
	}))
	defer ts.Close()

	var out map[string]any
	err := NewClient(ts.URL, 0, nil).DoJSON(context.Background(), http.MethodGet, "/decks", nil, &out)
	assert.Error(t, err)
	assert.False(t, IsServerError(err))
}
