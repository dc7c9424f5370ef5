package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// WithCORS разрешает запросы браузерных клиентов с перечисленных origins.
func WithCORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Accept-Encoding", "Content-Encoding", "Origin", "X-Requested-With"},
		MaxAge:         86400,
	})
	return c.Handler
}
