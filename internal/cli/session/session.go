// Package session связывает транспорт и кеш клиента на время работы приложения.
package session

import (
	"FlashDeck/internal/cli/api"
	"FlashDeck/internal/cli/cache"
	"FlashDeck/internal/config"

	"go.uber.org/zap"
)

// Session владеет одним транспортом и одним кешем; все запросы и мутации идут через неё.
type Session struct {
	client *api.Client
	cache  *cache.Cache
	Logger *zap.SugaredLogger
}

var _ api.Session = (*Session)(nil)

// New создаёт сессию по конфигурации клиента.
func New(cfg *config.Config, logger *zap.SugaredLogger) *Session {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Session{
		client: api.NewClient(cfg.APIURL(), cfg.RequestTimeout, logger),
		cache:  cache.New(cfg.CacheTTL, logger),
		Logger: logger,
	}
}

func (s *Session) Transport() *api.Client { return s.client }

func (s *Session) Store() *cache.Cache { return s.cache }
