package tui

import (
	"context"
	"os"
	"path/filepath"

	"FlashDeck/internal/cli/session"
	"FlashDeck/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// NewFileLogger пишет лог TUI в файл: stdout занят интерфейсом.
func NewFileLogger(path string) (*zap.SugaredLogger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	zcfg.DisableStacktrace = true
	logger, err := zcfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return logger.Sugar(), func() { _ = logger.Sync() }, nil
}

// Run запускает интерактивный интерфейс.
func Run(ctx context.Context, cfg *config.Config) error {
	logger, done, err := NewFileLogger(cfg.TUILogFile)
	if err != nil {
		return err
	}
	defer done()

	sess := session.New(cfg, logger)
	logger.Infow("Starting TUI", "api", sess.Transport().BaseURL())
	p := tea.NewProgram(New(ctx, sess), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
