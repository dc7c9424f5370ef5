package commands

import (
	"context"

	"FlashDeck/internal/cli/tui"
	"FlashDeck/internal/config"
)

type tuiCmd struct{}

func (tuiCmd) Name() string        { return "tui" }
func (tuiCmd) Description() string { return "Интерактивный режим: колоды и карточки" }
func (tuiCmd) Usage() string       { return "tui" }

func (tuiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return tui.Run(ctx, cfg)
}

func init() { RegisterCmd(tuiCmd{}) }
