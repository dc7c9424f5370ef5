package commands

import (
	"context"
	"flag"
	"fmt"

	"FlashDeck/internal/cli/api"
	"FlashDeck/internal/cli/model"
	"FlashDeck/internal/config"
)

type decksCmd struct{}

func (decksCmd) Name() string        { return "decks" }
func (decksCmd) Description() string { return "Показать все колоды" }
func (decksCmd) Usage() string       { return "decks" }

func (decksCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := api.GetDecks.Fetch(ctx, newSession(cfg), api.NoArg{})
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет колод")
		return nil
	}
	for _, d := range list {
		desc := ""
		if d.Description != nil && *d.Description != "" {
			desc = " (" + *d.Description + ")"
		}
		fmt.Fprintf(Out, "- %s  %s%s\n", d.ID, d.Name, desc)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

type deckAddCmd struct{}

func (deckAddCmd) Name() string        { return "deck-add" }
func (deckAddCmd) Description() string { return "Создать колоду" }
func (deckAddCmd) Usage() string       { return "deck-add <name> [description]" }

func (deckAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	in := model.DeckInput{Name: args[0]}
	if len(args) == 2 {
		in.Description = &args[1]
	}
	if err := required([2]string{"name", in.Name}); err != nil {
		return err
	}
	d, err := api.CreateDeck.Run(ctx, newSession(cfg), in)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "✓ Колода создана:")
	printDeck(d)
	return nil
}

type deckEditCmd struct{}

func (deckEditCmd) Name() string        { return "deck-edit" }
func (deckEditCmd) Description() string { return "Изменить имя и/или описание колоды" }
func (deckEditCmd) Usage() string {
	return "deck-edit <id> [--name <name>] [--description <text>]"
}

func (deckEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("deck-edit", flag.ContinueOnError)
	name := fs.String("name", "", "новое имя")
	description := fs.String("description", "", "новое описание")
	rest, err := parseArgs(fs, args)
	if err != nil || len(rest) != 1 {
		return ErrUsage
	}
	set := flagSet(fs)
	if !set["name"] && !set["description"] {
		return ErrUsage
	}

	upd := model.DeckUpdate{ID: rest[0]}
	if set["name"] {
		if err := required([2]string{"name", *name}); err != nil {
			return err
		}
		upd.Name = name
	}
	if set["description"] {
		upd.Description = description
	}

	d, err := api.UpdateDeck.Run(ctx, newSession(cfg), upd)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "✓ Колода обновлена:")
	printDeck(d)
	return nil
}

type deckRmCmd struct{}

func (deckRmCmd) Name() string        { return "deck-rm" }
func (deckRmCmd) Description() string { return "Удалить колоду вместе с карточками" }
func (deckRmCmd) Usage() string       { return "deck-rm [--yes] <id>" }

func (deckRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("deck-rm", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "не спрашивать подтверждение")
	rest, err := parseArgs(fs, args)
	if err != nil || len(rest) != 1 {
		return ErrUsage
	}
	id := rest[0]
	sess := newSession(cfg)

	if !*yes {
		d, err := api.GetDeck.Fetch(ctx, sess, id)
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Удалить колоду %q и все её карточки?", d.Name)) {
			return errCanceled
		}
	}
	msg, err := api.DeleteDeck.Run(ctx, sess, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ %s\n", msg.Message)
	return nil
}

func init() {
	RegisterCmd(decksCmd{})
	RegisterCmd(deckAddCmd{})
	RegisterCmd(deckEditCmd{})
	RegisterCmd(deckRmCmd{})
}
