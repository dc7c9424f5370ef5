package commands

import (
	"context"
	"flag"
	"fmt"

	"FlashDeck/internal/cli/api"
	"FlashDeck/internal/cli/model"
	"FlashDeck/internal/config"
)

type cardsCmd struct{}

func (cardsCmd) Name() string        { return "cards" }
func (cardsCmd) Description() string { return "Показать карточки колоды" }
func (cardsCmd) Usage() string       { return "cards <deckId>" }

func (cardsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	list, err := api.GetFlashcardsByDeckID.Fetch(ctx, newSession(cfg), args[0])
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет карточек")
		return nil
	}
	for _, f := range list {
		fmt.Fprintf(Out, "- %s  %s = %s\n", f.ID, f.Label, f.Value)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

type cardAddCmd struct{}

func (cardAddCmd) Name() string        { return "card-add" }
func (cardAddCmd) Description() string { return "Добавить карточку в колоду" }
func (cardAddCmd) Usage() string       { return "card-add <deckId> <label> <value>" }

func (cardAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	in := model.FlashcardInput{DeckID: args[0], Label: args[1], Value: args[2]}
	if err := required([2]string{"deckId", in.DeckID}, [2]string{"label", in.Label}, [2]string{"value", in.Value}); err != nil {
		return err
	}
	f, err := api.CreateFlashcard.Run(ctx, newSession(cfg), in)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "✓ Карточка создана:")
	printFlashcard(f)
	return nil
}

type cardEditCmd struct{}

func (cardEditCmd) Name() string        { return "card-edit" }
func (cardEditCmd) Description() string { return "Изменить label и/или value карточки" }
func (cardEditCmd) Usage() string {
	return "card-edit <id> <deckId> [--label <label>] [--value <value>]"
}

func (cardEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("card-edit", flag.ContinueOnError)
	label := fs.String("label", "", "новый label")
	value := fs.String("value", "", "новое value")
	rest, err := parseArgs(fs, args)
	if err != nil || len(rest) != 2 {
		return ErrUsage
	}
	set := flagSet(fs)
	if !set["label"] && !set["value"] {
		return ErrUsage
	}

	upd := model.FlashcardUpdate{ID: rest[0], DeckID: rest[1]}
	if set["label"] {
		if err := required([2]string{"label", *label}); err != nil {
			return err
		}
		upd.Label = label
	}
	if set["value"] {
		if err := required([2]string{"value", *value}); err != nil {
			return err
		}
		upd.Value = value
	}

	f, err := api.UpdateFlashcard.Run(ctx, newSession(cfg), upd)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "✓ Карточка обновлена:")
	printFlashcard(f)
	return nil
}

type cardRmCmd struct{}

func (cardRmCmd) Name() string        { return "card-rm" }
func (cardRmCmd) Description() string { return "Удалить карточку" }
func (cardRmCmd) Usage() string       { return "card-rm [--yes] <id>" }

func (cardRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("card-rm", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "не спрашивать подтверждение")
	rest, err := parseArgs(fs, args)
	if err != nil || len(rest) != 1 {
		return ErrUsage
	}
	id := rest[0]
	sess := newSession(cfg)

	if !*yes {
		f, err := api.GetFlashcard.Fetch(ctx, sess, id)
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Удалить карточку %q?", f.Label)) {
			return errCanceled
		}
	}
	msg, err := api.DeleteFlashcard.Run(ctx, sess, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "✓ %s\n", msg.Message)
	return nil
}

func init() {
	RegisterCmd(cardsCmd{})
	RegisterCmd(cardAddCmd{})
	RegisterCmd(cardEditCmd{})
	RegisterCmd(cardRmCmd{})
}
