package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"FlashDeck/internal/cli/model"
	"FlashDeck/internal/cli/session"
	"FlashDeck/internal/config"
)

// errCanceled: пользователь не подтвердил действие.
var errCanceled = errors.New("canceled")

func newSession(cfg *config.Config) *session.Session {
	return session.New(cfg, Logger)
}

// parseArgs разбирает флаги в любом месте командной строки и возвращает позиционные аргументы.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	fs.SetOutput(io.Discard)
	var rest []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, ErrUsage
		}
		args = fs.Args()
		if len(args) == 0 {
			return rest, nil
		}
		rest = append(rest, args[0])
		args = args[1:]
	}
}

// flagSet возвращает множество флагов, явно заданных в командной строке.
func flagSet(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// required проверяет обязательные поля до отправки запроса.
func required(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return fmt.Errorf("%s is required", f[0])
		}
	}
	return nil
}

// confirm спрашивает подтверждение; по умолчанию — нет.
func confirm(question string) bool {
	fmt.Fprintf(Out, "%s [y/N]: ", question)
	line, _ := bufio.NewReader(In).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}

func printDeck(d model.Deck) {
	fmt.Fprintf(Out, "  id:          %s\n", d.ID)
	fmt.Fprintf(Out, "  name:        %s\n", d.Name)
	fmt.Fprintf(Out, "  description: %s\n", d.DescriptionOrEmpty())
}

func printFlashcard(f model.Flashcard) {
	fmt.Fprintf(Out, "  id:    %s\n", f.ID)
	fmt.Fprintf(Out, "  deck:  %s\n", f.DeckID)
	fmt.Fprintf(Out, "  label: %s\n", f.Label)
	fmt.Fprintf(Out, "  value: %s\n", f.Value)
}
