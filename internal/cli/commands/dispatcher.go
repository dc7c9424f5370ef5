package commands

import (
	"FlashDeck/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Dispatch находит команду по первому аргументу и выполняет её.
// Возвращает код завершения процесса.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage())
			return exitOK
		}
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" {
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		return unknown(name)
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Использование: %s\n", c.Usage())
		return exitUsage
	case errors.Is(err, errCanceled):
		fmt.Fprintln(Out, "Отменено")
		return exitOK
	default:
		fmt.Fprintf(Out, "%s: ошибка: %v\n", name, err)
		return exitError
	}
}

// help: flashdeck help [команда]
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	c, ok := Get(strings.ToLower(args[0]))
	if !ok {
		return unknown(args[0])
	}
	fmt.Fprint(Out, FormatCommandUsage(c))
	return exitOK
}

func unknown(name string) int {
	fmt.Fprintf(Out, "Неизвестная команда: %s\n\n", name)
	fmt.Fprint(Out, FormatGlobalUsage())
	return exitUsage
}
