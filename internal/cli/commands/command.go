package commands

import (
	"FlashDeck/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ErrUsage: команда получила неверные аргументы, нужно показать её синтаксис.
var ErrUsage = errors.New("usage")

// Command: подкоманда CLI, например "decks" или "card-add".
type Command interface {
	Name() string
	// Description: одна строка для справки.
	Description() string
	// Usage: синтаксис вызова, например "deck-add <name> [description]".
	Usage() string
	// Run получает аргументы без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry: команды по имени, заполняется из init() файлов команд.
var registry = map[string]Command{}

// Out: общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// In: источник ответов на подтверждения (y/N).
var In io.Reader = os.Stdin

// Logger получает ошибки API; main подменяет его настоящим логгером.
var Logger = zap.NewNop().Sugar()

// RegisterCmd регистрирует команду.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get ищет команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List возвращает команды в алфавитном порядке.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// sections группирует команды в справке по префиксу имени.
var sections = []struct {
	title  string
	prefix string
}{
	{"Колоды", "deck"},
	{"Карточки", "card"},
}

// FormatGlobalUsage собирает общую справку: команды колод, карточек и остальные.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("FlashDeck CLI: колоды и карточки для запоминания\n\n")
	b.WriteString("Запуск:\n  flashdeck [--base-url <host:port>] [--https] <команда> [аргументы]\n")

	rest := List()
	for _, sec := range sections {
		var in []Command
		var out []Command
		for _, c := range rest {
			if strings.HasPrefix(c.Name(), sec.prefix) {
				in = append(in, c)
			} else {
				out = append(out, c)
			}
		}
		writeSection(&b, sec.title, in)
		rest = out
	}
	writeSection(&b, "Прочее", rest)
	b.WriteString("\nПодробнее о команде: flashdeck help <команда>\n")
	return b.String()
}

func writeSection(b *strings.Builder, title string, cmds []Command) {
	if len(cmds) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, c := range cmds {
		fmt.Fprintf(b, "  %-52s %s\n", c.Usage(), c.Description())
	}
}

// FormatCommandUsage: справка по одной команде.
func FormatCommandUsage(c Command) string {
	return fmt.Sprintf("%s\n\nИспользование: %s\n", c.Description(), c.Usage())
}
