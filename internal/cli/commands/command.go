package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"KisiKart/internal/config"
)

// ErrUsage возвращается командой при неверных аргументах: диспетчер
// печатает usage вместо текста ошибки.
var ErrUsage = errors.New("usage")

// Command — подкоманда kkcli. Все команды работают от имени администратора
// и ходят в карточный API по cfg.ServerURL.
type Command interface {
	// Name — имя команды, как его набирает администратор, например "import".
	Name() string
	// Description — короткое описание для help.
	Description() string
	// Usage — точная строка использования, например "delete <id>".
	Usage() string
	// Run выполняет команду с аргументами (без имени команды).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

var registry = map[string]Command{}

// RegisterCmd добавляет команду в реестр; зовётся из init() каждой команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get возвращает команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List возвращает все команды, отсортированные по имени.
func List() []Command {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]Command, 0, len(names))
	for _, name := range names {
		list = append(list, registry[name])
	}
	return list
}

// FormatGlobalUsage собирает общий help по всем командам.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("KisiKart CLI — администрирование карточек\n\n")
	b.WriteString("Usage:\n  kkcli [--server-url URL] <command> [args]\n\nCommands:\n")
	for _, c := range List() {
		fmt.Fprintf(&b, "  %-34s %s\n", c.Usage(), c.Description())
	}
	b.WriteString("\nВсе команды, кроме login, требуют сохранённой админской сессии.\n")
	return b.String()
}
