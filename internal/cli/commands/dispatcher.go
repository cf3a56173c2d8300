package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"KisiKart/internal/config"
)

// Коды завершения процесса kkcli.
const (
	exitOK      = 0
	exitError   = 1
	exitBadArgs = 2
)

// Dispatch — единственная точка входа исполнения команд. Печатает help и
// usage и возвращает код завершения процесса.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	// глобальный --help показывает общий usage независимо от позиции
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
		return exitBadArgs
	}

	name := strings.ToLower(args[0])
	if name == "help" {
		return runHelp(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitBadArgs
	}

	if err := c.Run(ctx, cfg, args[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return exitBadArgs
		}
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return exitError
	}
	return exitOK
}

// runHelp обрабатывает "kkcli help [command]".
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	if c, ok := Get(args[0]); ok {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitOK
	}
	fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
	fmt.Fprint(Out, FormatGlobalUsage())
	return exitBadArgs
}
