package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"KisiKart/internal/cli/commands"
	"KisiKart/internal/config"
)

// kkcli — административный инструмент карточного сервиса: логин,
// единичное и массовое заведение карточек, список, удаление.

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("KisiKart CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	if code != 0 {
		os.Exit(code)
	}
}
