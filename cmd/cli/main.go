package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/minibank/infra/initializer"
	"github.com/amirasaad/minibank/pkg/cli"
)

func main() {
	deps, err := initializer.InitializeDependencies()
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	menu := cli.New(deps.Service, os.Stdin, os.Stdout, deps.Logger)
	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		deps.Logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}
	deps.Logger.Info("session ended")
}
