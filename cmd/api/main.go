// Package main provides the demmi JSON API server
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/novamoonx/demmi/internal/infrastructure/config"
	"github.com/novamoonx/demmi/internal/infrastructure/container"
)

func main() {
	var cfg *config.Config
	app := fx.New(
		fx.NopLogger, // the application uses its own zap logger
		container.Module,
		fx.Populate(&cfg),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.Stop(shutdownCtx); err != nil {
		log.Fatalf("Failed to stop API server gracefully: %v", err)
	}
}
