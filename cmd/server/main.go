package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/fieldsync/internal/server/app"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := app.NewRootCommand(app.Options{
		Version:   Version,
		Commit:    GitCommit,
		BuildDate: BuildDate,
	})
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
