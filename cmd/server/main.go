// Command server runs the cinelog HTTP API: it loads the configured CSV
// datasets into the in-memory repository and serves the catalogue and
// activity endpoints until interrupted.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/cinelog/cinelog-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
