// Command server runs the marketplace search and consultation HTTP API.
//
// Configuration is read from CONFIG_PATH (fallback ./config.yaml), a local
// .env file and the environment. SIGINT or SIGTERM starts a graceful shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/servicehub-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
