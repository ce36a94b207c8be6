// cmd/lexsite/main.go
//
// Entry point for the lexsite server. All application wiring lives in
// internal/app/bootstrap; this binary just hands the lifecycle hooks to
// WAFFLE, which loads configuration, connects MongoDB, runs startup, and
// serves HTTP until shutdown.
package main

import (
	"context"

	"github.com/dalemusser/waffle/app"

	"github.com/lexsite/lexsite/internal/app/bootstrap"
)

func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
