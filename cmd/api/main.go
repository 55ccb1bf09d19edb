package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"minerva/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load .env (optional) and config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	_ = godotenv.Load()

	app, err := bootstrap.BuildAPI()
	if err != nil {
		slog.Error("api bootstrap failed", "error", err.Error())
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		slog.Error("api server stopped", "error", err.Error())
		os.Exit(1)
	}
}
