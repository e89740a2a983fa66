package main

import (
	"context"
	"log/slog"
	"os"

	"vprompt-web/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// .env はローカル開発用。存在しなくてもよい
	_ = godotenv.Load()

	if err := server.Run(context.Background()); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}
