package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/nasermirzaei89/postfeed"
)

func main() {
	ctx := context.Background()

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.ErrorContext(ctx, "failed to load .env file", "error", err)
		os.Exit(1)
	}

	postfeed.SetupLogger()

	err = postfeed.RunTerminal(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to run terminal feed", "error", err)
		os.Exit(1)
	}
}
