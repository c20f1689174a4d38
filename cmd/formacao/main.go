package main

import (
	"log/slog"
	"os"

	"github.com/hitoshi/formacao/internal/app"
)

func main() {
	stdio := app.IO{In: os.Stdin, Out: os.Stdout, Log: os.Stderr}
	if err := app.Run(stdio, os.Args[1:]); err != nil {
		slog.Error("application exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
