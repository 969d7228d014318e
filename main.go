package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/byterings/dotty/cmd"
	"github.com/byterings/dotty/internal/ui"
)

func main() {
	// .env is optional; it only sets DOTTY_ENV during development
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, ui.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "Cancelled")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
