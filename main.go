package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"kanban_e2e/presentation/terminal"
)

func main() {
	termInterface, err := terminal.NewTerminalInterface(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := termInterface.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
