package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pokedex/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, cmd.ErrorText(err))
		stop()
		os.Exit(1)
	}
}
