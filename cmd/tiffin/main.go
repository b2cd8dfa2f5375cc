package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, cleanup := newRootCmd(loadConfig)
	defer cleanup()

	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
