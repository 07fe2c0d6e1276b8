package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"roguewar-client/internal/cli"
	"roguewar-client/internal/logger"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, version, os.Args[1:]); err != nil {
		logger.Error("CLI", err.Error())
		stop()
		os.Exit(1)
	}
}
