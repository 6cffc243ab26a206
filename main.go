package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sftpsync/cmd"
	"sftpsync/config"
)

func main() {
	cnf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx, cnf); err != nil {
		os.Exit(1)
	}
}
