package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/meghashyamc/fingerblaster/bridge"
	"github.com/meghashyamc/fingerblaster/config"
	"github.com/meghashyamc/fingerblaster/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.GetLogLevel())
	log.Info("config loaded", "screenWidth", cfg.GetScreenWidth(), "screenHeight", cfg.GetScreenHeight(), "pinchThreshold", cfg.GetPinchThreshold())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := bridge.New(bridge.DefaultsFromConfig(cfg), log)
	if err := b.Serve(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		log.Error("error serving requests", "err", err)
		os.Exit(1)
	}
}
