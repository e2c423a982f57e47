package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mkts/internal/app"
	"mkts/tui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg := app.DefaultConfig()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := app.NewState(cfg, rng)

	if err := tui.Run(ctx, state, cfg); err != nil {
		log.Fatalf("dashboard error: %v", err)
	}
}
