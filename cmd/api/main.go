package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"animalbase/internal/app"
	"animalbase/internal/platform/config"
	"animalbase/internal/platform/logger"
)

// @title Animalbase API
// @version 1.0
// @description Lista de animales con filtro, orden, estrellas y hasta dos ganadores (uno por tipo).
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lg := app.NewLogger(cfg)
	err = app.Serve(ctx, cfg, lg)
	_ = logger.Sync(lg)
	if err != nil {
		log.Fatalf("server error: %v", err)
	}
}
