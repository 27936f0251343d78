package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/stpnv0/SlotMatcher/internal/app"
	"github.com/stpnv0/SlotMatcher/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoadBackend()

	backend, err := app.NewBackend(cfg)
	if err != nil {
		log.Fatalf("backend init: %v", err)
	}

	if err = backend.Run(); err != nil {
		log.Fatalf("backend run: %v", err)
	}
}
