package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/stpnv0/SlotMatcher/internal/app"
	"github.com/stpnv0/SlotMatcher/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
