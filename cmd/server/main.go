package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"storefront/internal/server"
	"storefront/internal/server/config"
)

func main() {

	// Optional .env; absence is fine.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
