package main

import (
	"context"
	"log"

	"github.com/inkspot/inkspot/internal/server"
	"github.com/inkspot/inkspot/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
