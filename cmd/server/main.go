package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/scriptoria/internal/server"
	"github.com/dmitrijs2005/scriptoria/internal/server/config"
	"go.uber.org/multierr"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = multierr.Append(app.Run(ctx), app.Close())
	if err != nil {
		log.Fatalf("%v", err)
	}
}
