package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/credstore/internal/cli"
	"github.com/dmitrijs2005/credstore/internal/config"
	"github.com/dmitrijs2005/credstore/internal/logging"
	"github.com/dmitrijs2005/credstore/internal/storage"
	"github.com/dmitrijs2005/credstore/internal/store"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	s, err := store.Open(ctx, backend, logger)
	if err != nil {
		_ = backend.Close()
		log.Fatalf("%v", err)
	}
	defer s.Close()

	cli.NewApp(s, os.Stdin, os.Stdout, logger).Run(ctx)

}
