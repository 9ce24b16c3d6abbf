// Package storage picks and opens the persistence backend named in the
// configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credstore/internal/common"
	"github.com/dmitrijs2005/credstore/internal/config"
	"github.com/dmitrijs2005/credstore/internal/logging"
	"github.com/dmitrijs2005/credstore/internal/storage/objectstore"
	"github.com/dmitrijs2005/credstore/internal/storage/postgres"
	"github.com/dmitrijs2005/credstore/internal/storage/sqlite"
	"github.com/dmitrijs2005/credstore/internal/storage/textfile"
	"github.com/dmitrijs2005/credstore/internal/store"
)

// Open returns the backend selected by cfg.Backend.
func Open(ctx context.Context, cfg *config.Config, logger logging.Logger) (store.Backend, error) {
	var (
		b   store.Backend
		err error
	)

	switch cfg.Backend {
	case common.BackendFile, "":
		return textfile.New(cfg.FilePath, logger), nil
	case common.BackendSQLite:
		b, err = sqlite.Open(ctx, cfg.SQLitePath, logger)
	case common.BackendPostgres:
		b, err = postgres.Open(ctx, cfg.PostgresDSN, logger)
	case common.BackendS3:
		b, err = objectstore.Open(ctx, objectstore.Options{
			Bucket:       cfg.S3Bucket,
			Key:          cfg.S3Key,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		}, logger)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownBackend, cfg.Backend)
	}

	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	return b, nil
}
