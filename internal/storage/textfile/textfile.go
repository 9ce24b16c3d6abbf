// Package textfile stores users in a plain text file, one
// "username,password" line per record.
package textfile

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/credstore/internal/filex"
	"github.com/dmitrijs2005/credstore/internal/logging"
	"github.com/dmitrijs2005/credstore/internal/users"
)

const filePerm = 0o600

// writeFile is a test seam for filex.WriteFileAtomic.
var writeFile = filex.WriteFileAtomic

type Backend struct {
	path   string
	logger logging.Logger
}

func New(path string, logger logging.Logger) *Backend {
	return &Backend{path: path, logger: logger.With("backend", "file", "path", path)}
}

// Load reads the file. A missing or unreadable file is treated as an empty
// store; malformed lines are logged and skipped.
func (b *Backend) Load(ctx context.Context) ([]users.User, error) {
	f, err := os.Open(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logger.Debug(ctx, "users file not found, starting empty")
		} else {
			b.logger.Warn(ctx, "cannot open users file, starting empty", "error", err)
		}
		return []users.User{}, nil
	}
	defer f.Close()

	list, err := users.Decode(f, func(lineNo int, err error) {
		b.logger.Warn(ctx, "skipping malformed record", "line", lineNo, "error", err)
	})
	if err != nil {
		b.logger.Warn(ctx, "cannot read users file, starting empty", "error", err)
		return []users.User{}, nil
	}

	return list, nil
}

// Save rewrites the whole file atomically.
func (b *Backend) Save(ctx context.Context, list []users.User) error {
	data, err := users.Marshal(list)
	if err != nil {
		return err
	}
	if err := writeFile(b.path, data, filePerm); err != nil {
		return err
	}
	b.logger.Debug(ctx, "users file written", "records", len(list))
	return nil
}

func (b *Backend) Close() error { return nil }
