// Package sqlite keeps users in a local SQLite database. The table is
// rewritten inside one transaction on every save, with an explicit position
// column carrying insertion order.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/dmitrijs2005/credstore/internal/dbx"
	"github.com/dmitrijs2005/credstore/internal/logging"
	"github.com/dmitrijs2005/credstore/internal/users"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

type Backend struct {
	db     *sql.DB
	logger logging.Logger
}

// RunMigrations brings the schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(ctx context.Context, path string, logger logging.Logger) (*Backend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewWithDB(db, logger.With("backend", "sqlite", "path", path)), nil
}

// NewWithDB wraps an already migrated database.
func NewWithDB(db *sql.DB, logger logging.Logger) *Backend {
	return &Backend{db: db, logger: logger}
}

func (b *Backend) Load(ctx context.Context) ([]users.User, error) {
	query := `SELECT username, password FROM users ORDER BY position`

	rows, err := b.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(&u.Username, &u.Password); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func (b *Backend) Save(ctx context.Context, list []users.User) error {
	err := dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return err
		}

		query := `INSERT INTO users (position, username, password) VALUES (?, ?, ?)`
		for i, u := range list {
			if _, err := tx.ExecContext(ctx, query, i, u.Username, u.Password); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	b.logger.Debug(ctx, "users table rewritten", "records", len(list))
	return nil
}

func (b *Backend) Close() error {
	return b.db.Close()
}
