package store

import (
	"context"

	"github.com/dmitrijs2005/credstore/internal/users"
)

// Backend persists the whole user collection.
type Backend interface {
	// Load returns the persisted users in their stored order. A medium that
	// does not exist yet yields an empty slice and no error.
	Load(ctx context.Context) ([]users.User, error)

	// Save replaces the persisted collection with list. Implementations must
	// leave the medium either fully old or fully new.
	Save(ctx context.Context, list []users.User) error

	Close() error
}
