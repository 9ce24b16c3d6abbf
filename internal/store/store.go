package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/credstore/internal/logging"
	"github.com/dmitrijs2005/credstore/internal/users"
)

type Store struct {
	mu      sync.RWMutex
	users   []users.User
	backend Backend
	logger  logging.Logger
}

// Open loads the initial collection from backend. Duplicate usernames found
// in the medium are dropped (first occurrence wins) so the store starts out
// honoring its uniqueness invariant.
func Open(ctx context.Context, backend Backend, logger logging.Logger) (*Store, error) {
	loaded, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	s := &Store{backend: backend, logger: logger}
	s.users = make([]users.User, 0, len(loaded))

	for _, u := range loaded {
		if s.indexOf(u.Username) >= 0 {
			logger.Warn(ctx, "dropping duplicate user from storage", "username", u.Username)
			continue
		}
		s.users = append(s.users, u)
	}

	logger.Debug(ctx, "store opened", "users", len(s.users))
	return s, nil
}

// indexOf returns the position of username or -1. Callers hold mu.
func (s *Store) indexOf(username string) int {
	for i, u := range s.users {
		if u.Username == username {
			return i
		}
	}
	return -1
}

// commit persists next and, on success, makes it the live collection.
// Callers hold mu for writing.
func (s *Store) commit(ctx context.Context, op string, next []users.User) error {
	if err := s.backend.Save(ctx, next); err != nil {
		s.logger.Warn(ctx, "save failed, change discarded", "op", op, "error", err)
		return fmt.Errorf("save users: %w", err)
	}
	s.users = next
	return nil
}

// Register adds a user. It reports false with a nil error when the username
// is already taken; nothing is written in that case. A non-nil error means
// the save failed and the user was not added.
func (s *Store) Register(ctx context.Context, username, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(username) >= 0 {
		return false, nil
	}

	next := make([]users.User, len(s.users), len(s.users)+1)
	copy(next, s.users)
	next = append(next, users.User{Username: username, Password: password})

	if err := s.commit(ctx, "register", next); err != nil {
		return false, err
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return true, nil
}

// Login reports whether username exists with exactly this password.
func (s *Store) Login(username, password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(username)
	return i >= 0 && s.users[i].Password == password
}

// Delete removes a user. It reports false with a nil error when no such user
// exists. A non-nil error means the save failed and the user was kept.
func (s *Store) Delete(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(username)
	if i < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.users), i, i+1)

	if err := s.commit(ctx, "delete", next); err != nil {
		return false, err
	}

	s.logger.Info(ctx, "user deleted", "username", username)
	return true, nil
}

// List returns a snapshot of the usernames in insertion order.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return users.Usernames(s.users)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}

func (s *Store) Close() error {
	return s.backend.Close()
}
