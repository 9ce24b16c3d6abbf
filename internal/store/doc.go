// Package store implements the credential store: an ordered, deduplicated set
// of users held in memory and mirrored to a Backend after every change.
//
// Mutations are staged: Register and Delete build the next collection, hand it
// to Backend.Save, and only replace the in-memory state when the save
// succeeded. A failed save therefore leaves both memory and the backing medium
// as they were, and the error is returned to the caller as a warning.
//
// Usernames are compared case-sensitively. Lookup is a linear scan in
// insertion order, which is also the order List reports.
//
// Typical usage
//
//	s, err := store.Open(ctx, backend, logger)
//	ok, err := s.Register(ctx, "alice", "pw1")
//	if s.Login("alice", "pw1") { ... }
//	names := s.List()
//	ok, err = s.Delete(ctx, "alice")
package store
