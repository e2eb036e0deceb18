// Package storage defines error values shared between storage backends
// and the service layer.  Backends translate driver-specific failures
// into these sentinels so the service can branch with errors.Is without
// knowing which engine sits underneath.
package storage

import "errors"

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique constraint,
// e.g. a colliding booking reference.
var ErrDuplicate = errors.New("duplicate record")

// ErrNoTransaction is returned when Commit or Rollback is called on a
// context that does not carry a transaction.
var ErrNoTransaction = errors.New("no transaction in context")
