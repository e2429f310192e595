package store

import (
	"context"
	"errors"
	"fmt"
)

// Package store holds the resource sequence behind a small interface.
// Two backends share the same behavior:
// - memory.go: slice + monotonic counter under a mutex (default)
// - sql.go:    sqlx over an in-process SQLite database
//
// Nothing here outlives the process.

// ErrNotFound is returned when no resource carries the requested id.
var ErrNotFound = errors.New("resource not found")

// Resource is the single entity managed by the service.
type Resource struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}

// Store is the ordered resource sequence plus its id counter.
// List returns resources in creation order. Ids are never reused.
type Store interface {
	List(ctx context.Context) ([]Resource, error)
	Get(ctx context.Context, id int64) (Resource, error)
	Create(ctx context.Context, name, description string) (Resource, error)
	Update(ctx context.Context, id int64, name, description string) (Resource, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Open returns the backend named by driver.
func Open(driver string) (Store, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return OpenSQL("")
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
