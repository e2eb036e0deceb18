// Package mysql implements the service's storage contract on MySQL
// using database/sql.  One Store instance wraps the shared pool; a
// transaction opened with BeginTx travels inside the context so every
// store method automatically joins it, and reads outside a transaction
// go straight to the pool.
package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/hotel-booking/internal/storage"
)

// dateLayout is how calendar dates are passed to DATE columns.  Dates
// never carry a time-of-day component; check-out is exclusive.
const dateLayout = "2006-01-02"

// Store provides all persistence operations for the booking service.
type Store struct {
	db *sql.DB
}

// New returns a Store bound to the given database pool.
func New(db *sql.DB) *Store { return &Store{db: db} }

// querier is the subset of *sql.DB and *sql.Tx the store methods need.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn returns the transaction carried by ctx when present, otherwise
// the pool.
func (s *Store) conn(ctx context.Context) querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return s.db
}

// BeginTx starts a transaction and returns a derived context carrying
// it.  All store calls made with that context run inside the
// transaction until Commit or Rollback.
func (s *Store) BeginTx(ctx context.Context) (context.Context, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ctx, err
	}
	return withTx(ctx, tx), nil
}

// Commit commits the transaction carried by ctx.
func (s *Store) Commit(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return storage.ErrNoTransaction
	}
	return tx.Commit()
}

// Rollback rolls back the transaction carried by ctx.  Rolling back an
// already committed transaction is a no-op so callers can defer it
// unconditionally.
func (s *Store) Rollback(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return storage.ErrNoTransaction
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

// isDuplicate reports whether err is a MySQL unique constraint
// violation (error 1062).
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
