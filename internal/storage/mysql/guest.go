package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/storage"
)

// GuestByEmail looks up a guest by email, matched case-insensitively.
// Returns storage.ErrNotFound when no guest exists for the address.
func (s *Store) GuestByEmail(ctx context.Context, email string) (*model.Guest, error) {
	const q = `SELECT user_id, user_code, first_name, last_name, email, is_corporate, company_name
	           FROM users WHERE LOWER(email) = LOWER(?)`
	var g model.Guest
	var company sql.NullString
	err := s.conn(ctx).QueryRowContext(ctx, q, email).Scan(
		&g.ID, &g.Code, &g.FirstName, &g.LastName, &g.Email, &g.IsCorporate, &company,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	if company.Valid {
		c := company.String
		g.CompanyName = &c
	}
	return &g, nil
}

// CreateGuest inserts a new guest row and populates the generated ID.
func (s *Store) CreateGuest(ctx context.Context, g *model.Guest) error {
	const q = `INSERT INTO users (user_code, first_name, last_name, email, is_corporate, company_name)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := s.conn(ctx).ExecContext(ctx, q,
		g.Code, g.FirstName, g.LastName, g.Email, g.IsCorporate, g.CompanyName,
	)
	if err != nil {
		if isDuplicate(err) {
			return storage.ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	return nil
}
