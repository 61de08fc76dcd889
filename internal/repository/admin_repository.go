package repository

import (
	"context"
	"database/sql"
	"errors"
)

// AdminRepo answers membership queries against the `admins` table.
// The table is a bare set of user ids; a row's presence makes the
// user an administrator.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// IsAdmin reports whether userID is present in the admin set. A
// missing row is not an error; any other query failure propagates.
func (r *AdminRepo) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM admins WHERE user_id=? LIMIT 1", userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
