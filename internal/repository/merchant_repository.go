package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
)

// MerchantRepo encapsulates all database queries related to merchants.
// Each merchant belongs to exactly one user (unique user_id) and may
// own many offers.
type MerchantRepo struct {
	db *sql.DB
}

// NewMerchantRepo constructs a MerchantRepo with the provided DB
// handle. This allows dependency injection of the database in tests
// and at startup.
func NewMerchantRepo(db *sql.DB) *MerchantRepo {
	return &MerchantRepo{db: db}
}

const merchantCols = "id, user_id, name, address, category, latitude, longitude, created_at"

// Create inserts a new merchant. A fresh uuid id is generated when the
// struct carries none. After the insert a follow-up SELECT populates
// the CreatedAt field so callers receive a fully populated record.
func (r *MerchantRepo) Create(ctx context.Context, m *model.Merchant) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	const qInsert = `INSERT INTO merchants (id, user_id, name, address, category, latitude, longitude)
	                 VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, qInsert,
		m.ID, m.UserID, m.Name, m.Address, m.Category, m.Latitude, m.Longitude)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrMerchantExists
		}
		return err
	}
	const qSelect = "SELECT created_at FROM merchants WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, m.ID).Scan(&m.CreatedAt)
}

// GetByID fetches a merchant by its id. Returns ErrMerchantNotFound
// when no row exists.
func (r *MerchantRepo) GetByID(ctx context.Context, id string) (*model.Merchant, error) {
	const q = "SELECT " + merchantCols + " FROM merchants WHERE id = ?"
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// GetByUserID fetches the merchant owned by the given user id. This is
// the ownership lookup the role resolver runs on every request.
func (r *MerchantRepo) GetByUserID(ctx context.Context, userID string) (*model.Merchant, error) {
	const q = "SELECT " + merchantCols + " FROM merchants WHERE user_id = ?"
	return r.scanOne(r.db.QueryRowContext(ctx, q, userID))
}

func (r *MerchantRepo) scanOne(row *sql.Row) (*model.Merchant, error) {
	var m model.Merchant
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Address, &m.Category,
		&m.Latitude, &m.Longitude, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns all merchants ordered by creation time, newest first.
func (r *MerchantRepo) List(ctx context.Context) ([]*model.Merchant, error) {
	const q = "SELECT " + merchantCols + " FROM merchants ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Merchant
	for rows.Next() {
		m := new(model.Merchant)
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Address, &m.Category,
			&m.Latitude, &m.Longitude, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites the profile fields of a merchant. The owning user id
// is never updated. Returns ErrMerchantNotFound when no row matched.
func (r *MerchantRepo) Update(ctx context.Context, m *model.Merchant) error {
	const q = `UPDATE merchants
	           SET name = ?, address = ?, category = ?, latitude = ?, longitude = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		m.Name, m.Address, m.Category, m.Latitude, m.Longitude, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMerchantNotFound
	}
	return nil
}

// Delete removes a merchant and all of its offers inside one
// transaction. The owning user row is NOT touched here; cleaning up
// the principal is a separate best-effort step owned by the service
// layer. Returns ErrMerchantNotFound when the merchant does not exist.
func (r *MerchantRepo) Delete(ctx context.Context, id string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	if _, err = tx.ExecContext(ctx, "DELETE FROM offers WHERE merchant_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM merchants WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrMerchantNotFound
		return err
	}
	return nil
}

// Count returns the total number of merchants.
func (r *MerchantRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM merchants").Scan(&n)
	return n, err
}
