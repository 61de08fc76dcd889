package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
)

// OfferRepo encapsulates all database queries related to offers. List
// and detail queries join the owning merchant's name for admin views;
// merchant-scoped variants carry the merchant id in the WHERE clause
// so a caller can never reach another merchant's rows.
type OfferRepo struct {
	db *sql.DB
}

// NewOfferRepo constructs an OfferRepo with the provided DB handle.
func NewOfferRepo(db *sql.DB) *OfferRepo {
	return &OfferRepo{db: db}
}

const offerJoin = `SELECT o.id, o.merchant_id, o.title, o.description, o.discount,
	       o.start_date, o.end_date, o.conditions, o.status, o.created_at, m.name
	FROM offers o JOIN merchants m ON m.id = o.merchant_id`

// Create inserts a new offer. A fresh uuid id is generated when the
// struct carries none. The caller is responsible for having set the
// status; a follow-up SELECT populates CreatedAt.
func (r *OfferRepo) Create(ctx context.Context, o *model.Offer) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	const qInsert = `INSERT INTO offers
	    (id, merchant_id, title, description, discount, start_date, end_date, conditions, status)
	    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, qInsert,
		o.ID, o.MerchantID, o.Title, o.Description, o.Discount,
		o.StartDate, o.EndDate, o.Conditions, string(o.Status))
	if err != nil {
		return err
	}
	const qSelect = "SELECT created_at FROM offers WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, o.ID).Scan(&o.CreatedAt)
}

// GetByID fetches an offer by id regardless of owner, with the owning
// merchant's name joined in. Returns ErrOfferNotFound when absent.
func (r *OfferRepo) GetByID(ctx context.Context, id string) (*model.Offer, error) {
	const q = offerJoin + " WHERE o.id = ?"
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

func (r *OfferRepo) scanOne(row *sql.Row) (*model.Offer, error) {
	var o model.Offer
	var status string
	err := row.Scan(&o.ID, &o.MerchantID, &o.Title, &o.Description, &o.Discount,
		&o.StartDate, &o.EndDate, &o.Conditions, &status, &o.CreatedAt, &o.MerchantName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	o.Status = model.OfferStatus(status)
	return &o, nil
}

// ListAll returns every offer, optionally filtered by status, newest
// first. Used by admin views.
func (r *OfferRepo) ListAll(ctx context.Context, status model.OfferStatus) ([]*model.Offer, error) {
	q := offerJoin
	args := []any{}
	if status != "" {
		q += " WHERE o.status = ?"
		args = append(args, string(status))
	}
	q += " ORDER BY o.created_at DESC"
	return r.list(ctx, q, args...)
}

// ListByMerchant returns the offers owned by merchantID, optionally
// filtered by status, newest first.
func (r *OfferRepo) ListByMerchant(ctx context.Context, merchantID string, status model.OfferStatus) ([]*model.Offer, error) {
	q := offerJoin + " WHERE o.merchant_id = ?"
	args := []any{merchantID}
	if status != "" {
		q += " AND o.status = ?"
		args = append(args, string(status))
	}
	q += " ORDER BY o.created_at DESC"
	return r.list(ctx, q, args...)
}

func (r *OfferRepo) list(ctx context.Context, q string, args ...any) ([]*model.Offer, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Offer
	for rows.Next() {
		o := new(model.Offer)
		var status string
		if err := rows.Scan(&o.ID, &o.MerchantID, &o.Title, &o.Description, &o.Discount,
			&o.StartDate, &o.EndDate, &o.Conditions, &status, &o.CreatedAt, &o.MerchantName); err != nil {
			return nil, err
		}
		o.Status = model.OfferStatus(status)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites an offer's content and status by id, without an
// ownership filter. Admin path only. Returns ErrOfferNotFound when no
// row matched.
func (r *OfferRepo) Update(ctx context.Context, o *model.Offer) error {
	const q = `UPDATE offers
	           SET title = ?, description = ?, discount = ?, start_date = ?,
	               end_date = ?, conditions = ?, status = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		o.Title, o.Description, o.Discount, o.StartDate, o.EndDate,
		o.Conditions, string(o.Status), o.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOfferNotFound
	}
	return nil
}

// UpdateForMerchant rewrites an offer's content only when the row is
// owned by merchantID; the stored status is never touched on this
// path. Returns ErrOfferNotFound when no row matched (absent or owned
// by someone else).
func (r *OfferRepo) UpdateForMerchant(ctx context.Context, o *model.Offer, merchantID string) error {
	const q = `UPDATE offers
	           SET title = ?, description = ?, discount = ?, start_date = ?,
	               end_date = ?, conditions = ?
	           WHERE id = ? AND merchant_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		o.Title, o.Description, o.Discount, o.StartDate, o.EndDate,
		o.Conditions, o.ID, merchantID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOfferNotFound
	}
	return nil
}

// UpdateStatus sets only the status column. The transition has already
// been validated by the lifecycle rules.
func (r *OfferRepo) UpdateStatus(ctx context.Context, id string, status model.OfferStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE offers SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOfferNotFound
	}
	return nil
}

// DeleteByIDAndMerchant removes an offer only when owned by
// merchantID. Returns ErrOfferNotFound when no row matched.
func (r *OfferRepo) DeleteByIDAndMerchant(ctx context.Context, id, merchantID string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM offers WHERE id = ? AND merchant_id = ?", id, merchantID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOfferNotFound
	}
	return nil
}

// Count returns the number of offers matching the optional status and
// merchant filters; pass zero values to count everything.
func (r *OfferRepo) Count(ctx context.Context, merchantID string, status model.OfferStatus) (int64, error) {
	q := "SELECT COUNT(*) FROM offers WHERE 1=1"
	args := []any{}
	if merchantID != "" {
		q += " AND merchant_id = ?"
		args = append(args, merchantID)
	}
	if status != "" {
		q += " AND status = ?"
		args = append(args, string(status))
	}
	var n int64
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&n)
	return n, err
}
