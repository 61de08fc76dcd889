package service

import (
	"context"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
)

// The store interfaces below are the slice of the repository layer the
// services actually consume. The concrete *repository types satisfy
// them; tests provide in-memory fakes.

// UserStore persists principals.
type UserStore interface {
	Create(ctx context.Context, email, password string, cost int) (string, error)
	Delete(ctx context.Context, id string) error
}

// AdminStore answers admin-set membership queries.
type AdminStore interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// MerchantStore persists merchant records.
type MerchantStore interface {
	Create(ctx context.Context, m *model.Merchant) error
	GetByID(ctx context.Context, id string) (*model.Merchant, error)
	GetByUserID(ctx context.Context, userID string) (*model.Merchant, error)
	List(ctx context.Context) ([]*model.Merchant, error)
	Update(ctx context.Context, m *model.Merchant) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// OfferStore persists offers. Merchant-scoped writes carry the
// merchant id into the WHERE clause so ownership is enforced at the
// row level, not just in the policy check.
type OfferStore interface {
	Create(ctx context.Context, o *model.Offer) error
	GetByID(ctx context.Context, id string) (*model.Offer, error)
	ListAll(ctx context.Context, status model.OfferStatus) ([]*model.Offer, error)
	ListByMerchant(ctx context.Context, merchantID string, status model.OfferStatus) ([]*model.Offer, error)
	Update(ctx context.Context, o *model.Offer) error
	UpdateForMerchant(ctx context.Context, o *model.Offer, merchantID string) error
	UpdateStatus(ctx context.Context, id string, status model.OfferStatus) error
	DeleteByIDAndMerchant(ctx context.Context, id, merchantID string) error
	Count(ctx context.Context, merchantID string, status model.OfferStatus) (int64, error)
}

// Actor is the resolved identity a handler passes into every service
// call: the authenticated user id, the role computed for this request
// and, for merchants, the bound merchant id.
type Actor struct {
	UserID     string
	Role       model.Role
	MerchantID string
}
