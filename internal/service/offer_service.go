package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/iliyamo/merchant-offers-dashboard/internal/lifecycle"
	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/policy"
	"github.com/iliyamo/merchant-offers-dashboard/internal/queue"
	"github.com/iliyamo/merchant-offers-dashboard/internal/repository"
)

// OfferInput carries the writable content fields of an offer. Status
// is honored only on admin edits; merchant-supplied statuses are
// ignored everywhere. Any merchant id a client might send is never
// part of this struct: offers are always bound to the caller's own
// merchant.
type OfferInput struct {
	Title       string
	Description string
	Discount    *float64
	StartDate   time.Time
	EndDate     time.Time
	Conditions  *string
	Status      model.OfferStatus
}

// OfferService runs the offer approval workflow: scoped listing,
// creation (always PENDING), content edits, admin status transitions
// and owner deletion. Status changes are announced on the message
// queue best-effort.
type OfferService struct {
	offers    OfferStore
	merchants MerchantStore

	// publish announces a status change; nil disables publishing.
	// Failures are logged and ignored, the write has already
	// committed.
	publish func(context.Context, queue.OfferStatusChangedEvent) error
}

func NewOfferService(offers OfferStore, merchants MerchantStore,
	publish func(context.Context, queue.OfferStatusChangedEvent) error) *OfferService {
	return &OfferService{offers: offers, merchants: merchants, publish: publish}
}

// List returns the offers visible to the actor: every offer for
// admins, only the actor's own for merchants. An optional status
// filter narrows the result.
func (s *OfferService) List(ctx context.Context, actor Actor, status model.OfferStatus) ([]*model.Offer, error) {
	if status != "" && !status.Valid() {
		return nil, validationErr(lifecycle.ErrUnknownStatus)
	}
	switch actor.Role {
	case model.RoleAdmin:
		out, err := s.offers.ListAll(ctx, status)
		if err != nil {
			return nil, persistenceErr("list offers", err)
		}
		return out, nil
	case model.RoleMerchant:
		if actor.MerchantID == "" {
			return nil, ErrForbidden
		}
		out, err := s.offers.ListByMerchant(ctx, actor.MerchantID, status)
		if err != nil {
			return nil, persistenceErr("list offers", err)
		}
		return out, nil
	default:
		return nil, ErrForbidden
	}
}

// ListApproved returns every approved offer. It backs the public,
// unauthenticated browse endpoint.
func (s *OfferService) ListApproved(ctx context.Context) ([]*model.Offer, error) {
	out, err := s.offers.ListAll(ctx, model.StatusApproved)
	if err != nil {
		return nil, persistenceErr("list approved offers", err)
	}
	return out, nil
}

// Get fetches a single offer the actor is allowed to read.
func (s *OfferService) Get(ctx context.Context, actor Actor, id string) (*model.Offer, error) {
	o, err := s.getOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.Allow(actor.Role, actor.MerchantID, policy.OfferRead, o.MerchantID) {
		return nil, ErrForbidden
	}
	return o, nil
}

// Create inserts a new offer for the acting merchant. The offer enters
// at PENDING no matter what status the client supplied, and it is
// bound to the caller's resolved merchant id.
func (s *OfferService) Create(ctx context.Context, actor Actor, in OfferInput) (*model.Offer, error) {
	if actor.Role != model.RoleMerchant || actor.MerchantID == "" {
		return nil, ErrForbidden
	}
	if err := lifecycle.ValidateContent(in.Title, in.Description, in.Discount,
		in.StartDate, in.EndDate, time.Now().UTC()); err != nil {
		return nil, validationErr(err)
	}
	o := &model.Offer{
		MerchantID:  actor.MerchantID,
		Title:       in.Title,
		Description: in.Description,
		Discount:    in.Discount,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Conditions:  in.Conditions,
		Status:      lifecycle.Initial,
	}
	if err := s.offers.Create(ctx, o); err != nil {
		return nil, persistenceErr("create offer", err)
	}
	return o, nil
}

// UpdateContent edits an offer's content fields. Merchants may only
// touch their own offers and the stored status is preserved; admins
// may edit any offer and set the status explicitly through
// in.Status (empty means keep).
func (s *OfferService) UpdateContent(ctx context.Context, actor Actor, id string, in OfferInput) (*model.Offer, error) {
	cur, err := s.getOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.Allow(actor.Role, actor.MerchantID, policy.OfferEdit, cur.MerchantID) {
		return nil, ErrForbidden
	}
	if err := lifecycle.ValidateContent(in.Title, in.Description, in.Discount,
		in.StartDate, in.EndDate, time.Now().UTC()); err != nil {
		return nil, validationErr(err)
	}

	next := *cur
	next.Title = in.Title
	next.Description = in.Description
	next.Discount = in.Discount
	next.StartDate = in.StartDate
	next.EndDate = in.EndDate
	next.Conditions = in.Conditions

	if actor.Role == model.RoleAdmin {
		if in.Status != "" {
			if !in.Status.Valid() {
				return nil, validationErr(lifecycle.ErrUnknownStatus)
			}
			next.Status = in.Status
		}
		if err := s.offers.Update(ctx, &next); err != nil {
			return nil, s.writeErr("update offer", err)
		}
		if next.Status != cur.Status {
			s.announce(ctx, actor, cur, next.Status)
		}
		return &next, nil
	}

	// Merchant path: the scoped update never writes the status column,
	// so a concurrent admin decision is not silently overwritten.
	if err := s.offers.UpdateForMerchant(ctx, &next, actor.MerchantID); err != nil {
		return nil, s.writeErr("update offer", err)
	}
	next.Status = cur.Status
	return &next, nil
}

// UpdateStatus moves an offer to a new approval state. Admin only;
// transitions are validated by the lifecycle rules (reset to PENDING
// is rejected when the offer is already pending).
func (s *OfferService) UpdateStatus(ctx context.Context, actor Actor, id string, status model.OfferStatus) (*model.Offer, error) {
	cur, err := s.getOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.Allow(actor.Role, actor.MerchantID, policy.OfferSetStat, cur.MerchantID) {
		return nil, ErrForbidden
	}
	if err := lifecycle.CanSetStatus(cur.Status, status); err != nil {
		return nil, validationErr(err)
	}
	if err := s.offers.UpdateStatus(ctx, id, status); err != nil {
		return nil, s.writeErr("update offer status", err)
	}
	s.announce(ctx, actor, cur, status)
	updated := *cur
	updated.Status = status
	return &updated, nil
}

// Delete removes an offer. Only the owning merchant may delete,
// regardless of the offer's status; admins are denied by policy.
func (s *OfferService) Delete(ctx context.Context, actor Actor, id string) error {
	cur, err := s.getOffer(ctx, id)
	if err != nil {
		return err
	}
	if !policy.Allow(actor.Role, actor.MerchantID, policy.OfferDelete, cur.MerchantID) {
		return ErrForbidden
	}
	if err := s.offers.DeleteByIDAndMerchant(ctx, id, actor.MerchantID); err != nil {
		return s.writeErr("delete offer", err)
	}
	return nil
}

// DashboardStats are the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalMerchants int64 `json:"total_merchants"`
	TotalOffers    int64 `json:"total_offers"`
	PendingOffers  int64 `json:"pending_offers"`
	ApprovedOffers int64 `json:"approved_offers"`
}

// AdminStats aggregates the global counters. Admin only.
func (s *OfferService) AdminStats(ctx context.Context, actor Actor) (DashboardStats, error) {
	if actor.Role != model.RoleAdmin {
		return DashboardStats{}, ErrForbidden
	}
	var (
		st  DashboardStats
		err error
	)
	if st.TotalMerchants, err = s.merchants.Count(ctx); err != nil {
		return DashboardStats{}, persistenceErr("count merchants", err)
	}
	if st.TotalOffers, err = s.offers.Count(ctx, "", ""); err != nil {
		return DashboardStats{}, persistenceErr("count offers", err)
	}
	if st.PendingOffers, err = s.offers.Count(ctx, "", model.StatusPending); err != nil {
		return DashboardStats{}, persistenceErr("count pending offers", err)
	}
	if st.ApprovedOffers, err = s.offers.Count(ctx, "", model.StatusApproved); err != nil {
		return DashboardStats{}, persistenceErr("count approved offers", err)
	}
	return st, nil
}

// MerchantStats are the counters shown on a merchant's own dashboard.
type MerchantStats struct {
	TotalOffers    int64 `json:"total_offers"`
	PendingOffers  int64 `json:"pending_offers"`
	ApprovedOffers int64 `json:"approved_offers"`
	RejectedOffers int64 `json:"rejected_offers"`
}

// Stats aggregates the acting merchant's own offer counters.
func (s *OfferService) Stats(ctx context.Context, actor Actor) (MerchantStats, error) {
	if actor.Role != model.RoleMerchant || actor.MerchantID == "" {
		return MerchantStats{}, ErrForbidden
	}
	var (
		st  MerchantStats
		err error
	)
	if st.TotalOffers, err = s.offers.Count(ctx, actor.MerchantID, ""); err != nil {
		return MerchantStats{}, persistenceErr("count offers", err)
	}
	if st.PendingOffers, err = s.offers.Count(ctx, actor.MerchantID, model.StatusPending); err != nil {
		return MerchantStats{}, persistenceErr("count pending offers", err)
	}
	if st.ApprovedOffers, err = s.offers.Count(ctx, actor.MerchantID, model.StatusApproved); err != nil {
		return MerchantStats{}, persistenceErr("count approved offers", err)
	}
	if st.RejectedOffers, err = s.offers.Count(ctx, actor.MerchantID, model.StatusRejected); err != nil {
		return MerchantStats{}, persistenceErr("count rejected offers", err)
	}
	return st, nil
}

func (s *OfferService) getOffer(ctx context.Context, id string) (*model.Offer, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceErr("load offer", err)
	}
	return o, nil
}

func (s *OfferService) writeErr(op string, err error) error {
	if errors.Is(err, repository.ErrOfferNotFound) {
		// The row vanished between the read and the scoped write.
		return ErrNotFound
	}
	return persistenceErr(op, err)
}

func (s *OfferService) announce(ctx context.Context, actor Actor, cur *model.Offer, next model.OfferStatus) {
	if s.publish == nil {
		return
	}
	ev := queue.OfferStatusChangedEvent{
		OfferID:      cur.ID,
		MerchantID:   cur.MerchantID,
		MerchantName: cur.MerchantName,
		Title:        cur.Title,
		OldStatus:    string(cur.Status),
		NewStatus:    string(next),
		ChangedBy:    actor.UserID,
		ChangedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publish(ctx, ev); err != nil {
		log.Printf("offer status event publish failed (offer=%s): %v", cur.ID, err)
	}
}
