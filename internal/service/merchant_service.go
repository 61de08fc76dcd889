package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/policy"
	"github.com/iliyamo/merchant-offers-dashboard/internal/repository"
)

// MerchantInput carries everything needed to provision a merchant
// account: the credentials for the new principal plus the profile
// fields of the merchant record.
type MerchantInput struct {
	Name      string
	Email     string
	Password  string
	Address   *string
	Category  *string
	Latitude  *float64
	Longitude *float64
}

// MerchantUpdate carries the editable profile fields. Credentials and
// the owning principal are never updated through this path.
type MerchantUpdate struct {
	Name      string
	Address   *string
	Category  *string
	Latitude  *float64
	Longitude *float64
}

// MerchantService manages merchant accounts, including binding a new
// principal to its merchant record at creation and the best-effort
// principal cleanup at deletion.
type MerchantService struct {
	users      UserStore
	merchants  MerchantStore
	bcryptCost int
}

func NewMerchantService(users UserStore, merchants MerchantStore, bcryptCost int) *MerchantService {
	return &MerchantService{users: users, merchants: merchants, bcryptCost: bcryptCost}
}

// Create provisions a merchant account in two steps: first the
// principal, then the merchant row referencing it. When the second
// step fails the principal is NOT rolled back; the orphan is logged
// and left for manual cleanup. The two-step gap is a documented
// limitation of running against a row store without cross-collection
// transactions.
func (s *MerchantService) Create(ctx context.Context, actor Actor, in MerchantInput) (*model.Merchant, error) {
	if !policy.Allow(actor.Role, actor.MerchantID, policy.MerchantCreate, "") {
		return nil, ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" {
		return nil, validationMsg("name is required")
	}
	if in.Email == "" {
		return nil, validationMsg("email is required")
	}
	if len(in.Password) < 6 {
		return nil, validationMsg("password must be at least 6 characters")
	}

	userID, err := s.users.Create(ctx, in.Email, in.Password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, errors.Join(ErrConflict, repository.ErrEmailExists)
		}
		return nil, persistenceErr("create user", err)
	}

	m := &model.Merchant{
		UserID:    userID,
		Name:      in.Name,
		Address:   in.Address,
		Category:  in.Category,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}
	if err := s.merchants.Create(ctx, m); err != nil {
		log.Printf("merchant row creation failed, orphaned user %s left for manual cleanup: %v", userID, err)
		return nil, persistenceErr("create merchant", err)
	}
	return m, nil
}

// Get fetches a merchant record the actor may read: admins any,
// merchants only their own.
func (s *MerchantService) Get(ctx context.Context, actor Actor, id string) (*model.Merchant, error) {
	m, err := s.getMerchant(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.Allow(actor.Role, actor.MerchantID, policy.MerchantRead, m.ID) {
		return nil, ErrForbidden
	}
	return m, nil
}

// List returns all merchants. Admin only.
func (s *MerchantService) List(ctx context.Context, actor Actor) ([]*model.Merchant, error) {
	if !policy.Allow(actor.Role, actor.MerchantID, policy.MerchantList, "") {
		return nil, ErrForbidden
	}
	out, err := s.merchants.List(ctx)
	if err != nil {
		return nil, persistenceErr("list merchants", err)
	}
	return out, nil
}

// Update rewrites a merchant's profile fields. Admins may edit any
// merchant, a merchant only its own record.
func (s *MerchantService) Update(ctx context.Context, actor Actor, id string, in MerchantUpdate) (*model.Merchant, error) {
	m, err := s.getMerchant(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.Allow(actor.Role, actor.MerchantID, policy.MerchantEdit, m.ID) {
		return nil, ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, validationMsg("name is required")
	}
	m.Name = in.Name
	m.Address = in.Address
	m.Category = in.Category
	m.Latitude = in.Latitude
	m.Longitude = in.Longitude
	if err := s.merchants.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceErr("update merchant", err)
	}
	return m, nil
}

// Delete removes a merchant (and its offers) and then tries to remove
// the owning principal. The merchant deletion is authoritative; a
// failure deleting the principal is logged only and never surfaced, so
// the overall operation still succeeds.
func (s *MerchantService) Delete(ctx context.Context, actor Actor, id string) error {
	if !policy.Allow(actor.Role, actor.MerchantID, policy.MerchantDelete, id) {
		return ErrForbidden
	}
	m, err := s.getMerchant(ctx, id)
	if err != nil {
		return err
	}
	if err := s.merchants.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return ErrNotFound
		}
		return persistenceErr("delete merchant", err)
	}
	if err := s.users.Delete(ctx, m.UserID); err != nil {
		log.Printf("could not delete user %s after merchant %s deletion: %v", m.UserID, id, err)
	}
	return nil
}

func (s *MerchantService) getMerchant(ctx context.Context, id string) (*model.Merchant, error) {
	m, err := s.merchants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceErr("load merchant", err)
	}
	return m, nil
}
