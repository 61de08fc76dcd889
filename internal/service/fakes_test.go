package service

import (
	"context"
	"fmt"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/repository"
)

// In-memory stand-ins for the repository layer. They reuse the
// repository sentinel errors so the services exercise the same
// error-translation paths as in production.

type fakeUsers struct {
	seq       int
	emails    map[string]string // email -> user id
	deleted   []string
	createErr error
	deleteErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{emails: map[string]string{}}
}

func (f *fakeUsers) Create(_ context.Context, email, _ string, _ int) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	if _, ok := f.emails[email]; ok {
		return "", repository.ErrEmailExists
	}
	f.seq++
	id := fmt.Sprintf("u-%d", f.seq)
	f.emails[email] = id
	return id, nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAdmins struct {
	set map[string]bool
	err error
}

func (f *fakeAdmins) IsAdmin(_ context.Context, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.set[userID], nil
}

type fakeMerchants struct {
	byID      map[string]*model.Merchant
	readErr   error
	createErr error
	deleteErr error
}

func newFakeMerchants(ms ...*model.Merchant) *fakeMerchants {
	f := &fakeMerchants{byID: map[string]*model.Merchant{}}
	for _, m := range ms {
		f.byID[m.ID] = m
	}
	return f
}

func (f *fakeMerchants) Create(_ context.Context, m *model.Merchant) error {
	if f.createErr != nil {
		return f.createErr
	}
	if m.ID == "" {
		m.ID = fmt.Sprintf("m-%d", len(f.byID)+1)
	}
	cp := *m
	f.byID[m.ID] = &cp
	return nil
}

func (f *fakeMerchants) GetByID(_ context.Context, id string) (*model.Merchant, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	m, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrMerchantNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMerchants) GetByUserID(_ context.Context, userID string) (*model.Merchant, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	for _, m := range f.byID {
		if m.UserID == userID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, repository.ErrMerchantNotFound
}

func (f *fakeMerchants) List(_ context.Context) ([]*model.Merchant, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([]*model.Merchant, 0, len(f.byID))
	for _, m := range f.byID {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeMerchants) Update(_ context.Context, m *model.Merchant) error {
	if _, ok := f.byID[m.ID]; !ok {
		return repository.ErrMerchantNotFound
	}
	cp := *m
	f.byID[m.ID] = &cp
	return nil
}

func (f *fakeMerchants) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return repository.ErrMerchantNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeMerchants) Count(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeOffers struct {
	byID map[string]*model.Offer
}

func newFakeOffers(os ...*model.Offer) *fakeOffers {
	f := &fakeOffers{byID: map[string]*model.Offer{}}
	for _, o := range os {
		f.byID[o.ID] = o
	}
	return f
}

func (f *fakeOffers) Create(_ context.Context, o *model.Offer) error {
	if o.ID == "" {
		o.ID = fmt.Sprintf("o-%d", len(f.byID)+1)
	}
	cp := *o
	f.byID[o.ID] = &cp
	return nil
}

func (f *fakeOffers) GetByID(_ context.Context, id string) (*model.Offer, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrOfferNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOffers) ListAll(_ context.Context, status model.OfferStatus) ([]*model.Offer, error) {
	var out []*model.Offer
	for _, o := range f.byID {
		if status == "" || o.Status == status {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOffers) ListByMerchant(_ context.Context, merchantID string, status model.OfferStatus) ([]*model.Offer, error) {
	var out []*model.Offer
	for _, o := range f.byID {
		if o.MerchantID != merchantID {
			continue
		}
		if status == "" || o.Status == status {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOffers) Update(_ context.Context, o *model.Offer) error {
	if _, ok := f.byID[o.ID]; !ok {
		return repository.ErrOfferNotFound
	}
	cp := *o
	f.byID[o.ID] = &cp
	return nil
}

func (f *fakeOffers) UpdateForMerchant(_ context.Context, o *model.Offer, merchantID string) error {
	cur, ok := f.byID[o.ID]
	if !ok || cur.MerchantID != merchantID {
		return repository.ErrOfferNotFound
	}
	cp := *o
	cp.Status = cur.Status // the scoped update never writes status
	cp.MerchantID = cur.MerchantID
	f.byID[o.ID] = &cp
	return nil
}

func (f *fakeOffers) UpdateStatus(_ context.Context, id string, status model.OfferStatus) error {
	o, ok := f.byID[id]
	if !ok {
		return repository.ErrOfferNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOffers) DeleteByIDAndMerchant(_ context.Context, id, merchantID string) error {
	o, ok := f.byID[id]
	if !ok || o.MerchantID != merchantID {
		return repository.ErrOfferNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeOffers) Count(_ context.Context, merchantID string, status model.OfferStatus) (int64, error) {
	var n int64
	for _, o := range f.byID {
		if merchantID != "" && o.MerchantID != merchantID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		n++
	}
	return n, nil
}
