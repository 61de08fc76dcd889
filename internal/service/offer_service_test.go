package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/queue"
)

var (
	merchantM = Actor{UserID: "u-m", Role: model.RoleMerchant, MerchantID: "m-1"}
	merchantN = Actor{UserID: "u-n", Role: model.RoleMerchant, MerchantID: "m-2"}
	admin     = Actor{UserID: "u-a", Role: model.RoleAdmin}
	nobody    = Actor{UserID: "u-x", Role: model.RoleNone}
)

func validInput() OfferInput {
	now := time.Now().UTC()
	return OfferInput{
		Title:       "10% Off",
		Description: "Ten percent off everything",
		StartDate:   now,
		EndDate:     now.Add(7 * 24 * time.Hour),
	}
}

func seedOffer(status model.OfferStatus) *model.Offer {
	now := time.Now().UTC()
	return &model.Offer{
		ID:          "o-1",
		MerchantID:  "m-1",
		Title:       "10% Off",
		Description: "Ten percent off everything",
		StartDate:   now,
		EndDate:     now.Add(7 * 24 * time.Hour),
		Status:      status,
	}
}

func newOfferService(offers *fakeOffers) *OfferService {
	return NewOfferService(offers, newFakeMerchants(), nil)
}

func TestCreateAlwaysEntersPending(t *testing.T) {
	offers := newFakeOffers()
	svc := newOfferService(offers)

	in := validInput()
	in.Status = model.StatusApproved // client-supplied status must be ignored

	o, err := svc.Create(context.Background(), merchantM, in)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, o.Status)
	assert.Equal(t, "m-1", o.MerchantID)

	stored, err := offers.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
}

func TestCreateRequiresMerchantRole(t *testing.T) {
	svc := newOfferService(newFakeOffers())
	for _, actor := range []Actor{admin, nobody, {UserID: "u-m", Role: model.RoleMerchant}} {
		_, err := svc.Create(context.Background(), actor, validInput())
		assert.ErrorIs(t, err, ErrForbidden, "actor=%+v", actor)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newOfferService(newFakeOffers())
	ctx := context.Background()

	in := validInput()
	in.Title = ""
	_, err := svc.Create(ctx, merchantM, in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validInput()
	in.EndDate = in.StartDate.Add(-time.Hour)
	_, err = svc.Create(ctx, merchantM, in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validInput()
	in.StartDate = time.Now().UTC().Add(-48 * time.Hour)
	in.EndDate = time.Now().UTC().Add(-24 * time.Hour)
	_, err = svc.Create(ctx, merchantM, in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMerchantEditPreservesStatus(t *testing.T) {
	offers := newFakeOffers(seedOffer(model.StatusRejected))
	svc := newOfferService(offers)

	in := validInput()
	in.Title = "15% Off"
	in.Status = model.StatusApproved // merchants cannot touch status

	o, err := svc.UpdateContent(context.Background(), merchantM, "o-1", in)
	require.NoError(t, err)
	assert.Equal(t, "15% Off", o.Title)
	assert.Equal(t, model.StatusRejected, o.Status)

	stored, _ := offers.GetByID(context.Background(), "o-1")
	assert.Equal(t, model.StatusRejected, stored.Status)
}

func TestEditDeniedForNonOwner(t *testing.T) {
	svc := newOfferService(newFakeOffers(seedOffer(model.StatusPending)))
	_, err := svc.UpdateContent(context.Background(), merchantN, "o-1", validInput())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAdminEditMaySetStatus(t *testing.T) {
	offers := newFakeOffers(seedOffer(model.StatusPending))
	svc := newOfferService(offers)

	in := validInput()
	in.Status = model.StatusApproved

	o, err := svc.UpdateContent(context.Background(), admin, "o-1", in)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, o.Status)

	// Empty status on an admin edit keeps the stored one.
	in.Status = ""
	o, err = svc.UpdateContent(context.Background(), admin, "o-1", in)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, o.Status)
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()

	for _, from := range []model.OfferStatus{model.StatusPending, model.StatusApproved, model.StatusRejected} {
		for _, to := range []model.OfferStatus{model.StatusApproved, model.StatusRejected} {
			svc := newOfferService(newFakeOffers(seedOffer(from)))
			o, err := svc.UpdateStatus(ctx, admin, "o-1", to)
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, o.Status)
		}
	}

	// Reset to pending from a decided state.
	svc := newOfferService(newFakeOffers(seedOffer(model.StatusRejected)))
	o, err := svc.UpdateStatus(ctx, admin, "o-1", model.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, o.Status)

	// Resetting an already pending offer is rejected.
	svc = newOfferService(newFakeOffers(seedOffer(model.StatusPending)))
	_, err = svc.UpdateStatus(ctx, admin, "o-1", model.StatusPending)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusRequiresAdmin(t *testing.T) {
	svc := newOfferService(newFakeOffers(seedOffer(model.StatusPending)))
	_, err := svc.UpdateStatus(context.Background(), merchantM, "o-1", model.StatusApproved)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatusPublishesEvent(t *testing.T) {
	var got []queue.OfferStatusChangedEvent
	svc := NewOfferService(newFakeOffers(seedOffer(model.StatusPending)), newFakeMerchants(),
		func(_ context.Context, ev queue.OfferStatusChangedEvent) error {
			got = append(got, ev)
			return nil
		})

	_, err := svc.UpdateStatus(context.Background(), admin, "o-1", model.StatusApproved)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "o-1", got[0].OfferID)
	assert.Equal(t, string(model.StatusPending), got[0].OldStatus)
	assert.Equal(t, string(model.StatusApproved), got[0].NewStatus)
	assert.Equal(t, "u-a", got[0].ChangedBy)
}

// Approval then deletion by the owner: deletion is never blocked by
// status, and a non-owner is turned away.
func TestDeleteOwnership(t *testing.T) {
	ctx := context.Background()
	offers := newFakeOffers(seedOffer(model.StatusPending))
	svc := newOfferService(offers)

	_, err := svc.UpdateStatus(ctx, admin, "o-1", model.StatusApproved)
	require.NoError(t, err)

	err = svc.Delete(ctx, merchantN, "o-1")
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, admin, "o-1")
	assert.ErrorIs(t, err, ErrForbidden, "offer deletion is reserved to the owning merchant")

	err = svc.Delete(ctx, merchantM, "o-1")
	require.NoError(t, err)

	err = svc.Delete(ctx, merchantM, "o-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListScoping(t *testing.T) {
	mine := seedOffer(model.StatusPending)
	other := seedOffer(model.StatusApproved)
	other.ID = "o-2"
	other.MerchantID = "m-2"
	svc := newOfferService(newFakeOffers(mine, other))
	ctx := context.Background()

	all, err := svc.List(ctx, admin, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(ctx, merchantM, "")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "o-1", own[0].ID)

	approved, err := svc.List(ctx, admin, model.StatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "o-2", approved[0].ID)

	_, err = svc.List(ctx, nobody, "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.List(ctx, admin, model.OfferStatus("BOGUS"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdminStats(t *testing.T) {
	mine := seedOffer(model.StatusPending)
	other := seedOffer(model.StatusApproved)
	other.ID = "o-2"
	offers := newFakeOffers(mine, other)
	merchants := newFakeMerchants(&model.Merchant{ID: "m-1", UserID: "u-m", Name: "Shop"})
	svc := NewOfferService(offers, merchants, nil)

	st, err := svc.AdminStats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, DashboardStats{TotalMerchants: 1, TotalOffers: 2, PendingOffers: 1, ApprovedOffers: 1}, st)

	_, err = svc.AdminStats(context.Background(), merchantM)
	assert.ErrorIs(t, err, ErrForbidden)
}
