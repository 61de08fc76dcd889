package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
)

func TestResolveRoles(t *testing.T) {
	admins := &fakeAdmins{set: map[string]bool{"u-admin": true, "u-both": true}}
	merchants := newFakeMerchants(
		&model.Merchant{ID: "m-1", UserID: "u-shop", Name: "Shop"},
		&model.Merchant{ID: "m-2", UserID: "u-both", Name: "Both"},
	)
	r := NewRoleResolver(admins, merchants)
	ctx := context.Background()

	res, err := r.Resolve(ctx, "u-admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, res.Role)
	assert.Empty(t, res.MerchantID)

	res, err = r.Resolve(ctx, "u-shop")
	require.NoError(t, err)
	assert.Equal(t, model.RoleMerchant, res.Role)
	assert.Equal(t, "m-1", res.MerchantID)

	res, err = r.Resolve(ctx, "u-nobody")
	require.NoError(t, err)
	assert.Equal(t, model.RoleNone, res.Role)

	// No session at all.
	res, err = r.Resolve(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, model.RoleNone, res.Role)
}

// A user present in both the admin set and the merchant-owner set
// resolves to ADMIN.
func TestResolveAdminPrecedence(t *testing.T) {
	admins := &fakeAdmins{set: map[string]bool{"u-both": true}}
	merchants := newFakeMerchants(&model.Merchant{ID: "m-2", UserID: "u-both", Name: "Both"})
	r := NewRoleResolver(admins, merchants)

	res, err := r.Resolve(context.Background(), "u-both")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, res.Role)
}

// An explicit read failure propagates and the caller falls back to no
// role; it must never crash or guess.
func TestResolveLookupFailure(t *testing.T) {
	boom := errors.New("connection reset")

	r := NewRoleResolver(&fakeAdmins{err: boom}, newFakeMerchants())
	res, err := r.Resolve(context.Background(), "u-shop")
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, model.RoleNone, res.Role)

	r = NewRoleResolver(&fakeAdmins{set: map[string]bool{}}, &fakeMerchants{readErr: boom, byID: map[string]*model.Merchant{}})
	res, err = r.Resolve(context.Background(), "u-shop")
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, model.RoleNone, res.Role)
}

// Signup through the merchant service makes the new principal resolve
// as a merchant with the freshly bound merchant id.
func TestResolveAfterBinding(t *testing.T) {
	users := newFakeUsers()
	merchants := newFakeMerchants()
	admins := &fakeAdmins{set: map[string]bool{"u-admin": true}}
	svc := NewMerchantService(users, merchants, 10)
	r := NewRoleResolver(admins, merchants)
	ctx := context.Background()

	m, err := svc.Create(ctx, Actor{UserID: "u-admin", Role: model.RoleAdmin}, MerchantInput{
		Name: "Corner Shop", Email: "shop@x.com", Password: "hunter22",
	})
	require.NoError(t, err)

	res, err := r.Resolve(ctx, m.UserID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleMerchant, res.Role)
	assert.Equal(t, m.ID, res.MerchantID)
}

// After a merchant is deleted the principal resolves to no role, even
// when the best-effort principal deletion failed: the merchant row is
// gone either way.
func TestResolveAfterMerchantDeletion(t *testing.T) {
	for _, userDeleteFails := range []bool{false, true} {
		users := newFakeUsers()
		if userDeleteFails {
			users.deleteErr = errors.New("auth service unavailable")
		}
		merchants := newFakeMerchants(&model.Merchant{ID: "m-1", UserID: "u-shop", Name: "Shop"})
		admins := &fakeAdmins{set: map[string]bool{"u-admin": true}}
		svc := NewMerchantService(users, merchants, 10)
		r := NewRoleResolver(admins, merchants)
		ctx := context.Background()

		err := svc.Delete(ctx, Actor{UserID: "u-admin", Role: model.RoleAdmin}, "m-1")
		require.NoError(t, err, "merchant deletion is authoritative, cleanup failure must not surface")

		res, err := r.Resolve(ctx, "u-shop")
		require.NoError(t, err)
		assert.Equal(t, model.RoleNone, res.Role)
	}
}
