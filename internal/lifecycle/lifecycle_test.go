package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
)

func TestValidateContent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now
	end := now.Add(7 * 24 * time.Hour)
	neg := -5.0
	ten := 10.0

	cases := []struct {
		name        string
		title       string
		description string
		discount    *float64
		start, end  time.Time
		want        error
	}{
		{"valid", "10% Off", "Ten percent off everything", &ten, start, end, nil},
		{"valid without discount", "10% Off", "Ten percent off everything", nil, start, end, nil},
		{"missing title", "", "desc", nil, start, end, ErrTitleRequired},
		{"missing description", "t", "", nil, start, end, ErrDescriptionRequired},
		{"negative discount", "t", "d", &neg, start, end, ErrNegativeDiscount},
		{"end equals start", "t", "d", nil, start, start, ErrEndNotAfterStart},
		{"end before start", "t", "d", nil, end, start, ErrEndNotAfterStart},
		{"end in the past", "t", "d", nil, now.Add(-48 * time.Hour), now.Add(-24 * time.Hour), ErrEndNotFuture},
		{"end exactly now", "t", "d", nil, now.Add(-24 * time.Hour), now, ErrEndNotFuture},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateContent(tc.title, tc.description, tc.discount, tc.start, tc.end, now)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestCanSetStatus(t *testing.T) {
	statuses := []model.OfferStatus{model.StatusPending, model.StatusApproved, model.StatusRejected}

	// APPROVED and REJECTED are reachable from every state.
	for _, cur := range statuses {
		assert.NoError(t, CanSetStatus(cur, model.StatusApproved), "from %s", cur)
		assert.NoError(t, CanSetStatus(cur, model.StatusRejected), "from %s", cur)
	}

	// Reset to PENDING only from a non-pending state.
	assert.NoError(t, CanSetStatus(model.StatusApproved, model.StatusPending))
	assert.NoError(t, CanSetStatus(model.StatusRejected, model.StatusPending))
	assert.ErrorIs(t, CanSetStatus(model.StatusPending, model.StatusPending), ErrAlreadyPending)
}

func TestCanSetStatusUnknown(t *testing.T) {
	err := CanSetStatus(model.StatusPending, model.OfferStatus("ARCHIVED"))
	require.ErrorIs(t, err, ErrUnknownStatus)
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, model.StatusPending, Initial)
}
