package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

func seed(t *testing.T, r *Repository, day, start int) *domain.Booking {
	t.Helper()
	b, err := r.Create(context.Background(), &domain.Booking{
		DayIndex:        day,
		StartMinute:     start,
		DurationMinutes: 30,
		CreatedByRole:   domain.RoleHR1,
		EventTypeName:   "Screening",
		Status:          domain.StatusNotApproved,
		Company:         "Acme",
		HRName:          "Dana",
		HREmail:         "dana@acme.test",
	})
	require.NoError(t, err)
	return b
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	r := NewRepository()
	b := seed(t, r, 2, 600)

	assert.NotEmpty(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())
	assert.Equal(t, b.CreatedAt, b.UpdatedAt)

	got, err := r.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	r := NewRepository()
	_, err := r.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus(t *testing.T) {
	r := NewRepository()
	ctx := context.Background()
	b := seed(t, r, 2, 600)

	updated, err := r.UpdateStatus(ctx, b.ID, domain.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)

	got, err := r.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)

	_, err = r.UpdateStatus(ctx, "missing", domain.StatusApproved)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete_ReturnsRemovedRecord(t *testing.T) {
	r := NewRepository()
	ctx := context.Background()
	b := seed(t, r, 2, 600)

	removed, err := r.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, removed.ID)

	_, err = r.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = r.Delete(ctx, b.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListings_SortedByDayAndStart(t *testing.T) {
	r := NewRepository()
	ctx := context.Background()
	seed(t, r, 4, 600)
	seed(t, r, 2, 660)
	seed(t, r, 2, 600)

	all := r.ListAll(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, 2, all[0].DayIndex)
	assert.Equal(t, 600, all[0].StartMinute)
	assert.Equal(t, 660, all[1].StartMinute)
	assert.Equal(t, 4, all[2].DayIndex)

	day2 := r.ListByDay(ctx, 2)
	require.Len(t, day2, 2)
	assert.Equal(t, 600, day2[0].StartMinute)

	assert.Empty(t, r.ListByDay(ctx, 5))
}

func TestListings_ReturnCopies(t *testing.T) {
	r := NewRepository()
	ctx := context.Background()
	b := seed(t, r, 2, 600)

	list := r.ListAll(ctx)
	require.Len(t, list, 1)
	list[0].Company = "mutated"

	got, err := r.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)
}
