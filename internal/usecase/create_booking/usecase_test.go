package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
	bookingstore "github.com/m04kA/HRC-CalendarService/internal/infra/storage/booking"
	eventtypestore "github.com/m04kA/HRC-CalendarService/internal/infra/storage/eventtype"
	freeslotstore "github.com/m04kA/HRC-CalendarService/internal/infra/storage/freeslot"
	"github.com/m04kA/HRC-CalendarService/pkg/ptr"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Wednesday 2026-01-07; days 0 and 1 of the week are already past.
var testNow = time.Date(2026, time.January, 7, 11, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *UseCase
	slots    *freeslotstore.Repository
	bookings *bookingstore.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	slots := freeslotstore.NewRepository()
	bookings := bookingstore.NewRepository()
	eventTypes := eventtypestore.NewRepository()
	for _, name := range domain.DefaultEventTypeNames {
		_, err := eventTypes.Create(context.Background(), name)
		require.NoError(t, err)
	}

	uc := NewUseCase(slots, bookings, eventTypes, nil, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return &fixture{uc: uc, slots: slots, bookings: bookings}
}

func validRequest() *Request {
	return &Request{
		Role:            domain.RoleHR1,
		DayIndex:        3,
		StartMinute:     600,
		DurationMinutes: 60,
		EventTypeName:   "Technical",
		Company:         "Acme",
		HRName:          "Dana",
		HREmail:         "dana@acme.test",
	}
}

func TestExecute_CreatesBookingAndConsumesRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.slots.Add(ctx, 3, 600))
	require.NoError(t, f.slots.Add(ctx, 3, 630))
	require.NoError(t, f.slots.Add(ctx, 3, 660))

	resp, err := f.uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.StatusNotApproved, resp.Status)
	assert.Equal(t, "Technical", resp.EventTypeName)
	assert.Equal(t, domain.RoleHR1, resp.CreatedByRole)

	// 10:00 and 10:30 are consumed, 11:00 stays free.
	assert.False(t, f.slots.Has(ctx, 3, 600))
	assert.False(t, f.slots.Has(ctx, 3, 630))
	assert.True(t, f.slots.Has(ctx, 3, 660))
}

func TestExecute_CarriesMeetingLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.slots.Add(ctx, 3, 600))

	req := validRequest()
	req.DurationMinutes = 30
	req.MeetingLink = ptr.Ptr("https://meet.example.com/abc")

	resp, err := f.uc.Execute(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp.MeetingLink)
	assert.Equal(t, "https://meet.example.com/abc", *resp.MeetingLink)
}

func TestExecute_ResolvesEventTypeCaseInsensitively(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.slots.Add(ctx, 3, 600))

	req := validRequest()
	req.DurationMinutes = 30
	req.EventTypeName = "  screening "

	resp, err := f.uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Screening", resp.EventTypeName)
}

func TestExecute_RejectsNonHRRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.slots.Add(ctx, 3, 600))
	require.NoError(t, f.slots.Add(ctx, 3, 630))

	req := validRequest()
	req.Role = domain.RoleDeveloper

	_, err := f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)
	assert.True(t, f.slots.Has(ctx, 3, 600))
}

func TestExecute_RejectsPastDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.slots.Add(ctx, 0, 600))
	require.NoError(t, f.slots.Add(ctx, 0, 630))

	req := validRequest()
	req.DayIndex = 0

	_, err := f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_RejectsUnknownEventType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.slots.Add(ctx, 3, 600))
	require.NoError(t, f.slots.Add(ctx, 3, 630))

	req := validRequest()
	req.EventTypeName = "Retro"

	_, err := f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrUnknownEventType)
	assert.True(t, f.slots.Has(ctx, 3, 600))
}

func TestExecute_RejectsBlankContacts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.slots.Add(ctx, 3, 600))
	require.NoError(t, f.slots.Add(ctx, 3, 630))

	req := validRequest()
	req.HRName = "   "

	_, err := f.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.True(t, f.slots.Has(ctx, 3, 600))
}

func TestExecute_RejectsInsufficientContiguousRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	// only 10:00 is free; a 60-minute booking needs 10:00 and 10:30
	require.NoError(t, f.slots.Add(ctx, 3, 600))

	_, err := f.uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrInsufficientAvailability)
	assert.True(t, f.slots.Has(ctx, 3, 600))
}

func TestExecute_RejectsMisalignedOrOffGridCell(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for name, mutate := range map[string]func(*Request){
		"day out of range":     func(r *Request) { r.DayIndex = 7 },
		"unaligned start":      func(r *Request) { r.StartMinute = 615 },
		"before window":        func(r *Request) { r.StartMinute = 510 },
		"past window end":      func(r *Request) { r.StartMinute = 1050; r.DurationMinutes = 60 },
		"unsupported duration": func(r *Request) { r.DurationMinutes = 45 },
	} {
		req := validRequest()
		mutate(req)
		_, err := f.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}
