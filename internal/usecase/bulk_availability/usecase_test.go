package bulk_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
	bookingstore "github.com/m04kA/HRC-CalendarService/internal/infra/storage/booking"
	freeslotstore "github.com/m04kA/HRC-CalendarService/internal/infra/storage/freeslot"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Wednesday 2026-01-07; the week anchor is Monday 2026-01-05.
var testNow = time.Date(2026, time.January, 7, 11, 0, 0, 0, time.UTC)

func newTestUseCase(slots *freeslotstore.Repository, bookings *bookingstore.Repository) *UseCase {
	uc := NewUseCase(slots, bookings, nil, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func TestExecute_RejectsNonDeveloper(t *testing.T) {
	uc := newTestUseCase(freeslotstore.NewRepository(), bookingstore.NewRepository())

	_, err := uc.Execute(context.Background(), &Request{
		Role:             domain.RoleHR1,
		StartDate:        testNow,
		EndDate:          testNow,
		DailyStartMinute: 600,
		DailyEndMinute:   720,
	})
	assert.ErrorIs(t, err, ErrRoleNotAllowed)
}

func TestExecute_RejectsReversedRange(t *testing.T) {
	uc := newTestUseCase(freeslotstore.NewRepository(), bookingstore.NewRepository())

	_, err := uc.Execute(context.Background(), &Request{
		Role:             domain.RoleDeveloper,
		StartDate:        testNow.AddDate(0, 0, 1),
		EndDate:          testNow,
		DailyStartMinute: 600,
		DailyEndMinute:   720,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RejectsWindowShorterThanOneUnit(t *testing.T) {
	uc := newTestUseCase(freeslotstore.NewRepository(), bookingstore.NewRepository())

	// 17:50-20:00 clamps to 17:50-18:00, a 10-minute window.
	_, err := uc.Execute(context.Background(), &Request{
		Role:             domain.RoleDeveloper,
		StartDate:        testNow,
		EndDate:          testNow,
		DailyStartMinute: 1070,
		DailyEndMinute:   1200,
	})
	assert.ErrorIs(t, err, ErrWindowTooShort)
}

func TestExecute_ClampsWindowIntoWorkingDay(t *testing.T) {
	slots := freeslotstore.NewRepository()
	uc := newTestUseCase(slots, bookingstore.NewRepository())

	// 08:00-10:30 clamps to 09:00-10:30: starts 09:00, 09:30, 10:00.
	resp, err := uc.Execute(context.Background(), &Request{
		Role:             domain.RoleDeveloper,
		StartDate:        testNow,
		EndDate:          testNow,
		DailyStartMinute: 480,
		DailyEndMinute:   630,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Inserted)
	assert.Equal(t, []domain.FreeSlot{
		{DayIndex: 2, StartMinute: 540},
		{DayIndex: 2, StartMinute: 570},
		{DayIndex: 2, StartMinute: 600},
	}, resp.Slots)
}

func TestExecute_SkipsPastDaysAndDaysOutsideWeek(t *testing.T) {
	slots := freeslotstore.NewRepository()
	uc := newTestUseCase(slots, bookingstore.NewRepository())

	// Monday through next Tuesday: Monday and Tuesday are past, Sunday is
	// the last in-week day, anything later falls outside 0..6.
	resp, err := uc.Execute(context.Background(), &Request{
		Role:             domain.RoleDeveloper,
		StartDate:        time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, time.January, 13, 0, 0, 0, 0, time.UTC),
		DailyStartMinute: 600,
		DailyEndMinute:   660,
	})
	require.NoError(t, err)

	// Wednesday (2) through Sunday (6): five days, two units each.
	assert.Equal(t, 10, resp.Inserted)
	for _, s := range resp.Slots {
		assert.GreaterOrEqual(t, s.DayIndex, 2)
		assert.LessOrEqual(t, s.DayIndex, 6)
	}
}

func TestExecute_SkipsBookedUnitsOnlyOnConflictingDay(t *testing.T) {
	slots := freeslotstore.NewRepository()
	bookings := bookingstore.NewRepository()
	uc := newTestUseCase(slots, bookings)

	// Thursday holds a 60-minute booking at 10:00, covering 10:00 and 10:30.
	_, err := bookings.Create(context.Background(), &domain.Booking{
		DayIndex:        3,
		StartMinute:     600,
		DurationMinutes: 60,
		CreatedByRole:   domain.RoleHR1,
		EventTypeName:   "Screening",
		Status:          domain.StatusNotApproved,
		Company:         "Acme",
		HRName:          "Dana",
		HREmail:         "dana@acme.test",
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{
		Role:             domain.RoleDeveloper,
		StartDate:        time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC),
		DailyStartMinute: 600,
		DailyEndMinute:   720,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, resp.Inserted)
	assert.Equal(t, []domain.FreeSlot{
		{DayIndex: 3, StartMinute: 660},
		{DayIndex: 3, StartMinute: 690},
		{DayIndex: 4, StartMinute: 600},
		{DayIndex: 4, StartMinute: 630},
		{DayIndex: 4, StartMinute: 660},
		{DayIndex: 4, StartMinute: 690},
	}, resp.Slots)
}

func TestExecute_ForeignZoneDatesLandOnTheirCalendarDay(t *testing.T) {
	slots := freeslotstore.NewRepository()
	uc := newTestUseCase(slots, bookingstore.NewRepository())

	// Thursday and Friday given as UTC+3 midnights; the instants fall on
	// Wednesday evening UTC, but the calendar dates must win.
	msk := time.FixedZone("UTC+3", 3*60*60)
	resp, err := uc.Execute(context.Background(), &Request{
		Role:             domain.RoleDeveloper,
		StartDate:        time.Date(2026, time.January, 8, 0, 0, 0, 0, msk),
		EndDate:          time.Date(2026, time.January, 9, 0, 0, 0, 0, msk),
		DailyStartMinute: 600,
		DailyEndMinute:   660,
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.FreeSlot{
		{DayIndex: 3, StartMinute: 600},
		{DayIndex: 3, StartMinute: 630},
		{DayIndex: 4, StartMinute: 600},
		{DayIndex: 4, StartMinute: 630},
	}, resp.Slots)
}

func TestExecute_SkipsAlreadyFreeUnits(t *testing.T) {
	slots := freeslotstore.NewRepository()
	uc := newTestUseCase(slots, bookingstore.NewRepository())

	require.NoError(t, slots.Add(context.Background(), 2, 600))

	resp, err := uc.Execute(context.Background(), &Request{
		Role:             domain.RoleDeveloper,
		StartDate:        testNow,
		EndDate:          testNow,
		DailyStartMinute: 600,
		DailyEndMinute:   690,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Inserted)
	assert.Len(t, resp.Slots, 3)
}
