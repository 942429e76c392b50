package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// validateCell checks that the request addresses a real grid cell with a
// supported duration. Ordered precondition checks (role, date, event type,
// contact fields, coverage) live in Execute.
func validateCell(req *Request) error {
	if req.DayIndex < domain.MinDayIndex || req.DayIndex > domain.MaxDayIndex {
		return fmt.Errorf("%w: dayIndex must be 0..6", ErrInvalidInput)
	}
	if req.StartMinute%domain.SlotUnitMinutes != 0 {
		return fmt.Errorf("%w: startMinute must align to %d-minute units", ErrInvalidInput, domain.SlotUnitMinutes)
	}
	if req.StartMinute < domain.DayStartMinute || req.StartMinute+req.DurationMinutes > domain.DayEndMinute {
		return fmt.Errorf("%w: booking must fit the 09:00-18:00 window", ErrInvalidInput)
	}
	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: duration must be one of 30/60/90/120", ErrInvalidInput)
	}
	return nil
}

// validateContacts trims the contact fields in place and rejects blanks.
func validateContacts(req *Request) error {
	req.Company = strings.TrimSpace(req.Company)
	req.HRName = strings.TrimSpace(req.HRName)
	req.HREmail = strings.TrimSpace(req.HREmail)

	if req.Company == "" || req.HRName == "" || req.HREmail == "" {
		return fmt.Errorf("%w: company, hrName and hrEmail are required", ErrInvalidInput)
	}
	return nil
}
