package domain

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used on every surface.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date (YYYY-MM-DD) in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Reservation is an immutable booking held by the inventory ledger.
type Reservation struct {
	ID           string
	HotelID      string
	CustomerName string
	InDate       time.Time
	OutDate      time.Time
	Rooms        int
}

// Overlaps reports whether r and other share at least one day. Intervals are closed
// on both ends, so a stay ending on the day another starts overlaps it.
func (r Reservation) Overlaps(other Reservation) bool {
	return !r.InDate.After(other.OutDate) && !r.OutDate.Before(other.InDate)
}

// HotelInventory is the per-hotel ledger record.
type HotelInventory struct {
	HotelID      string
	Capacity     int
	Reservations []Reservation
}

// BookingOutcome is the business result of a reservation attempt.
type BookingOutcome int

const (
	BookingConfirmed BookingOutcome = iota
	BookingNoAvailability
	BookingUnknownHotel
	BookingInvalidCredentials
)

func (o BookingOutcome) String() string {
	switch o {
	case BookingConfirmed:
		return "confirmed"
	case BookingNoAvailability:
		return "no_availability"
	case BookingUnknownHotel:
		return "unknown_hotel"
	case BookingInvalidCredentials:
		return "invalid_credentials"
	default:
		return "unknown"
	}
}

// Message returns the user-facing text of the outcome.
func (o BookingOutcome) Message() string {
	switch o {
	case BookingConfirmed:
		return "Reservation confirmed"
	case BookingNoAvailability:
		return "No availability for the selected dates"
	case BookingUnknownHotel:
		return "Unknown hotel"
	case BookingInvalidCredentials:
		return "Invalid user credentials"
	default:
		return ""
	}
}

// ParseBookingOutcome is the inverse of BookingOutcome.String.
func ParseBookingOutcome(s string) (BookingOutcome, bool) {
	for _, o := range []BookingOutcome{BookingConfirmed, BookingNoAvailability, BookingUnknownHotel, BookingInvalidCredentials} {
		if o.String() == s {
			return o, true
		}
	}
	return 0, false
}

// BookingResult is returned to the reservation caller.
type BookingResult struct {
	Outcome       BookingOutcome
	ReservationID string
}

// Message returns the user-facing text of the result.
func (r BookingResult) Message() string {
	return r.Outcome.Message()
}
