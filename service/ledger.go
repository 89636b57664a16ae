package service

import (
	"sync"

	"hotelmesh/domain"
)

// LedgerOption tunes a Ledger.
type LedgerOption func(*Ledger)

// WithPerHotelLocking serializes bookings per hotel instead of process-wide. Bookings of
// different hotels then proceed in parallel; the check-and-append of one hotel stays atomic.
func WithPerHotelLocking() LedgerOption {
	return func(l *Ledger) {
		l.perHotel = true
	}
}

// hotelRecord is the mutable ledger state of one hotel.
type hotelRecord struct {
	mu           sync.Mutex
	capacity     int
	reservations []domain.Reservation
}

// Ledger implements interfaces.InventoryLedger. The set of hotels is fixed at construction, so
// the hotels map is only read afterwards; all mutation happens under the booking lock.
type Ledger struct {
	mu       sync.Mutex
	perHotel bool
	hotels   map[string]*hotelRecord
}

// NewLedger creates a ledger seeded with inventories (capacity and existing reservations).
func NewLedger(inventories []domain.HotelInventory, opts ...LedgerOption) *Ledger {
	l := &Ledger{hotels: make(map[string]*hotelRecord, len(inventories))}
	for _, inv := range inventories {
		l.hotels[inv.HotelID] = &hotelRecord{
			capacity:     inv.Capacity,
			reservations: append([]domain.Reservation(nil), inv.Reservations...),
		}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CheckAndBook sums the rooms of every reservation overlapping res and appends res when the
// sum plus res.Rooms stays within capacity. The check and the append happen under one lock,
// so concurrent bookings can never overbook.
//
// Returns: BookingConfirmed, BookingNoAvailability or BookingUnknownHotel.
func (l *Ledger) CheckAndBook(res domain.Reservation) domain.BookingOutcome {
	rec, ok := l.hotels[res.HotelID]
	if !ok {
		return domain.BookingUnknownHotel
	}

	unlock := l.lock(rec)
	defer unlock()

	booked := 0
	for _, existing := range rec.reservations {
		if existing.Overlaps(res) {
			booked += existing.Rooms
		}
	}
	if booked+res.Rooms > rec.capacity {
		return domain.BookingNoAvailability
	}
	rec.reservations = append(rec.reservations, res)
	return domain.BookingConfirmed
}

// Reservations returns a copy of the reservations of hotelID, nil for an unknown hotel.
func (l *Ledger) Reservations(hotelID string) []domain.Reservation {
	rec, ok := l.hotels[hotelID]
	if !ok {
		return nil
	}
	unlock := l.lock(rec)
	defer unlock()
	return append([]domain.Reservation(nil), rec.reservations...)
}

func (l *Ledger) lock(rec *hotelRecord) func() {
	if l.perHotel {
		rec.mu.Lock()
		return rec.mu.Unlock
	}
	l.mu.Lock()
	return l.mu.Unlock
}
