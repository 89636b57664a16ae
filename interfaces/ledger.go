package interfaces

import (
	"context"

	"hotelmesh/domain"
)

// InventoryLedger performs the atomic check-and-book of the reservation service.
//
//go:generate moq -stub -out mock/inventory_ledger.go -pkg mock . InventoryLedger
type InventoryLedger interface {
	CheckAndBook(res domain.Reservation) domain.BookingOutcome
}

// ReservationPublisher announces confirmed reservations.
//
//go:generate moq -stub -out mock/reservation_publisher.go -pkg mock . ReservationPublisher
type ReservationPublisher interface {
	PublishConfirmed(ctx context.Context, res domain.Reservation) error
}
