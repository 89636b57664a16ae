package service

import (
	"context"

	"hotelmesh/domain"
	"hotelmesh/helpers"
	"hotelmesh/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

// ReservationService implements interfaces.ReservationService: credential check through the
// user service, then the atomic check-and-book of the ledger.
type ReservationService struct {
	orchestrator
	users     interfaces.UserService
	ledger    interfaces.InventoryLedger
	publisher interfaces.ReservationPublisher
	newID     func() string
	logger    log.Logger
}

// NewReservationService creates the service. publisher is optional; confirmed reservations are
// announced through it when set.
func NewReservationService(
	users interfaces.UserService,
	ledger interfaces.InventoryLedger,
	publisher interfaces.ReservationPublisher,
	clock interfaces.Clock,
	logger log.Logger,
	opts ...OrchestratorOption,
) *ReservationService {
	return &ReservationService{
		orchestrator: newOrchestrator(helpers.NilPanic(clock, "service.reservation.go: clock is required"), opts),
		users:        helpers.NilPanic(users, "service.reservation.go: users is required"),
		ledger:       helpers.NilPanic(ledger, "service.reservation.go: ledger is required"),
		publisher:    publisher,
		newID:        uuid.NewString,
		logger:       log.With(helpers.NilPanic(logger, "service.reservation.go: logger is required"), "component", "reservation"),
	}
}

// Reserve books req.Rooms rooms for the stay. The credential check runs before and outside the
// ledger lock; rejected credentials never reach the ledger.
//
// Returns: (result, nil) for every business outcome (Confirmed with a reservation id,
// NoAvailability, UnknownHotel, InvalidCredentials); (zero, malformed_input) for a request
// that cannot be booked as written; (zero, err) when the user service fails or the budget
// runs out before booking.
func (s *ReservationService) Reserve(ctx context.Context, req domain.ReservationRequest) (_ domain.BookingResult, err error) {
	ctx, budget, span := s.begin(ctx, "reserve")
	defer func() { endSpan(span, err) }()

	res, err := s.toReservation(req)
	if err != nil {
		return domain.BookingResult{}, err
	}

	ok, err := s.users.Check(ctx, domain.User{Username: req.Username, Password: req.Password})
	if err != nil {
		return domain.BookingResult{}, err
	}
	if !ok {
		s.metrics.ObserveBooking(domain.BookingInvalidCredentials)
		return domain.BookingResult{Outcome: domain.BookingInvalidCredentials}, nil
	}

	if err := budget.Check("booking"); err != nil {
		return domain.BookingResult{}, err
	}

	outcome := s.ledger.CheckAndBook(res)
	s.metrics.ObserveBooking(outcome)
	if outcome != domain.BookingConfirmed {
		level.Debug(s.logger).Log("msg", "booking rejected", "hotel", res.HotelID, "outcome", outcome)
		return domain.BookingResult{Outcome: outcome}, nil
	}

	level.Info(s.logger).Log("msg", "booking confirmed", "reservation_id", res.ID, "hotel", res.HotelID, "rooms", res.Rooms)
	if s.publisher != nil {
		if err := s.publisher.PublishConfirmed(ctx, res); err != nil {
			level.Warn(s.logger).Log("msg", "publish confirmed reservation", "reservation_id", res.ID, "err", err)
		}
	}
	return domain.BookingResult{Outcome: domain.BookingConfirmed, ReservationID: res.ID}, nil
}

func (s *ReservationService) toReservation(req domain.ReservationRequest) (domain.Reservation, error) {
	if req.HotelID == "" {
		return domain.Reservation{}, NewMalformedInputError("hotelId is required", nil)
	}
	if req.CustomerName == "" {
		return domain.Reservation{}, NewMalformedInputError("customerName is required", nil)
	}
	if req.Rooms < 1 {
		return domain.Reservation{}, NewMalformedInputError("roomNumber must be at least 1", nil)
	}
	if err := validateStay(req.InDate, req.OutDate); err != nil {
		return domain.Reservation{}, err
	}
	in, _ := domain.ParseDate(req.InDate)
	out, _ := domain.ParseDate(req.OutDate)
	return domain.Reservation{
		ID:           s.newID(),
		HotelID:      req.HotelID,
		CustomerName: req.CustomerName,
		InDate:       in,
		OutDate:      out,
		Rooms:        req.Rooms,
	}, nil
}
