package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/sportcenter/court-booking-backend/court"
	"github.com/sportcenter/court-booking-backend/reservation"
)

// amountTolerance absorbs float rounding when comparing the submitted amount
// against hourly rate times duration.
const amountTolerance = 0.01

type PaymentRepository interface {
	Settle(ctx context.Context, p Payment) (Payment, error)
	GetPaymentsPerReservation(ctx context.Context, reservationID string) ([]Payment, error)
}

type ReservationFinder interface {
	FindReservationByID(ctx context.Context, id string) (reservation.Reservation, error)
}

type CourtDirectory interface {
	FindCourtByID(ctx context.Context, id string) (court.Court, error)
}

type Service struct {
	repo         PaymentRepository
	reservations ReservationFinder
	courts       CourtDirectory
	logger       *slog.Logger
}

func NewService(repo PaymentRepository, reservations ReservationFinder, courts CourtDirectory) *Service {
	return &Service{
		repo:         repo,
		reservations: reservations,
		courts:       courts,
		logger:       slog.Default().With("component", "payment-service"),
	}
}

// ProcessPayment settles a payment for a reservation and confirms it. Paying
// an already CONFIRMED reservation is allowed but redundant; paying a
// CANCELLED one is rejected. The state check here is advisory, the
// repository re-checks under a row lock.
func (s *Service) ProcessPayment(ctx context.Context, reservationID string, amount float64, method string) (Payment, error) {
	res, err := s.reservations.FindReservationByID(ctx, reservationID)

	if err != nil {
		return Payment{}, err
	}

	if res.Status == reservation.StatusCancelled {
		return Payment{}, fmt.Errorf("cannot pay a cancelled reservation: %w", reservation.ErrInvalidReservationState)
	}

	bookedCourt, err := s.courts.FindCourtByID(ctx, res.CourtID)

	if err != nil {
		return Payment{}, err
	}

	expected := bookedCourt.HourlyRate * res.Duration().Hours()

	if math.Abs(expected-amount) > amountTolerance {
		s.logger.Warn("rejecting payment with wrong amount",
			"reservationId", reservationID, "amount", amount, "expected", expected)
		return Payment{}, ErrAmountMismatch
	}

	settled, err := s.repo.Settle(ctx, Payment{
		ReservationID: reservationID,
		Amount:        amount,
		Method:        method,
	})

	if err != nil {
		return Payment{}, err
	}

	s.logger.Info("payment settled", "paymentId", settled.ID, "reservationId", reservationID)

	return settled, nil
}

func (s *Service) FindPaymentsPerReservation(ctx context.Context, reservationID string) ([]Payment, error) {
	return s.repo.GetPaymentsPerReservation(ctx, reservationID)
}
