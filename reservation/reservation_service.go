package reservation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sportcenter/court-booking-backend/court"
	"github.com/sportcenter/court-booking-backend/mail"
	"github.com/sportcenter/court-booking-backend/user"
)

const insertAttempts = 3

type ReservationRepository interface {
	GetActiveReservationsPerCourt(ctx context.Context, courtID string) ([]Reservation, error)
	GetReservationByID(ctx context.Context, id string) (Reservation, error)
	GetReservationsPerUser(ctx context.Context, userID string) ([]Reservation, error)
	GetAllReservations(ctx context.Context) ([]Reservation, error)
	InsertReservation(ctx context.Context, res Reservation) (Reservation, error)
	SetReservationStatus(ctx context.Context, id string, status string) error
}

type CourtDirectory interface {
	FindCourtByID(ctx context.Context, id string) (court.Court, error)
}

type UserDirectory interface {
	FindUserByID(ctx context.Context, id string) (user.User, error)
}

// Service owns the reservation lifecycle: PENDING on creation, CONFIRMED only
// through payment settlement, CANCELLED through Cancel. No other writer
// touches reservation state.
type Service struct {
	repo    ReservationRepository
	checker *Checker
	courts  CourtDirectory
	users   UserDirectory
	mailer  mail.MailClient
	locks   *courtLocks
	logger  *slog.Logger
}

func NewService(repo ReservationRepository, courts CourtDirectory, users UserDirectory, mailer mail.MailClient) *Service {
	return &Service{
		repo:    repo,
		checker: NewChecker(repo),
		courts:  courts,
		users:   users,
		mailer:  mailer,
		locks:   newCourtLocks(),
		logger:  slog.Default().With("component", "reservation-service"),
	}
}

// CreateReservation validates the requested interval, checks the court for
// conflicts and persists the reservation as PENDING. The conflict check and
// the insert are serialized per court, so two concurrent requests for
// overlapping slots cannot both succeed.
func (s *Service) CreateReservation(ctx context.Context, res Reservation) (Reservation, error) {
	if !res.EndTime.After(res.StartTime) {
		return Reservation{}, ErrInvalidInterval
	}

	bookedCourt, err := s.courts.FindCourtByID(ctx, res.CourtID)

	if err != nil {
		return Reservation{}, err
	}

	if !bookedCourt.Bookable() {
		return Reservation{}, ErrCourtNotBookable
	}

	unlock := s.locks.acquire(res.CourtID)
	defer unlock()

	conflict, err := s.checker.HasConflict(ctx, res.CourtID, res.StartTime, res.EndTime, "")

	if err != nil {
		return Reservation{}, err
	}

	if conflict {
		return Reservation{}, ErrScheduleConflict
	}

	inserted, err := s.insertWithRetry(ctx, res)

	if err != nil {
		return Reservation{}, err
	}

	s.sendConfirmation(ctx, inserted, bookedCourt)

	return inserted, nil
}

func (s *Service) insertWithRetry(ctx context.Context, res Reservation) (Reservation, error) {
	var inserted Reservation
	var err error

	for attempt := 1; attempt <= insertAttempts; attempt++ {
		inserted, err = s.repo.InsertReservation(ctx, res)

		if err == nil || !IsRetryable(err) {
			return inserted, err
		}

		s.logger.Warn("transient storage error inserting reservation", "attempt", attempt, "err", err)
	}

	return Reservation{}, fmt.Errorf("failed to insert reservation after %d attempts: %w", insertAttempts, err)
}

// CancelReservation moves a reservation to CANCELLED. Cancellation is
// terminal: a cancelled reservation cannot change state again.
func (s *Service) CancelReservation(ctx context.Context, id string) (Reservation, error) {
	res, err := s.repo.GetReservationByID(ctx, id)

	if err != nil {
		return Reservation{}, err
	}

	if res.Status == StatusCancelled {
		return Reservation{}, ErrInvalidReservationState
	}

	err = s.repo.SetReservationStatus(ctx, id, StatusCancelled)

	if err != nil {
		return Reservation{}, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	res.Status = StatusCancelled

	return res, nil
}

// CanCancel is the capability check for the calling layer's cancellation
// policy: a paid reservation may only be cancelled while its start time is
// still in the future.
func (s *Service) CanCancel(res Reservation) bool {
	if res.Status == StatusCancelled {
		return false
	}

	if res.Status == StatusConfirmed {
		return time.Now().Before(res.StartTime)
	}

	return true
}

func (s *Service) FindReservationByID(ctx context.Context, id string) (Reservation, error) {
	return s.repo.GetReservationByID(ctx, id)
}

func (s *Service) FindReservationsPerUser(ctx context.Context, userID string) ([]Reservation, error) {
	return s.repo.GetReservationsPerUser(ctx, userID)
}

func (s *Service) GetAllReservations(ctx context.Context) ([]Reservation, error) {
	return s.repo.GetAllReservations(ctx)
}

// sendConfirmation is best effort: a failed email must never fail or roll
// back the reservation, so errors are logged and swallowed here.
func (s *Service) sendConfirmation(ctx context.Context, res Reservation, bookedCourt court.Court) {
	owner, err := s.users.FindUserByID(ctx, res.UserID)

	if err != nil {
		s.logger.Warn("skipping booking confirmation email", "reservationId", res.ID, "err", err)
		return
	}

	totalPrice := bookedCourt.HourlyRate * res.Duration().Hours()

	err = s.mailer.SendBookingConfirmation(ctx, mail.BookingConfirmation{
		UserEmail:  owner.Email,
		UserName:   owner.Name,
		CourtName:  bookedCourt.Name,
		CourtSport: bookedCourt.Sport,
		StartTime:  res.StartTime,
		EndTime:    res.EndTime,
		TotalPrice: totalPrice,
	})

	if err != nil {
		s.logger.Warn("failed to send booking confirmation email", "reservationId", res.ID, "err", err)
	}
}
