package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportcenter/court-booking-backend/reservation"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Settle records a COMPLETED payment and moves the reservation to CONFIRMED
// in one transaction. The reservation row is locked first, so a concurrent
// cancellation cannot slip between the state check and the confirmation.
func (r *Repository) Settle(ctx context.Context, p Payment) (Payment, error) {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return Payment{}, fmt.Errorf("failed to begin settlement transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	var status string
	err = tx.QueryRow(ctx,
		`SELECT status FROM "court-booking".reservation WHERE id=$1 FOR UPDATE;`,
		p.ReservationID,
	).Scan(&status)

	if errors.Is(err, pgx.ErrNoRows) {
		return Payment{}, reservation.ErrReservationNotFound
	}

	if err != nil {
		return Payment{}, fmt.Errorf("failed to lock reservation '%v': %w", p.ReservationID, err)
	}

	if status == reservation.StatusCancelled {
		return Payment{}, reservation.ErrInvalidReservationState
	}

	p.ID = uuid.NewString()
	p.Status = StatusCompleted

	err = tx.QueryRow(ctx,
		`INSERT INTO "court-booking".payment(id, "reservationId", amount, method, status, "settledAt")
         VALUES ($1, $2, $3, $4, $5, now())
         RETURNING "settledAt";`,
		p.ID,
		p.ReservationID,
		p.Amount,
		p.Method,
		p.Status,
	).Scan(&p.SettledAt)

	if err != nil {
		return Payment{}, fmt.Errorf("failed to insert payment: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE "court-booking".reservation SET status=$1 WHERE id=$2;`,
		reservation.StatusConfirmed,
		p.ReservationID,
	)

	if err != nil {
		return Payment{}, fmt.Errorf("failed to confirm reservation '%v': %w", p.ReservationID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Payment{}, fmt.Errorf("failed to commit settlement: %w", err)
	}

	return p, nil
}

func (r *Repository) GetPaymentsPerReservation(ctx context.Context, reservationID string) ([]Payment, error) {
	sql := `
            SELECT id, "reservationId", amount, method, status, "settledAt"
            FROM "court-booking".payment
            WHERE "reservationId"=$1
            ORDER BY "settledAt";
        `

	rows, err := r.pool.Query(ctx, sql, reservationID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments for reservation '%v': %w", reservationID, err)
	}

	defer rows.Close()

	var payments []Payment

	for rows.Next() {
		var p Payment
		err := rows.Scan(&p.ID, &p.ReservationID, &p.Amount, &p.Method, &p.Status, &p.SettledAt)

		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}
