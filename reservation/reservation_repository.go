package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetActiveReservationsPerCourt(ctx context.Context, courtID string) ([]Reservation, error) {
	sql := `
            SELECT id, "courtId", "userId", "startTime", "endTime", status, "createdAt"
            FROM "court-booking".reservation
            WHERE "courtId"=$1 AND status <> 'CANCELLED';
        `

	rows, err := r.pool.Query(ctx, sql, courtID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch active reservations for court '%v': %w", courtID, err)
	}

	defer rows.Close()

	var reservations []Reservation

	for rows.Next() {
		var res Reservation
		err := rows.Scan(
			&res.ID,
			&res.CourtID,
			&res.UserID,
			&res.StartTime,
			&res.EndTime,
			&res.Status,
			&res.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning reservation row: %w", err)
		}

		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return reservations, nil
}

func (r *Repository) GetReservationByID(ctx context.Context, id string) (Reservation, error) {
	sql := `
            SELECT id, "courtId", "userId", "startTime", "endTime", status, "createdAt"
            FROM "court-booking".reservation
            WHERE id=$1;
        `

	var res Reservation
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&res.ID,
		&res.CourtID,
		&res.UserID,
		&res.StartTime,
		&res.EndTime,
		&res.Status,
		&res.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Reservation{}, ErrReservationNotFound
	}

	if err != nil {
		return Reservation{}, fmt.Errorf("failed to fetch reservation with id %v: %w", id, err)
	}

	return res, nil
}

func (r *Repository) GetReservationsPerUser(ctx context.Context, userID string) ([]Reservation, error) {
	sql := `
            SELECT res.id, res."courtId", res."userId", res."startTime", res."endTime", res.status, res."createdAt", court.name
            FROM "court-booking".reservation res
            JOIN "court-booking".court court ON court.id = res."courtId"
            WHERE res."userId"=$1
            ORDER BY res."startTime";
        `

	rows, err := r.pool.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for user '%v': %w", userID, err)
	}

	defer rows.Close()

	return scanJoinedReservations(rows)
}

func (r *Repository) GetAllReservations(ctx context.Context) ([]Reservation, error) {
	sql := `
            SELECT res.id, res."courtId", res."userId", res."startTime", res."endTime", res.status, res."createdAt", court.name
            FROM "court-booking".reservation res
            JOIN "court-booking".court court ON court.id = res."courtId"
            ORDER BY res."startTime";
        `

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	defer rows.Close()

	return scanJoinedReservations(rows)
}

func (r *Repository) InsertReservation(ctx context.Context, res Reservation) (Reservation, error) {
	sql := `
            INSERT INTO "court-booking".reservation(
            id, "courtId", "userId", "startTime", "endTime", status, "createdAt")
            VALUES ($1, $2, $3, $4, $5, $6, now())
            RETURNING "createdAt";
        `

	res.ID = uuid.NewString()
	res.Status = StatusPending

	err := r.pool.QueryRow(ctx, sql,
		res.ID,
		res.CourtID,
		res.UserID,
		res.StartTime,
		res.EndTime,
		res.Status,
	).Scan(&res.CreatedAt)

	if isExclusionViolation(err) {
		return Reservation{}, ErrScheduleConflict
	}

	if err != nil {
		return Reservation{}, fmt.Errorf("failed to insert reservation: %w", err)
	}

	return res, nil
}

func (r *Repository) SetReservationStatus(ctx context.Context, id string, status string) error {
	sql := `
            UPDATE "court-booking".reservation
            SET status=$1
            WHERE id=$2;
        `

	tag, err := r.pool.Exec(ctx, sql, status, id)

	if err != nil {
		return fmt.Errorf("failed to update reservation '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func scanJoinedReservations(rows pgx.Rows) ([]Reservation, error) {
	var reservations []Reservation

	for rows.Next() {
		var res Reservation
		err := rows.Scan(
			&res.ID,
			&res.CourtID,
			&res.UserID,
			&res.StartTime,
			&res.EndTime,
			&res.Status,
			&res.CreatedAt,
			&res.CourtName,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning reservation row: %w", err)
		}

		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	return reservations, nil
}

// isExclusionViolation detects the reservation_no_overlap constraint firing,
// which can only happen when a concurrent insert slipped past the conflict
// check in another process.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

// IsRetryable reports whether err is a transient storage failure
// (serialization failure or deadlock) worth a bounded retry.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError

	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
