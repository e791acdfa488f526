package court

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

func (r *Repository) GetAllCourts(ctx context.Context) ([]Court, error) {
	sql := `
            SELECT id, name, sport, "hourlyRate", status
            FROM "court-booking".court
            ORDER BY name;
        `

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}

	defer rows.Close()

	var courts []Court

	for rows.Next() {
		var c Court
		err := rows.Scan(&c.ID, &c.Name, &c.Sport, &c.HourlyRate, &c.Status)

		if err != nil {
			return nil, fmt.Errorf("error scanning court row: %w", err)
		}

		courts = append(courts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating court rows: %w", err)
	}

	return courts, nil
}

func (r *Repository) GetCourtByID(ctx context.Context, id string) (Court, error) {
	sql := `
            SELECT id, name, sport, "hourlyRate", status
            FROM "court-booking".court
            WHERE id=$1;
        `

	var c Court
	err := r.pool.QueryRow(ctx, sql, id).Scan(&c.ID, &c.Name, &c.Sport, &c.HourlyRate, &c.Status)

	if errors.Is(err, pgx.ErrNoRows) {
		return Court{}, ErrCourtNotFound
	}

	if err != nil {
		return Court{}, fmt.Errorf("failed to fetch court with id %v: %w", id, err)
	}

	return c, nil
}

func (r *Repository) InsertCourt(ctx context.Context, c Court) (Court, error) {
	sql := `
            INSERT INTO "court-booking".court(id, name, sport, "hourlyRate", status)
            VALUES ($1, $2, $3, $4, $5);
        `

	c.ID = uuid.NewString()

	if len(c.Status) == 0 {
		c.Status = StatusAvailable
	}

	_, err := r.pool.Exec(ctx, sql, c.ID, c.Name, c.Sport, c.HourlyRate, c.Status)

	if err != nil {
		return Court{}, fmt.Errorf("failed to insert court: %w", err)
	}

	return c, nil
}

func (r *Repository) UpdateCourt(ctx context.Context, c Court) error {
	sql := `
            UPDATE "court-booking".court
            SET name=$1, sport=$2, "hourlyRate"=$3, status=$4
            WHERE id=$5;
        `

	tag, err := r.pool.Exec(ctx, sql, c.Name, c.Sport, c.HourlyRate, c.Status, c.ID)

	if err != nil {
		return fmt.Errorf("failed to update court: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCourtNotFound
	}

	return nil
}

func (r *Repository) DeleteCourt(ctx context.Context, id string) error {
	sql := `
            DELETE FROM "court-booking".court
            WHERE id=$1;
        `

	tag, err := r.pool.Exec(ctx, sql, id)

	if isForeignKeyViolation(err) {
		return ErrCourtInUse
	}

	if err != nil {
		return fmt.Errorf("failed to delete court '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCourtNotFound
	}

	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
