package user

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

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	sql := `
            SELECT id, name, email, password, role
            FROM "court-booking".app_user
            WHERE id=$1;
        `

	var u User
	err := r.pool.QueryRow(ctx, sql, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with id %v: %w", id, err)
	}

	return u, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	sql := `
            SELECT id, name, email, password, role
            FROM "court-booking".app_user
            WHERE email=$1;
        `

	var u User
	err := r.pool.QueryRow(ctx, sql, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with email '%v': %w", email, err)
	}

	return u, nil
}

func (r *Repository) InsertUser(ctx context.Context, u User) (User, error) {
	sql := `
            INSERT INTO "court-booking".app_user(id, name, email, password, role)
            VALUES ($1, $2, $3, $4, $5);
        `

	u.ID = uuid.NewString()

	_, err := r.pool.Exec(ctx, sql, u.ID, u.Name, u.Email, u.PasswordHash, u.Role)

	if isUniqueViolation(err) {
		return User{}, ErrEmailTaken
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
