// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/novahq/nova-backend/internal/adapter/postgres"
	"github.com/novahq/nova-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "username", "password_hash", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user. Returns domain.ErrAlreadyExists on a duplicate
// email (unique constraint).
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "email", "username", "password_hash").
		Values(u.ID, u.Email, u.Username, u.PasswordHash).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user query: %w", err)
	}

	created, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user by email query: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
