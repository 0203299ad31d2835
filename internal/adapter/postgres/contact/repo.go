// Package contact implements the ContactRequest repository using PostgreSQL.
package contact

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

const table = "contact_requests"

var columns = []string{
	"id", "requester_id", "item_id", "message", "status",
	"created_at", "updated_at",
}

// Repo provides contact-request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact-request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new contact request with pending status.
func (r *Repo) Create(ctx context.Context, req *domain.ContactRequest) (*domain.ContactRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "requester_id", "item_id", "message", "status").
		Values(req.ID, req.RequesterID, req.ItemID, req.Message, domain.ContactRequestStatusPending).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create contact request query: %w", err)
	}

	created, err := scanRequest(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "contact_request", req.ID)
	}

	return created, nil
}

// GetByID returns a contact request by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get contact request query: %w", err)
	}

	req, err := scanRequest(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "contact_request", id)
	}

	return req, nil
}

// ListForUser returns requests the user sent plus requests targeting the
// user's items, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.ContactRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(qualified()...).
		From(table + " cr").
		Join("items i ON i.id = cr.item_id").
		Where(squirrel.Or{
			squirrel.Eq{"cr.requester_id": userID},
			squirrel.Eq{"i.user_id": userID},
		}).
		OrderBy("cr.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list contact requests query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list contact requests: %w", err)
	}
	defer rows.Close()

	var reqs []*domain.ContactRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact request: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact requests: %w", err)
	}

	return reqs, nil
}

// UpdateStatus sets the request status. Ownership and transition rules are
// enforced by the contact service.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactRequestStatus) (*domain.ContactRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update contact request query: %w", err)
	}

	req, err := scanRequest(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "contact_request", id)
	}

	return req, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}

func qualified() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = "cr." + c
	}
	return out
}

func scanRequest(row pgx.Row) (*domain.ContactRequest, error) {
	var req domain.ContactRequest
	err := row.Scan(
		&req.ID,
		&req.RequesterID,
		&req.ItemID,
		&req.Message,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
