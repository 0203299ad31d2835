// Package match implements the Match repository using PostgreSQL.
//
// The matches table carries a UNIQUE (lost_item_id, found_item_id)
// constraint; GetOrCreate leans on it so concurrent orchestration passes
// for the same pair can never produce two rows.
package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/novahq/nova-backend/internal/adapter/postgres"
	"github.com/novahq/nova-backend/internal/domain"
)

const table = "matches"

var columns = []string{
	"id", "lost_item_id", "found_item_id", "score", "status",
	"created_at", "updated_at",
}

// Repo provides match persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new match repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a match by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get match query: %w", err)
	}

	m, err := scanMatch(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "match", id)
	}

	return m, nil
}

// GetOrCreate inserts a match for the (lost, found) pair with the given
// score and pending status, or returns the existing row untouched.
//
// The insert uses ON CONFLICT (lost_item_id, found_item_id) DO NOTHING:
// an existing row keeps its score and status no matter what this call
// carries (first write wins). The returned created flag reports whether
// this call inserted the row.
func (r *Repo) GetOrCreate(ctx context.Context, lostItemID, foundItemID uuid.UUID, score int) (*domain.Match, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	insertSQL, insertArgs, err := postgres.Builder().
		Insert(table).
		Columns("id", "lost_item_id", "found_item_id", "score", "status").
		Values(id, lostItemID, foundItemID, score, domain.MatchStatusPending).
		Suffix("ON CONFLICT (lost_item_id, found_item_id) DO NOTHING RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build create match query: %w", err)
	}

	m, err := scanMatch(q.QueryRow(ctx, insertSQL, insertArgs...))
	if err == nil {
		return m, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, postgres.MapError(err, "match", id)
	}

	// Conflict: the pair already exists. Fetch the winner.
	selectSQL, selectArgs, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"lost_item_id": lostItemID, "found_item_id": foundItemID}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build get match by pair query: %w", err)
	}

	m, err = scanMatch(q.QueryRow(ctx, selectSQL, selectArgs...))
	if err != nil {
		return nil, false, postgres.MapError(err, "match", id)
	}

	return m, false, nil
}

// ListForUser returns matches where the user owns either side, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Match, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(qualified()...).
		From(table + " m").
		Join("items li ON li.id = m.lost_item_id").
		Join("items fi ON fi.id = m.found_item_id").
		Where(squirrel.Or{
			squirrel.Eq{"li.user_id": userID},
			squirrel.Eq{"fi.user_id": userID},
		}).
		OrderBy("m.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []*domain.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}

	return matches, nil
}

// UpdateStatus sets the match status. The transition itself is validated by
// the matching service; this is a plain write.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) (*domain.Match, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update match status query: %w", err)
	}

	m, err := scanMatch(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "match", id)
	}

	return m, nil
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
		out[i] = "m." + c
	}
	return out
}

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var m domain.Match
	err := row.Scan(
		&m.ID,
		&m.LostItemID,
		&m.FoundItemID,
		&m.Score,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
