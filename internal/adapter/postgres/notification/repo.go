// Package notification implements the Notification repository using PostgreSQL.
package notification

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

const table = "notifications"

var columns = []string{
	"id", "user_id", "kind", "title", "message", "item_id", "match_id",
	"read", "created_at",
}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a notification and returns the persisted record.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "kind", "title", "message", "item_id", "match_id").
		Values(n.ID, n.UserID, n.Kind, n.Title, n.Message, n.ItemID, n.MatchID).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create notification query: %w", err)
	}

	created, err := scanNotification(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.ID)
	}

	return created, nil
}

// List returns the user's notifications newest first, plus the total count.
// unreadOnly narrows to read=false.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Notification, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if unreadOnly {
		where = append(where, squirrel.Eq{"read": false})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count notifications query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list notifications query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var items []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan notification: %w", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate notifications: %w", err)
	}

	return items, total, nil
}

// MarkRead flips read=true on one notification owned by the user.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("read", true).
		Where(squirrel.Eq{"id": notificationID, "user_id": userID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mark read query: %w", err)
	}

	n, err := scanNotification(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "notification", notificationID)
	}

	return n, nil
}

// MarkAllRead flips read=true on every unread notification for the user.
// Idempotent; returns the number of rows updated.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("read", true).
		Where(squirrel.Eq{"user_id": userID, "read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark all read query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	return int(tag.RowsAffected()), nil
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

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Kind,
		&n.Title,
		&n.Message,
		&n.ItemID,
		&n.MatchID,
		&n.Read,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
