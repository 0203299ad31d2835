// Package item implements the Item repository using PostgreSQL.
package item

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

const table = "items"

var columns = []string{
	"id", "user_id", "role", "description", "category", "brand", "color",
	"location", "date", "image_key", "status", "indexed", "index_id",
	"created_at", "updated_at",
}

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query: %w", err)
	}

	item, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return item, nil
}

// GetByIDAndRole returns an item only when it exists AND has the given role.
// Candidates referencing deleted items or items with the wrong role resolve
// to domain.ErrNotFound, which the resolver drops silently.
func (r *Repo) GetByIDAndRole(ctx context.Context, id uuid.UUID, role domain.ItemRole) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "role": role}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item by role query: %w", err)
	}

	item, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return item, nil
}

// List returns items matching the filter ordered per its sort settings,
// plus the total count before pagination.
func (r *Repo) List(ctx context.Context, f Filter) ([]*domain.Item, int, error) {
	f.normalize()

	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := f.conditions()

	countSQL, countArgs, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count items query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy(f.SortBy + " " + f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list items query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate items: %w", err)
	}

	return items, total, nil
}

// conditions translates the filter into squirrel predicates.
func (f *Filter) conditions() squirrel.And {
	cond := squirrel.And{}

	if f.UserID != nil {
		cond = append(cond, squirrel.Eq{"user_id": *f.UserID})
	}
	if f.Role != nil {
		cond = append(cond, squirrel.Eq{"role": *f.Role})
	}
	if f.Status != nil {
		cond = append(cond, squirrel.Eq{"status": *f.Status})
	}
	if f.Category != nil {
		cond = append(cond, squirrel.Eq{"category": *f.Category})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		cond = append(cond, squirrel.Or{
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"category": pattern},
			squirrel.ILike{"brand": pattern},
			squirrel.ILike{"color": pattern},
			squirrel.ILike{"location": pattern},
		})
	}

	return cond
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item and returns the persisted domain.Item.
func (r *Repo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "role", "description", "category", "brand",
			"color", "location", "date", "image_key", "status").
		Values(item.ID, item.UserID, item.Role, item.Description, item.Category,
			item.Brand, item.Color, item.Location, item.Date, item.ImageKey,
			item.Status).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create item query: %w", err)
	}

	created, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", item.ID)
	}

	return created, nil
}

// UpdateStatus sets the item's status. Returns domain.ErrNotFound if the
// item does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update item status query: %w", err)
	}

	item, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	return item, nil
}

// SetIndexMarkers records the external-index state after a successful
// provider Index call.
func (r *Repo) SetIndexMarkers(ctx context.Context, id uuid.UUID, indexed bool, indexID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("indexed", indexed).
		Set("index_id", indexID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set index markers query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}

	return nil
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

// scanItem scans one row in the order of the columns slice.
func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Role,
		&item.Description,
		&item.Category,
		&item.Brand,
		&item.Color,
		&item.Location,
		&item.Date,
		&item.ImageKey,
		&item.Status,
		&item.Indexed,
		&item.IndexID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
