// Package items provides the PostgreSQL-backed repository for inventory rows
// and their owner-scoped mutations.
package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/common"
	"storefront/internal/dbx"
	"storefront/internal/server/models"
)

const itemColumns = "id, name, price, description, is_available, owner_id, created_at"

// PostgresRepository implements item storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	query := `
		INSERT INTO items (name, price, description, is_available, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Price, item.Description, item.IsAvailable, item.OwnerID).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return scanItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND owner_id = $2`
	return scanItem(r.db.QueryRowContext(ctx, query, id, ownerID))
}

// Update rewrites the mutable columns of an item, guarded by the fused
// id+owner predicate. Zero rows affected means not found (or not yours,
// which must look the same).
func (r *PostgresRepository) Update(ctx context.Context, item *models.Item) error {
	query := `
		UPDATE items
		SET name = $1, price = $2, description = $3, is_available = $4
		WHERE id = $5 AND owner_id = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		item.Name, item.Price, item.Description, item.IsAvailable, item.ID, item.OwnerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Delete removes an item owned by ownerID and returns its name for
// confirmation messaging.
func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) (string, error) {
	query := `DELETE FROM items WHERE id = $1 AND owner_id = $2 RETURNING name`

	var name string
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return name, nil
}

func (r *PostgresRepository) List(ctx context.Context, skip, limit int) ([]*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	return collectItems(rows)
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	return collectItems(rows)
}

// Search applies the present predicates conjunctively: case-insensitive
// substring match on name, inclusive price bounds.
func (r *PostgresRepository) Search(ctx context.Context, f Filter) ([]*models.Item, error) {
	var (
		conds []string
		args  []any
	)

	if f.Keyword != "" {
		args = append(args, "%"+f.Keyword+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	query := `SELECT ` + itemColumns + ` FROM items`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	return collectItems(rows)
}

func scanItem(row *sql.Row) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(&item.ID, &item.Name, &item.Price, &item.Description,
		&item.IsAvailable, &item.OwnerID, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func collectItems(rows *sql.Rows) ([]*models.Item, error) {
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Description,
			&item.IsAvailable, &item.OwnerID, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
