package items

import (
	"context"

	"storefront/internal/server/models"
)

// Filter holds the optional, conjunctive predicates for item search.
// Nil/empty fields impose no restriction.
type Filter struct {
	Keyword  string
	MinPrice *float64
	MaxPrice *float64
}

type Repository interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	// GetByIDAndOwner and the mutating calls below are fused on id AND
	// owner_id: a foreign item is indistinguishable from a missing one.
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id, ownerID int64) (string, error)
	List(ctx context.Context, skip, limit int) ([]*models.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Item, error)
	Search(ctx context.Context, f Filter) ([]*models.Item, error)
}
