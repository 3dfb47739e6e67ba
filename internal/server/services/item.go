package services

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/dbx"
	"storefront/internal/server/models"
	"storefront/internal/server/repositories/items"
	"storefront/internal/server/repositories/repomanager"
)

// NewItem holds the fields of an item to be created. Description is optional;
// IsAvailable has already been defaulted by the caller.
type NewItem struct {
	Name        string
	Price       float64
	Description *string
	IsAvailable bool
}

// ItemPatch holds a partial update: nil fields are left untouched.
type ItemPatch struct {
	Name        *string
	Price       *float64
	Description *string
	IsAvailable *bool
}

// ItemFilter mirrors the optional search predicates.
type ItemFilter struct {
	Keyword  string
	MinPrice *float64
	MaxPrice *float64
}

// ItemService implements inventory operations. Mutations are scoped to the
// owning user: an update or delete of somebody else's item reports
// common.ErrorNotFound, never a permission error.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewItemService constructs an ItemService.
func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repomanager: m}
}

// List returns items in insertion order, paginated by skip/limit. Bounds are
// validated at the transport layer.
func (s *ItemService) List(ctx context.Context, skip, limit int) ([]*models.Item, error) {
	return s.repomanager.Items(s.db).List(ctx, skip, limit)
}

// Get returns the item with the given id.
func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.repomanager.Items(s.db).GetByID(ctx, id)
}

// Create persists a new item owned by ownerID and returns it with the
// assigned id.
func (s *ItemService) Create(ctx context.Context, fields NewItem, ownerID int64) (*models.Item, error) {
	item := &models.Item{
		Name:        fields.Name,
		Price:       fields.Price,
		Description: toNullString(fields.Description),
		IsAvailable: fields.IsAvailable,
		OwnerID:     ownerID,
	}
	created, err := s.repomanager.Items(s.db).Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return created, nil
}

// Update applies the non-nil fields of patch to the item with the given id,
// provided ownerID owns it. The read and the write run in one transaction so
// a concurrent mutation cannot interleave between them.
func (s *ItemService) Update(ctx context.Context, id, ownerID int64, patch ItemPatch) (*models.Item, error) {
	var updated *models.Item

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)

		item, err := repo.GetByIDAndOwner(ctx, id, ownerID)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Price != nil {
			item.Price = *patch.Price
		}
		if patch.Description != nil {
			item.Description = toNullString(patch.Description)
		}
		if patch.IsAvailable != nil {
			item.IsAvailable = *patch.IsAvailable
		}

		if err := repo.Update(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the item with the given id if ownerID owns it, returning the
// deleted item's name.
func (s *ItemService) Delete(ctx context.Context, id, ownerID int64) (string, error) {
	return s.repomanager.Items(s.db).Delete(ctx, id, ownerID)
}

// Search returns all items matching the present predicates. An absent
// predicate imposes no filter; results are unpaginated.
func (s *ItemService) Search(ctx context.Context, f ItemFilter) ([]*models.Item, error) {
	return s.repomanager.Items(s.db).Search(ctx, items.Filter{
		Keyword:  f.Keyword,
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
	})
}

// ListOwned returns every item owned by ownerID.
func (s *ItemService) ListOwned(ctx context.Context, ownerID int64) ([]*models.Item, error) {
	return s.repomanager.Items(s.db).ListByOwner(ctx, ownerID)
}
