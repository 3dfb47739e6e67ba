package services

import (
	"context"
	"database/sql"

	"storefront/internal/dbx"
	items "storefront/internal/server/repositories/items"
	"storefront/internal/server/models"
	"storefront/internal/server/repositories/users"
)

// fakeManager hands out the canned repositories regardless of the DBTX it is
// given, so services can be exercised without a database.
type fakeManager struct {
	users users.Repository
	items items.Repository
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeManager) Items(dbx.DBTX) items.Repository              { return m.items }

type fakeUserRepo struct {
	createFn        func(ctx context.Context, user *models.User) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	getByIDFn       func(ctx context.Context, id int64) (*models.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return r.createFn(ctx, user)
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getByUsernameFn(ctx, username)
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getByIDFn(ctx, id)
}

type fakeItemRepo struct {
	createFn          func(ctx context.Context, item *models.Item) (*models.Item, error)
	getByIDFn         func(ctx context.Context, id int64) (*models.Item, error)
	getByIDAndOwnerFn func(ctx context.Context, id, ownerID int64) (*models.Item, error)
	updateFn          func(ctx context.Context, item *models.Item) error
	deleteFn          func(ctx context.Context, id, ownerID int64) (string, error)
	listFn            func(ctx context.Context, skip, limit int) ([]*models.Item, error)
	listByOwnerFn     func(ctx context.Context, ownerID int64) ([]*models.Item, error)
	searchFn          func(ctx context.Context, f items.Filter) ([]*models.Item, error)
}

func (r *fakeItemRepo) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	return r.createFn(ctx, item)
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	return r.getByIDFn(ctx, id)
}

func (r *fakeItemRepo) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.Item, error) {
	return r.getByIDAndOwnerFn(ctx, id, ownerID)
}

func (r *fakeItemRepo) Update(ctx context.Context, item *models.Item) error {
	return r.updateFn(ctx, item)
}

func (r *fakeItemRepo) Delete(ctx context.Context, id, ownerID int64) (string, error) {
	return r.deleteFn(ctx, id, ownerID)
}

func (r *fakeItemRepo) List(ctx context.Context, skip, limit int) ([]*models.Item, error) {
	return r.listFn(ctx, skip, limit)
}

func (r *fakeItemRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Item, error) {
	return r.listByOwnerFn(ctx, ownerID)
}

func (r *fakeItemRepo) Search(ctx context.Context, f items.Filter) ([]*models.Item, error) {
	return r.searchFn(ctx, f)
}
