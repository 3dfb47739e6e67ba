package repomanager

import (
	"context"
	"database/sql"

	"storefront/internal/dbx"
	"storefront/internal/server/repositories/items"
	"storefront/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Items(db dbx.DBTX) items.Repository
}
