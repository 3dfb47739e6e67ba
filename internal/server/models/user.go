// Package models defines server-side data models persisted in the database.
package models

import (
	"database/sql"
	"time"
)

// User is an account row. HashedPassword holds a bcrypt hash and must never
// be serialized into API responses.
type User struct {
	ID             int64
	Username       string
	Email          string
	FullName       sql.NullString
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
}
