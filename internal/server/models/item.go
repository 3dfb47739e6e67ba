package models

import (
	"database/sql"
	"time"
)

// Item is an inventory row. OwnerID references the creating user and is
// immutable after insert.
type Item struct {
	ID          int64
	Name        string
	Price       float64
	Description sql.NullString
	IsAvailable bool
	OwnerID     int64
	CreatedAt   time.Time
}
