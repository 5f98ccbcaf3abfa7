// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wish is a single wishlist item owned by exactly one user.
// Price uses a fixed-point decimal so money values never round-trip
// through binary floating point.
type Wish struct {
	ID          int64            // Primary key assigned by the database.
	UserID      int64            // Owner of this wish; all reads and writes are scoped to it.
	Title       string           // 1-200 characters after sanitization.
	Description string           // Optional, up to 1000 characters.
	Price       *decimal.Decimal // Optional, max 12 total digits, 2 fractional.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
