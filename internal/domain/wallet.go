// internal/domain/wallet.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Wallet represents the single shared demo wallet. There is exactly one row,
// seeded by migrations; the balance moves through top-ups, ride debits and
// cancellation refunds.
type Wallet struct {
	ID        int64           `db:"id" json:"-"`
	Balance   decimal.Decimal `db:"balance" json:"balance"` // NUMERIC(20, 2) in DB
	CreatedAt time.Time       `db:"created_at" json:"-"`
	UpdatedAt time.Time       `db:"updated_at" json:"-"`
}
