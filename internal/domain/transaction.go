// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind defines the kind of a ledger entry.
type TransactionKind string

const (
	TransactionKindTopUp  TransactionKind = "topup"
	TransactionKindRide   TransactionKind = "ride"
	TransactionKindRefund TransactionKind = "refund"
)

// Transaction is an append-only ledger entry. Entries are never mutated or
// deleted; every balance change on the wallet has a matching entry.
type Transaction struct {
	ID        string          `db:"id" json:"id"`
	Seq       int64           `db:"seq" json:"-"` // insertion order, BIGSERIAL in DB
	Kind      TransactionKind `db:"kind" json:"kind"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// NewTransaction creates a new ledger entry of the given kind.
func NewTransaction(id string, kind TransactionKind, amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:        id,
		Kind:      kind,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}
