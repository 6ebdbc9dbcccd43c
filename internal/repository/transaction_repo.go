// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"rideflow/internal/domain"
)

// TransactionRepository defines the interface for ledger entries.
type TransactionRepository interface {
	// CreateTransaction appends a new ledger entry.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// ListTransactions returns the full ledger in insertion order.
	ListTransactions(ctx context.Context, q DBExecutor) ([]domain.Transaction, error)
}
