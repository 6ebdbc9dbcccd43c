// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"fmt"

	"rideflow/internal/domain"
	"rideflow/internal/repository"

	"github.com/jmoiron/sqlx"
)

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction appends a new ledger entry using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (id, kind, amount, created_at)
              VALUES ($1, $2, $3, $4) RETURNING seq`
	err := q.QueryRowContext(ctx, query,
		transaction.ID,
		transaction.Kind,
		transaction.Amount,
		transaction.CreatedAt,
	).Scan(&transaction.Seq)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListTransactions returns the full ledger in insertion order.
func (r *TransactionRepository) ListTransactions(ctx context.Context, q repository.DBExecutor) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT id, seq, kind, amount, created_at FROM transactions ORDER BY seq`
	if err := q.SelectContext(ctx, &transactions, query); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
