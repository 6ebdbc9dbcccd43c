// internal/repository/postgres/wallet_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rideflow/internal/domain"
	"rideflow/internal/repository"
	"rideflow/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// WalletRepository implements repository.WalletRepository for PostgreSQL.
// Stateless; methods receive a DBExecutor directly.
type WalletRepository struct{}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(db *sqlx.DB) repository.WalletRepository {
	return &WalletRepository{}
}

// GetWallet retrieves the singleton wallet using the provided DBExecutor.
func (r *WalletRepository) GetWallet(ctx context.Context, q repository.DBExecutor) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT id, balance, created_at, updated_at FROM wallet WHERE id = 1`
	err := q.GetContext(ctx, &wallet, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// GetWalletForUpdate retrieves the wallet with a row lock.
func (r *WalletRepository) GetWalletForUpdate(ctx context.Context, q repository.DBExecutor) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT id, balance, created_at, updated_at FROM wallet WHERE id = 1 FOR UPDATE`
	err := q.GetContext(ctx, &wallet, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return &wallet, nil
}

// UpdateWalletBalance applies a signed delta to the wallet balance.
func (r *WalletRepository) UpdateWalletBalance(ctx context.Context, q repository.DBExecutor, delta decimal.Decimal) error {
	query := `UPDATE wallet SET balance = balance + $1, updated_at = $2 WHERE id = 1`
	result, err := q.ExecContext(ctx, query, delta, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update wallet balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating wallet balance: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no rows affected when updating wallet balance, wallet row missing")
	}
	return nil
}
