// internal/repository/wallet_repo.go
package repository

import (
	"context"

	"rideflow/internal/domain"

	"github.com/shopspring/decimal"
)

// WalletRepository defines the interface for the shared wallet's data operations.
type WalletRepository interface {
	// GetWallet retrieves the singleton wallet.
	GetWallet(ctx context.Context, q DBExecutor) (*domain.Wallet, error)
	// GetWalletForUpdate retrieves the wallet with a row lock. Must be called
	// inside a transaction; serializes concurrent balance checks.
	GetWalletForUpdate(ctx context.Context, q DBExecutor) (*domain.Wallet, error)
	// UpdateWalletBalance applies a signed delta to the wallet balance.
	UpdateWalletBalance(ctx context.Context, q DBExecutor, delta decimal.Decimal) error
}
