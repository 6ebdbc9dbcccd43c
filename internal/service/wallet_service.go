// internal/service/wallet_service.go
package service

import (
	"context"
	"fmt"

	"rideflow/internal/domain"
	"rideflow/internal/repository"
	"rideflow/internal/util"
	"rideflow/pkg/db"

	"github.com/shopspring/decimal"
)

// WalletService defines the business logic for the shared wallet and its ledger.
type WalletService interface {
	TopUp(ctx context.Context, amount decimal.Decimal) (*domain.Wallet, *domain.Transaction, error)
	GetBalance(ctx context.Context) (*domain.Wallet, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// walletService implements the WalletService interface.
type walletService struct {
	dbBeginner      db.DBTxBeginner
	dbExecutor      repository.DBExecutor
	walletRepo      repository.WalletRepository
	transactionRepo repository.TransactionRepository
	beginTx         db.BeginTxFunc
	commitTx        db.CommitTxFunc
	rollbackTx      db.RollbackTxFunc
}

// NewWalletService creates a new instance of WalletService.
func NewWalletService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	walletRepo repository.WalletRepository,
	transactionRepo repository.TransactionRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) WalletService {
	return &walletService{
		dbBeginner:      dbBeginner,
		dbExecutor:      dbExecutor,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
	}
}

// TopUp adds money to the shared wallet and appends a topup ledger entry.
// Non-positive amounts are rejected.
func (s *walletService) TopUp(ctx context.Context, amount decimal.Decimal) (*domain.Wallet, *domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, nil, fmt.Errorf("top up: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, nil, fmt.Errorf("top up: transaction controller does not implement DBExecutor")
	}

	if err := s.walletRepo.UpdateWalletBalance(ctx, txExecutor, amount); err != nil {
		return nil, nil, fmt.Errorf("top up: failed to update wallet balance: %w", err)
	}

	transaction := domain.NewTransaction(util.NewID(), domain.TransactionKindTopUp, amount)
	if err := s.transactionRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, nil, fmt.Errorf("top up: failed to create transaction: %w", err)
	}

	wallet, err := s.walletRepo.GetWallet(ctx, txExecutor)
	if err != nil {
		return nil, nil, fmt.Errorf("top up: failed to re-fetch wallet: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, nil, fmt.Errorf("top up: failed to commit transaction: %w", err)
	}

	return wallet, transaction, nil
}

// GetBalance returns the current wallet state.
func (s *walletService) GetBalance(ctx context.Context) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("get balance: failed to get wallet: %w", err)
	}
	return wallet, nil
}

// ListTransactions returns the full ledger in insertion order.
func (s *walletService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}
