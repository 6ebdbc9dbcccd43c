// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"rideflow/internal/domain"
	"rideflow/internal/repository"
	"rideflow/pkg/db"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController. It embeds
// MockDBExecutor so the service can use it as a repository.DBExecutor.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// txFuncs returns injectable transaction control funcs backed by the mock controller.
func txFuncs(c *MockTxController) (db.BeginTxFunc, db.CommitTxFunc, db.RollbackTxFunc) {
	return func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			return c, nil
		}, func(tx db.TxController) error {
			return c.Commit()
		}, func(tx db.TxController) {
			_ = c.Rollback()
		}
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockWalletRepository is a mock implementation of repository.WalletRepository.
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetWallet(ctx context.Context, q repository.DBExecutor) (*domain.Wallet, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetWalletForUpdate(ctx context.Context, q repository.DBExecutor) (*domain.Wallet, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) UpdateWalletBalance(ctx context.Context, q repository.DBExecutor, delta decimal.Decimal) error {
	args := m.Called(ctx, q, delta)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	args := m.Called(ctx, q, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, q repository.DBExecutor) ([]domain.Transaction, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockDriverRepository is a mock implementation of repository.DriverRepository.
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) ListDrivers(ctx context.Context, q repository.DBExecutor) ([]domain.Driver, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Driver), args.Error(1)
}

func (m *MockDriverRepository) FirstAvailable(ctx context.Context, q repository.DBExecutor) (*domain.Driver, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockDriverRepository) SetAvailability(ctx context.Context, q repository.DBExecutor, driverID string, available bool) error {
	args := m.Called(ctx, q, driverID, available)
	return args.Error(0)
}

// MockRideRepository is a mock implementation of repository.RideRepository.
type MockRideRepository struct {
	mock.Mock
}

func (m *MockRideRepository) CreateRide(ctx context.Context, q repository.DBExecutor, ride *domain.Ride) error {
	args := m.Called(ctx, q, ride)
	return args.Error(0)
}

func (m *MockRideRepository) GetRideByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.Ride, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ride), args.Error(1)
}

func (m *MockRideRepository) GetRideForUpdate(ctx context.Context, q repository.DBExecutor, id string) (*domain.Ride, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ride), args.Error(1)
}

func (m *MockRideRepository) UpdateRideStatus(ctx context.Context, q repository.DBExecutor, id string, status domain.RideStatus) error {
	args := m.Called(ctx, q, id, status)
	return args.Error(0)
}

func (m *MockRideRepository) ListRidesByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Ride, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).([]domain.Ride), args.Error(1)
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(want)
	})
}
