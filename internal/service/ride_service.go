// internal/service/ride_service.go
package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"rideflow/internal/domain"
	"rideflow/internal/repository"
	"rideflow/internal/util"
	"rideflow/pkg/db"

	"github.com/shopspring/decimal"
)

// Fare and ETA quote functions. They stand in for a pricing service; the
// defaults are randomized, tests inject fixed values.
type (
	QuoteFareFunc func() decimal.Decimal
	QuoteETAFunc  func() int
)

// RandomFare returns one of ten fare buckets: 15, 30, ... 150.
func RandomFare() decimal.Decimal {
	return decimal.NewFromInt(int64(rand.Intn(10)+1) * 15)
}

// RandomETA returns a pickup estimate between 2 and 11 minutes.
func RandomETA() int {
	return rand.Intn(10) + 2
}

// RideService orchestrates the ride lifecycle: request, complete, cancel.
// It is the only component touching wallet, ledger and driver roster together.
type RideService interface {
	RequestRide(ctx context.Context, userID, from, to string) (*domain.Ride, error)
	CompleteRide(ctx context.Context, rideID string) (*domain.Ride, error)
	CancelRide(ctx context.Context, rideID string) (*domain.Ride, error)
	ListRidesForUser(ctx context.Context, userID string) ([]domain.Ride, error)
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
}

// rideService implements the RideService interface.
type rideService struct {
	dbBeginner      db.DBTxBeginner
	dbExecutor      repository.DBExecutor
	walletRepo      repository.WalletRepository
	transactionRepo repository.TransactionRepository
	driverRepo      repository.DriverRepository
	rideRepo        repository.RideRepository
	beginTx         db.BeginTxFunc
	commitTx        db.CommitTxFunc
	rollbackTx      db.RollbackTxFunc
	quoteFare       QuoteFareFunc
	quoteETA        QuoteETAFunc
}

// NewRideService creates a new instance of RideService.
func NewRideService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	walletRepo repository.WalletRepository,
	transactionRepo repository.TransactionRepository,
	driverRepo repository.DriverRepository,
	rideRepo repository.RideRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	quoteFare QuoteFareFunc,
	quoteETA QuoteETAFunc,
) RideService {
	return &rideService{
		dbBeginner:      dbBeginner,
		dbExecutor:      dbExecutor,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		driverRepo:      driverRepo,
		rideRepo:        rideRepo,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
		quoteFare:       quoteFare,
		quoteETA:        quoteETA,
	}
}

// RequestRide quotes a fare, checks the wallet, allocates the first available
// driver, debits the fare and creates the ride. The whole sequence runs in one
// transaction: a failure at any step leaves wallet, ledger and roster unchanged.
func (s *rideService) RequestRide(ctx context.Context, userID, from, to string) (*domain.Ride, error) {
	if userID == "" || from == "" || to == "" {
		return nil, util.ErrInvalidInput
	}

	fare := s.quoteFare()
	eta := s.quoteETA()

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("request ride: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("request ride: transaction controller does not implement DBExecutor")
	}

	// Balance check comes before driver allocation; a short wallet must not
	// touch the roster.
	wallet, err := s.walletRepo.GetWalletForUpdate(ctx, txExecutor)
	if err != nil {
		return nil, fmt.Errorf("request ride: failed to get wallet: %w", err)
	}
	if wallet.Balance.LessThan(fare) {
		return nil, util.ErrInsufficientFunds
	}

	drv, err := s.driverRepo.FirstAvailable(ctx, txExecutor)
	if err != nil {
		if util.IsError(err, util.ErrNoDriverAvailable) {
			return nil, util.ErrNoDriverAvailable
		}
		return nil, fmt.Errorf("request ride: failed to allocate driver: %w", err)
	}

	if err := s.driverRepo.SetAvailability(ctx, txExecutor, drv.ID, false); err != nil {
		return nil, fmt.Errorf("request ride: failed to mark driver %s busy: %w", drv.ID, err)
	}

	if err := s.walletRepo.UpdateWalletBalance(ctx, txExecutor, fare.Neg()); err != nil {
		return nil, fmt.Errorf("request ride: failed to debit fare: %w", err)
	}

	transaction := domain.NewTransaction(util.NewID(), domain.TransactionKindRide, fare)
	if err := s.transactionRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, fmt.Errorf("request ride: failed to create transaction: %w", err)
	}

	// The ride embeds a value copy of the driver as assigned, not a live
	// reference. Release goes through the roster by DriverID.
	snapshot := domain.DriverSnapshot(*drv)
	snapshot.Available = false

	ride := &domain.Ride{
		ID:         util.NewID(),
		UserID:     userID,
		From:       from,
		To:         to,
		Fare:       fare,
		Status:     domain.RideStatusRequested,
		DriverID:   drv.ID,
		Driver:     snapshot,
		EtaMinutes: eta,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.rideRepo.CreateRide(ctx, txExecutor, ride); err != nil {
		return nil, fmt.Errorf("request ride: failed to create ride: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("request ride: failed to commit transaction: %w", err)
	}

	return ride, nil
}

// CompleteRide moves a requested ride to completed and releases its driver.
// The fare is kept; the wallet is untouched.
func (s *rideService) CompleteRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("complete ride: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("complete ride: transaction controller does not implement DBExecutor")
	}

	ride, err := s.rideRepo.GetRideForUpdate(ctx, txExecutor, rideID)
	if err != nil {
		if util.IsError(err, util.ErrRideNotFound) {
			return nil, util.ErrRideNotFound
		}
		return nil, fmt.Errorf("complete ride: failed to get ride %s: %w", rideID, err)
	}
	if ride.Status != domain.RideStatusRequested {
		return nil, util.ErrInvalidTransition
	}

	if err := s.rideRepo.UpdateRideStatus(ctx, txExecutor, rideID, domain.RideStatusCompleted); err != nil {
		return nil, fmt.Errorf("complete ride: failed to update status: %w", err)
	}
	if err := s.driverRepo.SetAvailability(ctx, txExecutor, ride.DriverID, true); err != nil {
		return nil, fmt.Errorf("complete ride: failed to release driver %s: %w", ride.DriverID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("complete ride: failed to commit transaction: %w", err)
	}

	ride.Status = domain.RideStatusCompleted
	return ride, nil
}

// CancelRide moves a requested ride to cancelled, releases its driver and
// refunds the full fare, with a matching refund ledger entry.
func (s *rideService) CancelRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("cancel ride: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("cancel ride: transaction controller does not implement DBExecutor")
	}

	ride, err := s.rideRepo.GetRideForUpdate(ctx, txExecutor, rideID)
	if err != nil {
		if util.IsError(err, util.ErrRideNotFound) {
			return nil, util.ErrRideNotFound
		}
		return nil, fmt.Errorf("cancel ride: failed to get ride %s: %w", rideID, err)
	}
	if ride.Status != domain.RideStatusRequested {
		return nil, util.ErrInvalidTransition
	}

	if err := s.rideRepo.UpdateRideStatus(ctx, txExecutor, rideID, domain.RideStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel ride: failed to update status: %w", err)
	}
	if err := s.driverRepo.SetAvailability(ctx, txExecutor, ride.DriverID, true); err != nil {
		return nil, fmt.Errorf("cancel ride: failed to release driver %s: %w", ride.DriverID, err)
	}

	if err := s.walletRepo.UpdateWalletBalance(ctx, txExecutor, ride.Fare); err != nil {
		return nil, fmt.Errorf("cancel ride: failed to refund fare: %w", err)
	}
	transaction := domain.NewTransaction(util.NewID(), domain.TransactionKindRefund, ride.Fare)
	if err := s.transactionRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, fmt.Errorf("cancel ride: failed to create refund transaction: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("cancel ride: failed to commit transaction: %w", err)
	}

	ride.Status = domain.RideStatusCancelled
	return ride, nil
}

// ListRidesForUser returns the user's rides in storage order.
func (s *rideService) ListRidesForUser(ctx context.Context, userID string) ([]domain.Ride, error) {
	rides, err := s.rideRepo.ListRidesByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list rides: %w", err)
	}
	return rides, nil
}

// ListDrivers returns the full roster, including busy drivers.
func (s *rideService) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	drivers, err := s.driverRepo.ListDrivers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return drivers, nil
}
