// internal/repository/driver_repo.go
package repository

import (
	"context"

	"rideflow/internal/domain"
)

// DriverRepository defines the interface for the fixed driver roster.
type DriverRepository interface {
	// ListDrivers returns the full roster, including unavailable drivers,
	// in registry order.
	ListDrivers(ctx context.Context, q DBExecutor) ([]domain.Driver, error)
	// FirstAvailable returns the first available driver in registry order
	// (first-fit), locking the row. Returns util.ErrNoDriverAvailable when
	// the whole roster is busy. Must be called inside a transaction.
	FirstAvailable(ctx context.Context, q DBExecutor) (*domain.Driver, error)
	// SetAvailability sets the driver's available flag. Idempotent.
	SetAvailability(ctx context.Context, q DBExecutor, driverID string, available bool) error
}
