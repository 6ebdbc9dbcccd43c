// internal/repository/ride_repo.go
package repository

import (
	"context"

	"rideflow/internal/domain"
)

// RideRepository defines the interface for ride data operations.
type RideRepository interface {
	// CreateRide inserts a new ride.
	CreateRide(ctx context.Context, q DBExecutor, ride *domain.Ride) error
	// GetRideByID retrieves a ride by its ID.
	GetRideByID(ctx context.Context, q DBExecutor, id string) (*domain.Ride, error)
	// GetRideForUpdate retrieves a ride with a row lock, so a status
	// transition cannot race another. Must be called inside a transaction.
	GetRideForUpdate(ctx context.Context, q DBExecutor, id string) (*domain.Ride, error)
	// UpdateRideStatus sets the ride's status.
	UpdateRideStatus(ctx context.Context, q DBExecutor, id string, status domain.RideStatus) error
	// ListRidesByUser returns the user's rides in storage order.
	ListRidesByUser(ctx context.Context, q DBExecutor, userID string) ([]domain.Ride, error)
}
