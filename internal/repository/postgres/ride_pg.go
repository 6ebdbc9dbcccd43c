// internal/repository/postgres/ride_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rideflow/internal/domain"
	"rideflow/internal/repository"
	"rideflow/internal/util"

	"github.com/jmoiron/sqlx"
)

// RideRepository implements repository.RideRepository for PostgreSQL.
type RideRepository struct{}

// NewRideRepository creates a new RideRepository.
func NewRideRepository(db *sqlx.DB) repository.RideRepository {
	return &RideRepository{}
}

const rideColumns = `id, seq, user_id, from_location, to_location, fare, status, driver_id, driver, eta_minutes, created_at`

// CreateRide inserts a new ride using the provided DBExecutor.
func (r *RideRepository) CreateRide(ctx context.Context, q repository.DBExecutor, ride *domain.Ride) error {
	query := `INSERT INTO rides (id, user_id, from_location, to_location, fare, status, driver_id, driver, eta_minutes, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING seq`
	err := q.QueryRowContext(ctx, query,
		ride.ID,
		ride.UserID,
		ride.From,
		ride.To,
		ride.Fare,
		ride.Status,
		ride.DriverID,
		ride.Driver,
		ride.EtaMinutes,
		ride.CreatedAt,
	).Scan(&ride.Seq)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetRideByID retrieves a ride by its ID using the provided DBExecutor.
func (r *RideRepository) GetRideByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.Ride, error) {
	var ride domain.Ride
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`
	err := q.GetContext(ctx, &ride, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride by ID %s: %w", id, err)
	}
	return &ride, nil
}

// GetRideForUpdate retrieves a ride with a row lock for a status transition.
func (r *RideRepository) GetRideForUpdate(ctx context.Context, q repository.DBExecutor, id string) (*domain.Ride, error) {
	var ride domain.Ride
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1 FOR UPDATE`
	err := q.GetContext(ctx, &ride, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to lock ride %s: %w", id, err)
	}
	return &ride, nil
}

// UpdateRideStatus sets the ride's status.
func (r *RideRepository) UpdateRideStatus(ctx context.Context, q repository.DBExecutor, id string, status domain.RideStatus) error {
	query := `UPDATE rides SET status = $1 WHERE id = $2`
	result, err := q.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status of ride %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating ride %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrRideNotFound
	}
	return nil
}

// ListRidesByUser returns the user's rides in storage order.
func (r *RideRepository) ListRidesByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Ride, error) {
	rides := []domain.Ride{}
	query := `SELECT ` + rideColumns + ` FROM rides WHERE user_id = $1 ORDER BY seq`
	if err := q.SelectContext(ctx, &rides, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list rides for user %s: %w", userID, err)
	}
	return rides, nil
}
