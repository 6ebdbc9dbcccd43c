// internal/repository/postgres/driver_pg.go
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

// DriverRepository implements repository.DriverRepository for PostgreSQL.
type DriverRepository struct{}

// NewDriverRepository creates a new DriverRepository.
func NewDriverRepository(db *sqlx.DB) repository.DriverRepository {
	return &DriverRepository{}
}

// ListDrivers returns the full roster in registry order.
func (r *DriverRepository) ListDrivers(ctx context.Context, q repository.DBExecutor) ([]domain.Driver, error) {
	drivers := []domain.Driver{}
	query := `SELECT id, name, car, rating, available,
                     lat AS "location.lat", lng AS "location.lng"
              FROM drivers ORDER BY id`
	if err := q.SelectContext(ctx, &drivers, query); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// FirstAvailable returns the first available driver in registry order,
// locking the row for the duration of the transaction (first-fit policy).
func (r *DriverRepository) FirstAvailable(ctx context.Context, q repository.DBExecutor) (*domain.Driver, error) {
	var d domain.Driver
	query := `SELECT id, name, car, rating, available,
                     lat AS "location.lat", lng AS "location.lng"
              FROM drivers WHERE available ORDER BY id LIMIT 1 FOR UPDATE`
	err := q.GetContext(ctx, &d, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNoDriverAvailable
		}
		return nil, fmt.Errorf("failed to find an available driver: %w", err)
	}
	return &d, nil
}

// SetAvailability sets the driver's available flag regardless of prior state.
func (r *DriverRepository) SetAvailability(ctx context.Context, q repository.DBExecutor, driverID string, available bool) error {
	query := `UPDATE drivers SET available = $1 WHERE id = $2`
	result, err := q.ExecContext(ctx, query, available, driverID)
	if err != nil {
		return fmt.Errorf("failed to set availability for driver %s: %w", driverID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating driver %s: %w", driverID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
