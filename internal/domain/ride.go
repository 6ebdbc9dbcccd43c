// internal/domain/ride.go
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RideStatus defines the lifecycle state of a ride.
// requested is the only non-terminal state.
type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// DriverSnapshot is a value copy of the driver record taken at assignment
// time. It is not kept in sync with later roster changes; releasing the
// driver goes through the registry by DriverID instead. Stored as JSONB.
type DriverSnapshot Driver

// Value implements driver.Valuer for JSONB storage.
func (s DriverSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (s *DriverSnapshot) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported driver snapshot source type %T", src)
	}
}

// Ride is created on request and mutated only by the complete/cancel
// transitions. Rides are never deleted.
type Ride struct {
	ID         string          `db:"id" json:"id"`
	Seq        int64           `db:"seq" json:"-"` // insertion order, BIGSERIAL in DB
	UserID     string          `db:"user_id" json:"user_id"`
	From       string          `db:"from_location" json:"from"`
	To         string          `db:"to_location" json:"to"`
	Fare       decimal.Decimal `db:"fare" json:"fare"`
	Status     RideStatus      `db:"status" json:"status"`
	DriverID   string          `db:"driver_id" json:"driver_id"`
	Driver     DriverSnapshot  `db:"driver" json:"driver"`
	EtaMinutes int             `db:"eta_minutes" json:"eta_minutes"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
