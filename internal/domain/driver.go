// internal/domain/driver.go
package domain

// Location is a driver's last known position.
type Location struct {
	Lat float64 `db:"lat" json:"lat"`
	Lng float64 `db:"lng" json:"lng"`
}

// Driver is a roster entry. The roster is fixed and seeded by migrations;
// only the available flag changes, toggled by the ride lifecycle.
type Driver struct {
	ID        string   `db:"id" json:"id"`
	Name      string   `db:"name" json:"name"`
	Car       string   `db:"car" json:"car"`
	Rating    float64  `db:"rating" json:"rating"`
	Available bool     `db:"available" json:"available"`
	Location  Location `json:"location"`
}
