package domain

import "time"

// Table represents a restaurant table
type Table struct {
	ID           int64
	RestaurantID int64
	Name         string
	Capacity     int
	IsActive     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the table can take reservations
func (t *Table) IsBookable() bool {
	return t.IsActive && t.Capacity > 0
}

// Fits returns true if the table seats the given number of guests
func (t *Table) Fits(guests int) bool {
	return t.Capacity >= guests
}
