package domain

import (
	"time"
)

// Restaurant represents a restaurant (tenant location) whose tables are booked
type Restaurant struct {
	ID       int64
	Name     string
	Timezone string // IANA, например "Europe/Moscow"
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location returns the restaurant timezone.
// Unknown or empty timezone falls back to UTC.
func (r *Restaurant) Location() *time.Location {
	if r.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
