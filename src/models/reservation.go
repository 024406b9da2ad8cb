package models

import (
	"cafe/src/types"
	"time"
)

type Reservation struct {
	ID              uint                    `gorm:"primarykey" json:"id"`
	UserID          uint                    `gorm:"index" json:"user_id"`
	DiningTableID   uint                    `gorm:"index" json:"dining_table_id"`
	ReservationTime time.Time               `json:"reservation_time"`
	DurationMinutes int                     `json:"duration_minutes"`
	Status          types.ReservationStatus `gorm:"size:16;default:'pending'" json:"status"`
	Notes           *string                 `json:"notes"`

	User        *User        `json:"user,omitempty"`
	DiningTable *DiningTable `json:"dining_table,omitempty"`

	types.Timestamps
}

func (r *Reservation) EndsAt() time.Time {
	return r.ReservationTime.Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// IsActive reports whether the reservation still claims its table at now.
func (r *Reservation) IsActive(now time.Time) bool {
	return r.Status != types.RESERVATION_CANCELLED && now.Before(r.EndsAt())
}

// Overlaps reports whether both reservations hold the same table for an intersecting window.
func (r *Reservation) Overlaps(other *Reservation) bool {
	if r.DiningTableID != other.DiningTableID {
		return false
	}
	return r.ReservationTime.Before(other.EndsAt()) && other.ReservationTime.Before(r.EndsAt())
}
