package models

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"public_id"`

	Psychologist string `gorm:"size:100;not null" json:"psychologist"`
	Site         string `gorm:"size:100;not null;index:idx_res_slot" json:"site"`

	Date string `gorm:"size:10;not null;index:idx_res_slot" json:"date"`
	Hour string `gorm:"size:5;not null;index:idx_res_slot" json:"hour"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending';index:idx_res_slot" json:"status"`

	// Event id assigned by the external calendar once the insert is accepted.
	// Reconciliation key between the store and the calendar.
	CalendarEventID string `gorm:"size:255" json:"calendar_event_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
