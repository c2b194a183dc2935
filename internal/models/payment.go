package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Psychologist string  `gorm:"size:100;not null" json:"psychologist"`
	Amount       float64 `gorm:"not null" json:"amount"`
	Date         string  `gorm:"size:10;not null" json:"date"`
	Description  string  `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
