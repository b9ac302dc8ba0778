package models

import "time"

type BookingAttempt struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequestID string `gorm:"size:64;index" json:"request_id"`

	Name    string `gorm:"size:255" json:"name"`
	Phone   string `gorm:"size:64" json:"phone"`
	Email   string `gorm:"size:255" json:"email"`
	Service string `gorm:"size:255" json:"service"`
	Date    string `gorm:"size:10" json:"date"`
	Time    string `gorm:"size:8" json:"time"`

	Outcome string `gorm:"size:20;not null;index" json:"outcome"`
	Stage   string `gorm:"size:20;index" json:"stage"`
	EventID string `gorm:"size:255" json:"event_id"`
	Error   string `gorm:"type:text" json:"error"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
