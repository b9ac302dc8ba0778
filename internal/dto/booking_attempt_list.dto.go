package dto

import "time"

type BookingAttemptListDTO struct {
	ID        uint      `json:"id"`
	RequestID string    `json:"request_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Service   string    `json:"service"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Outcome   string    `json:"outcome"`
	Stage     string    `json:"stage,omitempty"`
	EventID   string    `json:"event_id,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
