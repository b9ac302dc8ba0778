package booking

import (
	"context"
	"time"
)

// CalendarEvent is the calendar-provider-neutral shape of a booking.
type CalendarEvent struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
}

// Message is one outgoing HTML email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// -------- Collaborators --------

type Calendar interface {
	CreateEvent(
		ctx context.Context,
		calendarID string,
		ev CalendarEvent,
	) (string, error)
}

type Sheet interface {
	AppendRow(
		ctx context.Context,
		spreadsheetID string,
		rng string,
		row []any,
	) error
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
