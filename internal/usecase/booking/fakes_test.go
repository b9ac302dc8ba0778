package booking

import (
	"context"
	"strconv"
	"sync"

	domain "github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
)

// fakeCalendar hands out sequential ids so repeated bookings are visible.
type fakeCalendar struct {
	mu     sync.Mutex
	err    error
	events []domain.CalendarEvent
	ids    []string
}

func (f *fakeCalendar) CreateEvent(_ context.Context, calendarID string, ev domain.CalendarEvent) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.events = append(f.events, ev)
	id := calendarID + "-evt-" + strconv.Itoa(len(f.events))
	f.ids = append(f.ids, id)
	return id, nil
}

type fakeSheet struct {
	mu   sync.Mutex
	err  error
	rows [][]any
	rng  string
	id   string
}

func (f *fakeSheet) AppendRow(_ context.Context, spreadsheetID, rng string, row []any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.id, f.rng = spreadsheetID, rng
	f.rows = append(f.rows, row)
	return nil
}

type fakeMailer struct {
	mu   sync.Mutex
	err  error
	sent []domain.Message
}

func (f *fakeMailer) Send(_ context.Context, msg domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}
