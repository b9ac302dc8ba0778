package gworkspace

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/BruksfildServices01/inshape-booking/internal/domain/booking"
)

type CalendarClient struct {
	svc *calendar.Service
}

func NewCalendarClient(ctx context.Context, opts ...option.ClientOption) (*CalendarClient, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &CalendarClient{svc: svc}, nil
}

func (c *CalendarClient) CreateEvent(
	ctx context.Context,
	calendarID string,
	ev booking.CalendarEvent,
) (string, error) {

	created, err := c.svc.Events.Insert(calendarID, &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: ev.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: ev.TimeZone,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event into %s: %w", calendarID, err)
	}

	return created.Id, nil
}
