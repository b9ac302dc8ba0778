package booking

import "strings"

func EventSummary(r Request) string {
	return r.Service + " - " + r.Name
}

func EventDescription(r Request) string {
	var b strings.Builder
	b.WriteString("Phone: ")
	b.WriteString(r.Phone)
	if r.HasEmail() {
		b.WriteString("\nEmail: ")
		b.WriteString(r.Email)
	}
	return b.String()
}

func NewCalendarEvent(r Request, w Window, tz string) CalendarEvent {
	return CalendarEvent{
		Summary:     EventSummary(r),
		Description: EventDescription(r),
		Start:       w.Start,
		End:         w.End,
		TimeZone:    tz,
	}
}
