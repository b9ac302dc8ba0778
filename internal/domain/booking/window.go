package booking

import (
	"fmt"
	"time"
)

// AppointmentDuration is fixed; the request payload carries no duration.
const AppointmentDuration = time.Hour

var dateTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow reads date and clock as a wall-clock time in loc and returns the
// one-hour slot starting there.
func NewWindow(date, clock string, loc *time.Location) (Window, error) {
	raw := date + " " + clock

	for _, layout := range dateTimeLayouts {
		start, err := time.ParseInLocation(layout, raw, loc)
		if err != nil {
			continue
		}
		return Window{
			Start: start,
			End:   start.Add(AppointmentDuration),
		}, nil
	}

	return Window{}, fmt.Errorf("invalid date or time %q", raw)
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
