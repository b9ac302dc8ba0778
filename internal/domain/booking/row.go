package booking

import "time"

// SheetSchemaVersion identifies the column layout below. Version 1 rows,
// written by the first revisions, have six columns:
// name, phone, service, date, time, timestamp.
const SheetSchemaVersion = 2

// SheetColumns is the header of the booking sheet, in write order.
var SheetColumns = []string{
	"Name",
	"Phone",
	"Email",
	"Service",
	"Date",
	"Time",
	"Status",
	"Source",
	"Timestamp",
}

// SheetRow lays out one booking in SheetColumns order.
func SheetRow(r Request, source string, now time.Time) []any {
	email := ""
	if r.HasEmail() {
		email = r.Email
	}

	values := map[string]any{
		"Name":      r.Name,
		"Phone":     r.Phone,
		"Email":     email,
		"Service":   r.Service,
		"Date":      r.Date,
		"Time":      r.Time,
		"Status":    StatusBooked,
		"Source":    source,
		"Timestamp": now.UTC().Format(time.RFC3339),
	}

	row := make([]any, len(SheetColumns))
	for i, col := range SheetColumns {
		row[i] = values[col]
	}
	return row
}
