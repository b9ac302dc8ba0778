package booking

import "strings"

// Request is a booking as submitted by the customer. Email is optional and
// never validated; an empty value means the customer did not give one.
type Request struct {
	Name    string
	Phone   string
	Email   string
	Service string
	Date    string // YYYY-MM-DD
	Time    string // HH:mm
}

func (r Request) HasEmail() bool {
	return strings.TrimSpace(r.Email) != ""
}

// Result is what a successful booking hands back to the caller.
type Result struct {
	EventID string
}
