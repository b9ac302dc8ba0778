package timezone

import (
	"errors"
	"time"
)

var ErrEmptyName = errors.New("timezone: empty name")

// Load resolves an IANA zone name. Unlike time.LoadLocation, an empty name
// is an error instead of UTC.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return time.LoadLocation(name)
}

func IsValid(name string) bool {
	_, err := Load(name)
	return err == nil
}
