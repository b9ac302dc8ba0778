package validators

import (
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
)

// MissingFields reports which fields failed a "required" rule when err
// comes from binding a request. An empty body counts as every field
// missing. ok is false for any other kind of error, such as malformed JSON.
func MissingFields(err error) (fields []string, ok bool) {
	if errors.Is(err, io.EOF) {
		return nil, true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	for _, fe := range verrs {
		if fe.Tag() != "required" {
			return nil, false
		}
		fields = append(fields, fe.Field())
	}
	return fields, true
}
