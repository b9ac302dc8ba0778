package validators

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// LooseString decodes any JSON value into text the way a form field would
// be read: strings as is, other truthy values as their JSON text, and
// false, null, 0 and "" as empty. Binding never fails on a field's type, so
// a "required" rule sees every field of the body.
type LooseString string

func (s *LooseString) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 {
		*s = ""
		return nil
	}

	switch raw[0] {
	case '"':
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*s = LooseString(v)
	case 'n', 'f':
		*s = ""
	case 't':
		*s = "true"
	case '{', '[':
		*s = LooseString(raw)
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err == nil && f == 0 {
			*s = ""
			return nil
		}
		*s = LooseString(raw)
	}
	return nil
}

func (s LooseString) String() string {
	return string(s)
}
