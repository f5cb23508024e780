package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList is an ordered sequence of strings persisted as a JSONB document.
// Order is preserved across a store/load round-trip.
type StringList []string

// Value implements driver.Valuer. A nil list serializes as an empty array so
// the column never holds SQL NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

// Scan implements sql.Scanner. Malformed stored data decodes to an empty
// list, never an error.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(b, &items); err != nil || items == nil {
		*l = StringList{}
		return nil
	}

	*l = items

	return nil
}
