package helpers

import (
	"encoding/json"
	"fmt"
)

// List-valued and object-valued record fields (hostel amenities, job
// responsibilities and qualifications, roommate hobbies, nominee interests)
// are stored as JSON text in a flat TEXT column. The contract is symmetric:
// MarshalList(v) written to the column must decode back to an identical
// value through UnmarshalList. An empty or NULL column decodes to the
// zero value, never to an error.

// MarshalList encodes a list or object valued field for a TEXT column.
func MarshalList(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode list field: %w", err)
	}
	return string(data), nil
}

// UnmarshalList decodes a TEXT column produced by MarshalList into dst.
// dst must be a pointer. An empty column leaves dst untouched.
func UnmarshalList(column string, dst interface{}) error {
	if column == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(column), dst); err != nil {
		return fmt.Errorf("failed to decode list field: %w", err)
	}
	return nil
}
