// Package jsonutil provides shared helpers for the JSON payloads exchanged
// with the kiosk backend and stored by the offline store.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// MarshalWithContext marshals v and wraps any error with context.
func MarshalWithContext(v interface{}, context string) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	return b, nil
}

// UnmarshalArrayAllowEmpty unmarshals a JSON array. A JSON null or empty body
// yields an empty, non-nil slice.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	entries := []T{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return entries, nil
	}
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// ErrorDetail extracts the human-readable "detail" field from an error body.
// Falls back to the trimmed body text when it is not a JSON object with a
// string detail.
func ErrorDetail(body []byte) string {
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err == nil {
		if d := GetString(m, "detail"); d != "" {
			return d
		}
	}
	return strings.TrimSpace(string(body))
}
