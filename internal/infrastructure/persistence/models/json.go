package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONSlice stores a slice as a jsonb column. A SQL NULL scans to an empty
// slice, never to nil, so transformed records always carry a usable
// collection.
type JSONSlice[T any] []T

// Value implements driver.Valuer
func (s JSONSlice[T]) Value() (driver.Value, error) {
	if s == nil {
		s = JSONSlice[T]{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *JSONSlice[T]) Scan(value any) error {
	b, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*s = JSONSlice[T]{}
		return nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("scan json slice: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	*s = out
	return nil
}

// JSONMap stores a string-keyed map as a jsonb column, with the same
// NULL-to-empty behavior as JSONSlice.
type JSONMap map[string]string

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(value any) error {
	b, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		*m = JSONMap{}
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("scan json map: %w", err)
	}
	if out == nil {
		out = map[string]string{}
	}
	*m = out
	return nil
}

// JSONObject stores an arbitrary struct as a jsonb column
type JSONObject[T any] struct {
	Data T
}

// Value implements driver.Valuer
func (o JSONObject[T]) Value() (driver.Value, error) {
	return json.Marshal(o.Data)
}

// Scan implements sql.Scanner
func (o *JSONObject[T]) Scan(value any) error {
	b, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		var zero T
		o.Data = zero
		return nil
	}
	if err := json.Unmarshal(b, &o.Data); err != nil {
		return fmt.Errorf("scan json object: %w", err)
	}
	return nil
}

func jsonBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", value)
	}
}

// sliceOrEmpty maps a possibly-nil stored slice to the record-level default
func sliceOrEmpty[T any](s JSONSlice[T]) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// mapOrEmpty maps a possibly-nil stored map to the record-level default
func mapOrEmpty(m JSONMap) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
