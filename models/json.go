package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"plumtrips-backend/onboarding"
)

// JSONMap stores a free-form form-state object in a jsonb column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *JSONMap) Scan(value any) error {
	return scanJSON(value, m)
}

// StringMap stores a flat normalized record in a jsonb column.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *StringMap) Scan(value any) error {
	return scanJSON(value, m)
}

// AttachmentList stores the submitted file manifest in a jsonb column.
type AttachmentList []onboarding.Attachment

func (l AttachmentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *AttachmentList) Scan(value any) error {
	return scanJSON(value, l)
}

func scanJSON(value any, dest any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported jsonb source type")
	}
}
