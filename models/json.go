package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSONB-backed string array column.
type StringList []string

// Value implements driver.Valuer for INSERT/UPDATE.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for SELECT.
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// AvailabilityList is a JSONB-backed list of weekly availability windows.
type AvailabilityList []Availability

func (a AvailabilityList) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

func (a *AvailabilityList) Scan(value interface{}) error {
	return scanJSON(value, a)
}

// SocialMedia holds optional social handles, stored as a JSONB object.
type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Website   string `json:"website,omitempty"`
}

func (s SocialMedia) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SocialMedia) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("not a []byte: %T", value)
	}
}
