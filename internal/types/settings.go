// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	SettingMaintenanceMode    = "maintenance_mode"
	SettingMaintenanceMessage = "maintenance_message"
)

// Settings is the free-form village configuration, stored as JSONB
type Settings map[string]any

// MaintenanceMode reports whether the maintenance flag is set to a truthy value
func (s Settings) MaintenanceMode() bool {
	v, ok := s[SettingMaintenanceMode]
	if !ok {
		return false
	}

	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return b
		}
		return t != "" && t != "0"
	default:
		return false
	}
}

func (s Settings) MaintenanceMessage() string {
	if msg, ok := s[SettingMaintenanceMessage].(string); ok {
		return strings.TrimSpace(msg)
	}
	return ""
}

// Value implements driver.Valuer
func (s Settings) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *Settings) Scan(src any) error {
	var data []byte

	switch t := src.(type) {
	case nil:
		*s = Settings{}
		return nil
	case []byte:
		data = t
	case string:
		data = []byte(t)
	default:
		return fmt.Errorf("unsupported settings type %T", src)
	}

	out := Settings{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out); err != nil {
			return fmt.Errorf("failed to decode settings: %w", err)
		}
	}

	*s = out
	return nil
}
