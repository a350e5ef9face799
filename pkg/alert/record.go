package alert

import (
	"fmt"
	"strings"
)

// DefaultGroup is used whenever a record or subscription names no group.
const DefaultGroup = "default-alert"

// Type is the alert severity.
type Type string

const (
	TypeSuccess Type = "Success"
	TypeError   Type = "Error"
	TypeInfo    Type = "Info"
	TypeWarning Type = "Warning"
)

// Valid reports whether t is one of the four known types.
func (t Type) Valid() bool {
	switch t {
	case TypeSuccess, TypeError, TypeInfo, TypeWarning:
		return true
	}
	return false
}

// ParseType accepts the canonical names case-insensitively plus "warn" and
// "danger" as aliases.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success":
		return TypeSuccess, nil
	case "error", "danger":
		return TypeError, nil
	case "info":
		return TypeInfo, nil
	case "warning", "warn":
		return TypeWarning, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Record is one event on the bus. Records travel by value, so a subscriber
// can modify its copy without affecting anyone else.
type Record struct {
	ID                   string `json:"id"`
	Type                 Type   `json:"type,omitempty"`
	Message              string `json:"message,omitempty"`
	AutoClose            bool   `json:"autoClose,omitempty"`
	KeepAfterRouteChange bool   `json:"keepAfterRouteChange,omitempty"`
	// Fade is set by views on the copy being dismissed, never by producers.
	Fade bool `json:"fade,omitempty"`
	// Origin tags records that arrived from another process through a relay.
	// Locally produced records leave it empty.
	Origin string `json:"origin,omitempty"`
}

// IsClear reports whether the record is a clear signal for its group.
func (r Record) IsClear() bool {
	return r.Message == ""
}

// Kind is the metrics/log label for the record: its type, or "clear".
func (r Record) Kind() string {
	if r.IsClear() {
		return "clear"
	}
	return string(r.Type)
}

// Option customises a record built by the convenience emitters.
type Option func(*Record)

// WithGroup targets a specific group instead of DefaultGroup.
func WithGroup(id string) Option {
	return func(r *Record) { r.ID = id }
}

// WithAutoClose makes views dismiss the alert after their auto-close delay.
func WithAutoClose() Option {
	return func(r *Record) { r.AutoClose = true }
}

// WithKeepAfterRouteChange lets the alert survive one clear signal.
func WithKeepAfterRouteChange() Option {
	return func(r *Record) { r.KeepAfterRouteChange = true }
}

func groupOrDefault(id string) string {
	if id == "" {
		return DefaultGroup
	}
	return id
}
