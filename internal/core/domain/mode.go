package domain

import "fmt"

// Mode selects what a whitelist run does.
type Mode string

// Available modes.
const (
	// ModeAdd adds every active store origin.
	ModeAdd Mode = "add"

	// ModeRemove removes every allowed origin that belongs to an active store.
	ModeRemove Mode = "remove"

	// ModeList prints the allowed origins.
	ModeList Mode = "list"
)

// AllModes returns the modes in display order.
func AllModes() []Mode {
	return []Mode{ModeAdd, ModeRemove, ModeList}
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// IsValid returns true if the mode is recognised.
func (m Mode) IsValid() bool {
	switch m {
	case ModeAdd, ModeRemove, ModeList:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m Mode) String() string {
	return string(m)
}
