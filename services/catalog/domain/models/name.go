package models

import (
	"fmt"
	"strings"
)

// Name is the display name of a catalogue entry or client: product name,
// rate label or client name.
type Name string

const (
	minNameLength = 1
	maxNameLength = 255
)

// NewName trims s and enforces 1 <= len <= 255.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if len(s) < minNameLength {
		return "", fmt.Errorf("name must be at least %d character", minNameLength)
	}
	if len(s) > maxNameLength {
		return "", fmt.Errorf("name must not exceed %d characters", maxNameLength)
	}
	return Name(s), nil
}

func (n Name) String() string {
	return string(n)
}
