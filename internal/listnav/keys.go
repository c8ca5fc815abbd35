package listnav

import (
	"fmt"
	"strings"
)

// Key identifiers understood by the dispatcher.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEnter      = "Enter"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// Axis selects which arrow-key pair drives movement.
type Axis string

// Axis values.
const (
	AxisVertical   Axis = "vertical"
	AxisHorizontal Axis = "horizontal"
	AxisBoth       Axis = "both"
)

var validAxes = []Axis{AxisVertical, AxisHorizontal, AxisBoth}

// ParseAxis validates and normalizes an axis string. Empty means vertical.
func ParseAxis(s string) (Axis, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return AxisVertical, nil
	}
	for _, a := range validAxes {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: vertical, horizontal, both)", ErrInvalidAxis, s)
}

// vertical reports whether ArrowUp/ArrowDown are bound.
func (a Axis) vertical() bool { return a == AxisVertical || a == AxisBoth }

// horizontal reports whether ArrowLeft/ArrowRight are bound.
func (a Axis) horizontal() bool { return a == AxisHorizontal || a == AxisBoth }

// direction classifies a movement key under axis a: -1 for decrement, +1 for
// increment, 0 when the key is not a movement key on a bound axis.
func (a Axis) direction(key string) int {
	switch key {
	case KeyArrowUp:
		if a.vertical() {
			return -1
		}
	case KeyArrowDown:
		if a.vertical() {
			return 1
		}
	case KeyArrowLeft:
		if a.horizontal() {
			return -1
		}
	case KeyArrowRight:
		if a.horizontal() {
			return 1
		}
	}
	return 0
}

// typeaheadChar returns the case-folded character for a type-ahead key.
// Only single ASCII letters, digits, '-' and '_' qualify.
func typeaheadChar(key string) (byte, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	switch {
	case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
		return c, true
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A'), true
	}
	return 0, false
}
