package listnav

import "errors"

// Sentinel errors returned by New and ParseAxis.
var (
	ErrNoOnEnter   = errors.New("listnav: OnEnter callback is required")
	ErrInvalidAxis = errors.New("listnav: invalid axis")
)
