// Package focal owns the focal month of a multi-month view: the left-most
// displayed month from which every block and navigation step is computed.
package focal

import (
	"errors"
	"time"

	"tableflip.dev/almanac/pkg/timeutil"
)

var (
	// ErrNilSource is returned when a controlled controller is constructed
	// without an external value source.
	ErrNilSource = errors.New("controlled focal value requires a source")
	// ErrInvalidMonth is returned when a supplied focal value is not a usable
	// month.
	ErrInvalidMonth = errors.New("invalid focal month")
)

// Source supplies the externally owned focal month in controlled mode.
type Source func() time.Time

// ChangeFunc is notified with the new focal month on every change. Repeat
// notifications for an unchanged value are allowed.
type ChangeFunc func(time.Time)

// Controller reconciles an externally supplied focal month with an internal
// fallback. In controlled mode the external owner is authoritative: Get reads
// it verbatim and Set only notifies. In uncontrolled mode the controller
// keeps the value itself and notifies after each mutation.
type Controller struct {
	source   Source
	onChange ChangeFunc
	value    time.Time
}

// NewControlled builds a controller whose value lives with the caller.
func NewControlled(source Source, onChange ChangeFunc) (*Controller, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	return &Controller{source: source, onChange: onChange}, nil
}

// NewUncontrolled builds a controller that owns its value. A zero initial
// month seeds from the current date. A non-zero initial month must be valid.
func NewUncontrolled(initial time.Time, onChange ChangeFunc) (*Controller, error) {
	if initial.IsZero() {
		initial = time.Now()
	}
	if !timeutil.IsMonth(initial) {
		return nil, ErrInvalidMonth
	}
	return &Controller{
		onChange: onChange,
		value:    timeutil.Normalize(initial),
	}, nil
}

// Controlled reports whether an external owner holds the value.
func (c *Controller) Controlled() bool { return c.source != nil }

// Get returns the current focal month, normalized to its first day.
func (c *Controller) Get() time.Time {
	if c.source != nil {
		return timeutil.Normalize(c.source())
	}
	return c.value
}

// Set moves the focal month to next. In controlled mode the internal state is
// untouched and the external owner is notified so it can apply the change
// itself. In uncontrolled mode the value is stored and then reported.
func (c *Controller) Set(next time.Time) {
	next = timeutil.Normalize(next)
	if c.source == nil {
		c.value = next
	}
	if c.onChange != nil {
		c.onChange(next)
	}
}
