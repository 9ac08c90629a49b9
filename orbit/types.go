package orbit

import (
	"errors"

	"github.com/katalvlaran/siteswap/schedule"
)

// ErrConflict indicates traversal reached a slot already claimed by another
// orbit. A balanced schedule only produces it when a toss names a From hand
// other than the hand holding its release.
var ErrConflict = errors.New("orbit: slot claimed by two orbits")

// Orbit is one independent sub-pattern.
type Orbit struct {
	// Throws is the reduced schedule: same period and hands as the input,
	// with slots outside the orbit replaced by placeholders. When Decompose
	// short-circuits, Throws is the input schedule itself.
	Throws schedule.Schedule

	// Notation is passed through from the caller unchanged.
	Notation any

	// Slots lists the member slots in discovery order.
	Slots []schedule.Slot
}

// Option configures Decompose.
type Option func(*Options)

// Options holds Decompose settings.
type Options struct {
	// Validate runs schedule.Validate before decomposing.
	Validate bool
	// Rebuild always builds reduced schedules, even for zero and
	// single-orbit patterns.
	Rebuild bool
}

// DefaultOptions returns Options with validation off and shortcuts on.
func DefaultOptions() Options {
	return Options{
		Validate: false,
		Rebuild:  false,
	}
}

// WithValidation returns an Option that checks conservation before
// decomposing, turning an unbalanced input into schedule.ErrBalance instead
// of ErrConflict or a silently wrong partition.
func WithValidation() Option {
	return func(o *Options) {
		o.Validate = true
	}
}

// WithRebuild returns an Option that disables the zero-pattern and
// single-orbit shortcuts.
func WithRebuild() Option {
	return func(o *Options) {
		o.Rebuild = true
	}
}
