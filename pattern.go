package siteswap

import (
	"github.com/katalvlaran/siteswap/orbit"
	"github.com/katalvlaran/siteswap/schedule"
)

// Pattern is a validated throw schedule together with the notation it was
// built from. The notation is opaque here and only passed along.
type Pattern struct {
	throws        schedule.Schedule
	notation      any
	greatestValue int
}

// New validates throws and wraps them with notation.
// Returns an error matching schedule.ErrStructure or schedule.ErrBalance.
func New(throws schedule.Schedule, notation any) (*Pattern, error) {
	if err := schedule.Validate(throws); err != nil {
		return nil, err
	}

	return &Pattern{
		throws:        throws,
		notation:      notation,
		greatestValue: throws.GreatestValue(),
	}, nil
}

// Throws returns the underlying schedule. Callers must not modify it.
func (p *Pattern) Throws() schedule.Schedule { return p.throws }

// Notation returns the value the pattern was built with.
func (p *Pattern) Notation() any { return p.notation }

// GreatestValue returns the largest toss value.
func (p *Pattern) GreatestValue() int { return p.greatestValue }

// Period returns the number of beats.
func (p *Pattern) Period() int { return p.throws.Period() }

// Hands returns the number of hands.
func (p *Pattern) Hands() int { return p.throws.Hands() }

// Orbits decomposes p into one Pattern per orbit, in discovery order.
// When the decomposition short-circuits (zero pattern or a single orbit),
// the only element is p itself.
func (p *Pattern) Orbits(opts ...orbit.Option) ([]*Pattern, error) {
	orbits, err := orbit.Decompose(p.throws, p.notation, opts...)
	if err != nil {
		return nil, err
	}
	if len(orbits) == 1 && sameBacking(orbits[0].Throws, p.throws) {
		return []*Pattern{p}, nil
	}

	out := make([]*Pattern, len(orbits))
	for k, o := range orbits {
		sub, err := New(o.Throws, o.Notation)
		if err != nil {
			return nil, err
		}
		out[k] = sub
	}

	return out, nil
}

// sameBacking reports whether a and b are the same schedule value, not just
// equal ones.
func sameBacking(a, b schedule.Schedule) bool {
	return len(a) > 0 && len(a) == len(b) && &a[0] == &b[0]
}
