package orbit

import (
	"fmt"

	"github.com/katalvlaran/siteswap/schedule"
)

// unassigned marks a slot no orbit has claimed yet. Orbit k is marked k+1.
const unassigned = 0

// walker holds the marker grid and worklist shared by all seeds of one call.
type walker struct {
	throws schedule.Schedule
	marks  *schedule.Grid
	stack  []int
}

// Decompose partitions the active slots of s into orbits and returns one
// Orbit per component, in the order their seed slot was first scanned.
// notation is copied into every result untouched.
//
// Behavior:
//  1. ValidateStructure (and Validate with WithValidation).
//  2. Zero pattern: return s itself as the only orbit.
//  3. Scan slots row-major; each unassigned active slot seeds a DFS along
//     (b, h) → ((b+v) mod period, to) for every nonzero toss.
//  4. Single orbit: return s itself.
//  5. Otherwise build one reduced schedule per orbit; foreign slots become
//     schedule.Placeholder(hand).
//
// s is never modified and reduced schedules share no storage with it.
// Returns ErrConflict when traversal crosses into another orbit.
func Decompose(s schedule.Schedule, notation any, opts ...Option) ([]Orbit, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if o.Validate {
		if err := schedule.Validate(s); err != nil {
			return nil, err
		}
	} else if err := schedule.ValidateStructure(s); err != nil {
		return nil, err
	}

	if !o.Rebuild && s.GreatestValue() == 0 {
		return []Orbit{{Throws: s, Notation: notation}}, nil
	}

	marks := schedule.NewGrid(s.Period(), s.Hands())
	w := &walker{
		throws: s,
		marks:  marks,
		stack:  make([]int, 0, min(marks.Len(), 1024)),
	}

	var members [][]schedule.Slot
	for beat, action := range s {
		for hand, release := range action {
			if w.marks.At(beat, hand) != unassigned || !release.Active() {
				continue
			}
			slots, err := w.mark(schedule.Slot{Beat: beat, Hand: hand}, len(members)+1)
			if err != nil {
				return nil, err
			}
			members = append(members, slots)
		}
	}

	if len(members) == 0 {
		return []Orbit{{Throws: s.Clone(), Notation: notation}}, nil
	}
	if !o.Rebuild && len(members) == 1 {
		return []Orbit{{Throws: s, Notation: notation, Slots: members[0]}}, nil
	}

	orbits := make([]Orbit, len(members))
	for k, slots := range members {
		orbits[k] = Orbit{
			Throws:   w.reduce(k + 1),
			Notation: notation,
			Slots:    slots,
		}
	}

	return orbits, nil
}

// mark claims every slot reachable from seed for orbit id and returns them
// in discovery order.
func (w *walker) mark(seed schedule.Slot, id int) ([]schedule.Slot, error) {
	period := w.throws.Period()

	w.marks.Set(seed.Beat, seed.Hand, id)
	slots := []schedule.Slot{seed}
	w.stack = append(w.stack[:0], w.marks.Index(seed.Beat, seed.Hand))

	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		from := w.marks.Slot(w.stack[top])
		w.stack = w.stack[:top]

		for _, t := range w.throws[from.Beat][from.Hand] {
			if t.Value == 0 {
				continue
			}
			to := schedule.Slot{Beat: (from.Beat + t.Value) % period, Hand: t.To}

			switch mark := w.marks.At(to.Beat, to.Hand); mark {
			case id:
				continue
			case unassigned:
				w.marks.Set(to.Beat, to.Hand, id)
				slots = append(slots, to)
				w.stack = append(w.stack, w.marks.Index(to.Beat, to.Hand))
			default:
				return nil, fmt.Errorf("%w: %s reached from %s belongs to orbit %d, not %d",
					ErrConflict, to, from, mark-1, id-1)
			}
		}
	}

	return slots, nil
}

// reduce copies the releases marked id and fills every other slot with a
// placeholder.
func (w *walker) reduce(id int) schedule.Schedule {
	out := make(schedule.Schedule, len(w.throws))
	for beat, action := range w.throws {
		out[beat] = make(schedule.Action, len(action))
		for hand, release := range action {
			if w.marks.At(beat, hand) == id {
				out[beat][hand] = append(schedule.Release(nil), release...)
			} else {
				out[beat][hand] = schedule.Placeholder(hand)
			}
		}
	}

	return out
}

// Overlay rebuilds a single schedule from orbits: each slot takes the release
// of the orbit listing it in Slots, every other slot a placeholder. The result
// takes the period and hand count of orbits[0]; slots outside that shape are
// ignored. Returns nil when orbits is empty.
func Overlay(orbits []Orbit) schedule.Schedule {
	if len(orbits) == 0 {
		return nil
	}
	period, hands := orbits[0].Throws.Period(), orbits[0].Throws.Hands()

	owner := schedule.NewGrid(period, hands)
	for k, o := range orbits {
		for _, slot := range o.Slots {
			if !owner.InBounds(slot.Beat, slot.Hand) {
				continue
			}
			owner.Set(slot.Beat, slot.Hand, k+1)
		}
	}

	out := make(schedule.Schedule, period)
	for beat := range out {
		out[beat] = make(schedule.Action, hands)
		for hand := range out[beat] {
			if k := owner.At(beat, hand); k != unassigned {
				out[beat][hand] = append(schedule.Release(nil), orbits[k-1].Throws[beat][hand]...)
			} else {
				out[beat][hand] = schedule.Placeholder(hand)
			}
		}
	}

	return out
}
