package schedule

import "fmt"

// Validate checks s for structural well-formedness and then for conservation
// of thrown objects across the whole period.
//
// Steps:
//  1. ValidateStructure; a malformed schedule never reaches step 2.
//  2. Balance; any nonzero cell fails with ErrBalance.
//
// Returns nil, or an error matching ErrStructure or ErrBalance via errors.Is.
// Complexity: O(P×H×R) time, O(P×H) memory.
func Validate(s Schedule) error {
	if err := ValidateStructure(s); err != nil {
		return err
	}
	_, err := Balance(s)

	return err
}

// ValidateStructure checks the shape of s:
//   - s holds at least one action;
//   - every action holds the same, non-zero number of releases;
//   - every toss has a non-negative value and From/To addressing a hand of
//     its action.
//
// Returns an error matching ErrStructure at the first violation, scanning
// beats, then hands, then tosses.
// Complexity: O(P×H×R), allocates nothing on success.
func ValidateStructure(s Schedule) error {
	if len(s) == 0 {
		return structureErrorf("schedule has no beats")
	}
	hands := len(s[0])
	if hands == 0 {
		return structureErrorf("beat 0 has no hands")
	}

	for beat, action := range s {
		if len(action) != hands {
			return structureErrorf("beat %d has %d hands, want %d", beat, len(action), hands)
		}
		for hand, release := range action {
			for i, t := range release {
				switch {
				case t.Value < 0:
					return structureErrorf("beat %d hand %d toss %d: negative value %d", beat, hand, i, t.Value)
				case t.From < 0 || t.From >= hands:
					return structureErrorf("beat %d hand %d toss %d: from hand %d out of range [0,%d)", beat, hand, i, t.From, hands)
				case t.To < 0 || t.To >= hands:
					return structureErrorf("beat %d hand %d toss %d: to hand %d out of range [0,%d)", beat, hand, i, t.To, hands)
				}
			}
		}
	}

	return nil
}

// Balance builds the conservation grid of s: each nonzero toss at beat b adds
// one at (b, From) and subtracts one at ((b+Value) mod period, To). Zero tosses
// carry no object and are skipped, whatever their hands. A consistent schedule
// nets to zero in every cell.
//
// s must already pass ValidateStructure. The grid is returned even when the
// error is ErrBalance so callers can report the offending cells.
// Complexity: O(P×H×R) time, O(P×H) memory.
func Balance(s Schedule) (*Grid, error) {
	period := s.Period()
	grid := NewGrid(period, s.Hands())

	for beat, action := range s {
		for _, release := range action {
			for _, t := range release {
				if t.Value == 0 {
					continue
				}
				grid.Add(beat, t.From, 1)
				grid.Add((beat+t.Value)%period, t.To, -1)
			}
		}
	}

	if off := grid.NonZero(); len(off) > 0 {
		first := off[0]
		return grid, fmt.Errorf("%w: slot %s off by %d (%d unbalanced slots)",
			ErrBalance, first, grid.At(first.Beat, first.Hand), len(off))
	}

	return grid, nil
}
