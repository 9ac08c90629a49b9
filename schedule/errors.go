package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrStructure indicates the schedule shape is malformed: empty, jagged,
	// missing toss fields, or a toss addressing a hand that does not exist.
	ErrStructure = errors.New("schedule: invalid throws structure")
	// ErrBalance indicates the schedule is well-formed but some (beat, hand)
	// slot throws a different number of objects than it catches.
	ErrBalance = errors.New("schedule: invalid siteswap, throws do not balance")
)

// structureErrorf wraps ErrStructure with positional context.
func structureErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrStructure}, args...)...)
}
