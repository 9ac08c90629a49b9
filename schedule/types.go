package schedule

import "fmt"

// Toss is one object thrown from hand From, landing in hand To after Value
// beats. A Toss with Value 0 throws nothing and only fills a slot.
type Toss struct {
	Value int `json:"value" yaml:"value"`
	From  int `json:"from" yaml:"from"`
	To    int `json:"to" yaml:"to"`
}

// String renders the toss as value(from→to).
func (t Toss) String() string {
	return fmt.Sprintf("%d(%d→%d)", t.Value, t.From, t.To)
}

// Release holds the tosses made by one hand at one beat. More than one toss
// is a multiplex.
type Release []Toss

// Action holds one Release per hand for a single beat.
type Action []Release

// Schedule holds one Action per beat. The pattern repeats with period
// len(Schedule).
type Schedule []Action

// Slot addresses one (beat, hand) position of a schedule.
type Slot struct {
	Beat int
	Hand int
}

// String renders the slot as (beat,hand).
func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d)", s.Beat, s.Hand)
}

// Placeholder returns the filler release for hand: a single zero toss that
// neither leaves nor changes hands.
func Placeholder(hand int) Release {
	return Release{{Value: 0, From: hand, To: hand}}
}

// IsPlaceholder reports whether r is exactly one toss of value 0.
func (r Release) IsPlaceholder() bool {
	return len(r) == 1 && r[0].Value == 0
}

// Active reports whether r throws at least one object.
func (r Release) Active() bool {
	for _, t := range r {
		if t.Value != 0 {
			return true
		}
	}

	return false
}

// Period returns the number of beats.
func (s Schedule) Period() int {
	return len(s)
}

// Hands returns the number of releases in the first action, or 0 for an
// empty schedule. ValidateStructure guarantees every action agrees.
func (s Schedule) Hands() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// GreatestValue returns the largest toss value in s, 0 when s throws nothing.
func (s Schedule) GreatestValue() int {
	greatest := 0
	for _, action := range s {
		for _, release := range action {
			for _, t := range release {
				if t.Value > greatest {
					greatest = t.Value
				}
			}
		}
	}

	return greatest
}

// ActiveSlots lists the slots whose release throws at least one object,
// in row-major (beat, hand) order.
func (s Schedule) ActiveSlots() []Slot {
	var slots []Slot
	for beat, action := range s {
		for hand, release := range action {
			if release.Active() {
				slots = append(slots, Slot{Beat: beat, Hand: hand})
			}
		}
	}

	return slots
}

// Clone returns a deep copy of s.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	for beat, action := range s {
		out[beat] = make(Action, len(action))
		for hand, release := range action {
			out[beat][hand] = append(Release(nil), release...)
		}
	}

	return out
}

// Equal reports whether s and other hold the same tosses in the same order.
func (s Schedule) Equal(other Schedule) bool {
	if len(s) != len(other) {
		return false
	}
	for beat := range s {
		if len(s[beat]) != len(other[beat]) {
			return false
		}
		for hand := range s[beat] {
			a, b := s[beat][hand], other[beat][hand]
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
		}
	}

	return true
}
