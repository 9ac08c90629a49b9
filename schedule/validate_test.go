package schedule_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/siteswap/schedule"
)

// oneHand builds a single-hand schedule where beat i throws values[i].
func oneHand(values ...int) schedule.Schedule {
	s := make(schedule.Schedule, len(values))
	for i, v := range values {
		s[i] = schedule.Action{{{Value: v, From: 0, To: 0}}}
	}

	return s
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    schedule.Schedule
	}{
		{"cascade 3", oneHand(3)},
		{"period-1 value 2", oneHand(2)},
		{"531", oneHand(5, 3, 1)},
		{"441", oneHand(4, 4, 1)},
		{"fountain 40", oneHand(4, 0)},
		{"zero", oneHand(0)},
		{"two hands crossing", schedule.Schedule{
			{{{Value: 1, From: 0, To: 1}}, {{Value: 1, From: 1, To: 0}}},
		}},
		{"multiplex [31][31]", schedule.Schedule{
			{{{Value: 3, From: 0, To: 0}, {Value: 1, From: 0, To: 0}}},
			{{{Value: 3, From: 0, To: 0}, {Value: 1, From: 0, To: 0}}},
		}},
		{"empty release beside thrower", schedule.Schedule{
			{{{Value: 1, From: 0, To: 0}}, {}},
		}},
		{"zero toss between hands carries nothing", schedule.Schedule{
			{{{Value: 1, From: 0, To: 0}}, {{Value: 0, From: 1, To: 0}}},
		}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, schedule.Validate(tc.s))
			// validation is idempotent
			require.NoError(t, schedule.Validate(tc.s))
		})
	}
}

func TestValidate_Structure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    schedule.Schedule
	}{
		{"nil", nil},
		{"empty", schedule.Schedule{}},
		{"no hands", schedule.Schedule{{}}},
		{"jagged", schedule.Schedule{
			{{{Value: 2, From: 0, To: 0}}},
			{{{Value: 2, From: 0, To: 0}}, {}},
		}},
		{"from out of range", schedule.Schedule{{{{Value: 3, From: 1, To: 0}}}}},
		{"to out of range", schedule.Schedule{{{{Value: 3, From: 0, To: 1}}}}},
		{"negative hand", schedule.Schedule{{{{Value: 3, From: -1, To: 0}}}}},
		{"negative value", schedule.Schedule{{{{Value: -3, From: 0, To: 0}}}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := schedule.Validate(tc.s)
			require.ErrorIs(t, err, schedule.ErrStructure)
			assert.NotErrorIs(t, err, schedule.ErrBalance)
			// same kind on every call
			require.ErrorIs(t, schedule.Validate(tc.s), schedule.ErrStructure)
		})
	}
}

func TestValidate_Balance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    schedule.Schedule
	}{
		{"one hand throws to empty second hand", schedule.Schedule{
			{{{Value: 1, From: 0, To: 1}}, {}},
		}},
		{"54", oneHand(5, 4)},
		{"collision 21", oneHand(2, 1)},
		{"hand throws twice to a slot catching once", schedule.Schedule{
			{{{Value: 2, From: 0, To: 0}}},
			{{{Value: 1, From: 0, To: 0}}},
		}},
		// hand 2 catches two objects; its zero tosses must not pay them back
		{"zero tosses cannot offset a double catch", schedule.Schedule{
			{
				{{Value: 1, From: 0, To: 2}},
				{{Value: 1, From: 1, To: 2}},
				{{Value: 0, From: 2, To: 0}, {Value: 0, From: 2, To: 1}},
			},
		}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := schedule.Validate(tc.s)
			require.ErrorIs(t, err, schedule.ErrBalance)
			assert.False(t, errors.Is(err, schedule.ErrStructure))
		})
	}
}

// TestValidate_StructureShortCircuits ensures a jagged schedule whose tosses
// would index past the balance grid is rejected before balancing.
func TestValidate_StructureShortCircuits(t *testing.T) {
	t.Parallel()

	s := schedule.Schedule{
		{{{Value: 1, From: 0, To: 1}}, {{Value: 1, From: 1, To: 0}}},
		{{{Value: 1, From: 0, To: 1}}},
	}
	require.NotPanics(t, func() {
		require.ErrorIs(t, schedule.Validate(s), schedule.ErrStructure)
	})
}

func TestBalance_Grid(t *testing.T) {
	t.Parallel()

	grid, err := schedule.Balance(oneHand(5, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {0}, {0}}, grid.Rows())

	// 2,1: beat 0 lands on beat 0; beat 1 lands on beat 0 too.
	grid, err = schedule.Balance(oneHand(2, 1))
	require.ErrorIs(t, err, schedule.ErrBalance)
	require.NotNil(t, grid)
	assert.Equal(t, [][]int{{-1}, {1}}, grid.Rows())
	assert.Equal(t, []schedule.Slot{{Beat: 0, Hand: 0}, {Beat: 1, Hand: 0}}, grid.NonZero())
	assert.Contains(t, err.Error(), "(0,0) off by -1")
}

// TestBalance_Conservation checks that per-hand departures equal per-hand
// arrivals over the period for valid schedules.
func TestBalance_Conservation(t *testing.T) {
	t.Parallel()

	valid := []schedule.Schedule{
		oneHand(5, 3, 1),
		oneHand(7, 5, 6, 2),
		schedule.Schedule{
			{{{Value: 3, From: 0, To: 1}}, {{Value: 1, From: 1, To: 0}}},
			{{{Value: 1, From: 0, To: 0}}, {{Value: 3, From: 1, To: 1}}},
		},
	}

	for _, s := range valid {
		require.NoError(t, schedule.Validate(s))
		out := make([]int, s.Hands())
		in := make([]int, s.Hands())
		for _, action := range s {
			for _, release := range action {
				for _, toss := range release {
					out[toss.From]++
					in[toss.To]++
				}
			}
		}
		assert.Equal(t, out, in)
	}
}
