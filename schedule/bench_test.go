package schedule_test

import (
	"testing"

	"github.com/katalvlaran/siteswap/schedule"
)

// BenchmarkValidate_TwoHands measures Validate on a two-hand cascade with a
// period of 10,000 beats.
// Complexity: O(P×H).
func BenchmarkValidate_TwoHands(b *testing.B) {
	const period = 10000
	s := make(schedule.Schedule, period)
	for beat := range s {
		s[beat] = schedule.Action{
			{{Value: 3, From: 0, To: 1}},
			{{Value: 3, From: 1, To: 0}},
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := schedule.Validate(s); err != nil {
			b.Fatal(err)
		}
	}
}
