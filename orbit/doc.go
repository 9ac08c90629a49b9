// Package orbit splits a valid siteswap schedule into its orbits: maximal
// sets of (beat, hand) slots that pass objects only among themselves.
//
// What:
//
//   - Each slot is a vertex; each nonzero toss is a directed edge from its
//     slot to the slot it lands in, wrapping around the period.
//   - Decompose labels connected slots with an explicit-stack DFS, scanning
//     seeds in row-major (beat, hand) order, and rebuilds one reduced
//     schedule per orbit where every foreign slot becomes a placeholder.
//   - Overlay stitches orbits back into one schedule.
//
// Why:
//
//   - Orbits are the independently juggleable sub-patterns of a pattern.
//   - Conservation makes every edge lie on a cycle, so reachability from a
//     seed closes exactly over its orbit.
//
// Shortcuts:
//
//   - A pattern that throws nothing, or forms a single orbit, comes back as
//     the input schedule itself. WithRebuild disables both.
//
// Complexity:
//
//   - Decompose: O(P×H×R + K×P×H), Memory: O(K×P×H)
//     (P = period, H = hands, R = tosses per release, K = orbits)
//
// Errors:
//
//   - schedule.ErrStructure: malformed input shape (always checked).
//   - schedule.ErrBalance:   only with WithValidation.
//   - ErrConflict:           a slot is reachable from two orbits. Balanced
//     schedules whose tosses leave from the hand holding them never do this.
package orbit
