// Package siteswap checks and decomposes juggling patterns written as
// cyclic throw schedules.
//
// 🚀 What is in the box?
//
//	• schedule/ — Toss, Release, Action, Schedule types; structural and
//	              conservation validation; the (beat, hand) Grid
//	• orbit/    — orbit decomposition by explicit-stack DFS over the
//	              toss graph, plus Overlay to stitch orbits back together
//	• Pattern   — a validated schedule carrying its notation, the unit the
//	              rest of a juggling toolkit passes around
//
// ✨ Guarantees
//
//   - Pure functions over immutable input, no goroutines, no I/O.
//   - Sentinel errors: schedule.ErrStructure, schedule.ErrBalance,
//     orbit.ErrConflict; match them with errors.Is.
//   - Deterministic orbit order: row-major scan of (beat, hand).
//
// Quick ASCII example, the one-hand pattern 531:
//
//	beat:  0   1   2
//	toss:  5   3   1
//	       └───────┘      5 lands on beat 2, 1 lands back on beat 0
//	           ⟲          3 lands on itself
//
// splits into two orbits, 5·1 and ·3·.
//
// The cmd/siteswap tool validates and decomposes schedule documents from the
// command line.
package siteswap
