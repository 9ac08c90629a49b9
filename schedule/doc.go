// Package schedule models a siteswap throw schedule and checks that it is
// internally consistent.
//
// What:
//
//   - Toss, Release, Action and Schedule describe a cyclic pattern: one Action
//     per beat, one Release per hand, one Toss per object thrown.
//   - Grid is a period × hands integer table addressed by (beat, hand), shared
//     by the balance check here and the orbit marker in package orbit.
//   - ValidateStructure checks the shape: non-empty, rectangular, tosses
//     pointing at existing hands.
//   - Balance and Validate check conservation: every object thrown from a
//     (beat, hand) slot lands in exactly one slot, wrapping around the period.
//
// Why:
//
//   - Shape errors and physics errors need different fixes, so they are
//     reported with different sentinels.
//   - The structural pass guarantees the balance grid is always indexed in
//     bounds.
//
// Complexity:
//
//   - ValidateStructure: O(P×H×R), Memory: O(1)
//   - Balance/Validate:  O(P×H×R), Memory: O(P×H)
//     (P = period, H = hands, R = tosses per release)
//
// Errors:
//
//   - ErrStructure: malformed shape (empty, jagged, bad hand, negative value).
//   - ErrBalance:   well-formed but throws and landings do not cancel out.
package schedule
