// Package solver exposes the library's single public entry point: the
// exact game-theoretic score of a Connect Four position, assuming
// optimal play by both sides. Everything else -- the bitboard
// representation, threat analysis, the transposition table, and the
// negamax search -- is an internal implementation detail reachable
// only through this package and internal/bench's benchmark harness.
package solver

import (
	"c4solver/internal/position"
	"c4solver/internal/search"
)

// Position re-exports position.Position so callers need only import
// this package to both build and score a position.
type Position = position.Position

// New returns the canonical empty starting position.
func New() *Position {
	return position.New()
}

// Score returns the exact game-theoretic score of pos from the
// perspective of the side to move, assuming optimal play, together
// with the number of positions the search expanded to find it.
//
// pos must have at most 41 moves played. A position whose last move
// already completed a four-in-a-row is scored as a loss for the side
// to move without being searched. Score borrows pos for the duration of the call and restores it
// exactly before returning.
func Score(pos *Position) (int8, uint64) {
	return search.Solve(pos, 0)
}

// ScoreWithTableSize is Score with an explicit transposition-table
// capacity override (a non-positive value falls back to Score's
// default). Exposed for callers such as cmd/c4solve that offer a
// --tt-size flag.
func ScoreWithTableSize(pos *Position, ttCapacity int) (int8, uint64) {
	return search.Solve(pos, ttCapacity)
}
