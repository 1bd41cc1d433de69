// Package search implements the exact-score negamax search over a
// position.Position: alpha-beta pruning, threat-driven early cutoffs
// and forced-reply handling, transposition-table consult/store, and
// the iterative-deepening null-window driver that extracts the root's
// game-theoretic score.
package search

import (
	"c4solver/internal/position"
	"c4solver/internal/transposition"
)

// table is the subset of *transposition.Table that negamax relies on.
// Tests substitute a no-op implementation to verify that the table
// only prunes search, never changes the result (see
// TestDisablingTheTableDoesNotChangeTheScore).
type table interface {
	Probe(hash uint64) (score int8, bound transposition.Bound, ok bool)
	Store(hash uint64, score int8, bound transposition.Bound)
}

// negamax searches pos for its exact score in [alpha, beta) from the
// side to move's perspective, returning that score and the number of
// positions expanded. pos is restored to its entry state before
// returning: every recursive call is wrapped in a MakeMove/UndoMove
// pair.
func negamax(pos *position.Position, alpha, beta int8, tt table) (int8, uint64) {
	hash := pos.Hash()
	if score, bound, ok := tt.Probe(hash); ok {
		switch bound {
		case transposition.Exact:
			return score, 0
		case transposition.Lower:
			if score > alpha {
				alpha = score
			}
		case transposition.Upper:
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			return alpha, 0
		}
	}
	alpha0 := alpha

	total := uint64(1)
	moves := pos.MovesPlayed()

	if moves == position.CellCount {
		return 0, total
	}

	cols := orderColumns(pos)

	for _, c := range cols {
		if pos.IsLegalMove(c) && pos.IsWinningMove(c) {
			return int8((position.CellCount + 1 - moves) / 2), total
		}
	}

	opponent := 1 - pos.Turn()
	threats := position.Threats(pos.Boards(), opponent)
	live := pos.LiveThreats(threats)

	if pos.IsLosingPosition(threats, live) {
		return int8((-position.CellCount + moves) / 2), total
	}

	maxScore := int8((position.CellCount - 1 - moves) / 2)
	if beta > maxScore {
		beta = maxScore
		if alpha >= beta {
			return beta, total
		}
	}

	if forced, ok := pos.MustPlayMove(live); ok {
		pos.MakeMove(forced)
		s, searched := negamax(pos, -beta, -alpha, tt)
		pos.UndoMove()
		total += searched
		alpha = -s
	} else {
		for _, c := range cols {
			if !pos.IsLegalMove(c) || pos.IsLosingMove(c, threats) {
				continue
			}
			pos.MakeMove(c)
			s, searched := negamax(pos, -beta, -alpha, tt)
			pos.UndoMove()
			s = -s
			total += searched

			if s > alpha {
				alpha = s
			}
			if alpha >= beta {
				break
			}
		}
	}

	var bound transposition.Bound
	switch {
	case alpha <= alpha0:
		bound = transposition.Upper
	case alpha >= beta:
		bound = transposition.Lower
	default:
		bound = transposition.Exact
	}
	tt.Store(hash, alpha, bound)

	return alpha, total
}
