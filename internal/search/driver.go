package search

import (
	"c4solver/internal/position"
	"c4solver/internal/transposition"
)

// Solve returns the exact game-theoretic score of pos from the side to
// move's perspective, along with the number of positions expanded
// across every probe. It narrows the achievable score interval with a
// sequence of null-window negamax probes (an MTD-f-style driver),
// sharing one transposition table across the whole sequence so later
// probes reuse earlier work. The table is allocated fresh per call and
// discarded when Solve returns. A position in which the side that just
// moved already has a four-in-a-row is not searched: it is scored as
// that player's win, negated, with zero positions expanded. A
// non-positive ttCapacity falls back to transposition.DefaultCapacity.
func Solve(pos *position.Position, ttCapacity int) (int8, uint64) {
	moves := pos.MovesPlayed()

	if opp := pos.Boards()[1-pos.Turn()]; opp&(opp<<1)&(opp<<2)&(opp<<3) != 0 ||
		opp&(opp<<7)&(opp<<14)&(opp<<21) != 0 ||
		opp&(opp<<6)&(opp<<12)&(opp<<18) != 0 ||
		opp&(opp<<8)&(opp<<16)&(opp<<24) != 0 {
		return int8(-((position.CellCount + 2 - moves) / 2)), 0
	}

	min := int8(-((position.CellCount - moves) / 2))
	max := int8((position.CellCount + 1 - moves) / 2)

	tt := transposition.New(ttCapacity)
	var total uint64

	for min < max {
		med := min + (max-min)/2
		if med <= 0 && min/2 < med {
			med = min / 2
		} else if med >= 0 && max/2 > med {
			med = max / 2
		}

		score, searched := negamax(pos, med, med+1, tt)
		total += searched

		if score <= med {
			max = score
		} else {
			min = score
		}
	}

	return min, total
}
