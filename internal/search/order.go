package search

import (
	"math/bits"
	"sort"

	"c4solver/internal/position"
)

// staticOrder ranks columns by distance from the centre column, centre
// first. It is the starting point for the dynamic comparator below and
// the fallback order when two columns create an equal number of
// threats.
var staticOrder = [position.Width]int{3, 2, 4, 1, 5, 0, 6}

// orderColumns ranks the columns of pos by how many new threats the
// side to move would own after playing there, most threats first,
// ties broken by staticOrder. The parent's threat count for each
// candidate is cheap: it is just Threats evaluated on a hypothetical
// one-piece board, not a full move/undo.
func orderColumns(pos *position.Position) [position.Width]int {
	boards := pos.Boards()
	turn := pos.Turn()

	threatCount := func(col int) int {
		hypothetical := boards
		hypothetical[turn] |= pos.ColumnHeightBit(col)
		return bits.OnesCount64(position.Threats(hypothetical, turn))
	}

	counts := make(map[int]int, position.Width)
	for _, c := range staticOrder {
		counts[c] = threatCount(c)
	}

	cols := staticOrder
	sort.SliceStable(cols[:], func(i, j int) bool {
		return counts[cols[i]] > counts[cols[j]]
	})
	return cols
}
