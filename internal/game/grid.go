package game

import (
	"fmt"
	"strings"
	"sync"
)

// Grid holds, per guess position, the relative weight of every digit.
// It is an array so assignment copies it; the seed is never shared mutably.
type Grid [GuessLength][TotalDigits]int

// seedGrid is built once per process. Construction is pure, so a second
// build would produce the same value.
var seedGrid = sync.OnceValue(func() Grid {
	var g Grid
	first := TotalProbability / (TotalDigits - 1)
	other := TotalProbability / TotalDigits

	for ri := range g {
		for di := range g[ri] {
			if ri == 0 {
				g[ri][di] = first
			} else {
				g[ri][di] = other
			}
		}
	}
	g[0][0] = 0 // no leading zero
	return g
})

// SeedGrid returns the initial, uniform likelihood grid.
func SeedGrid() Grid {
	return seedGrid()
}

// SlotCount is the number of digits with non-zero weight in row ri.
func (g *Grid) SlotCount(ri int) int {
	n := 0
	for _, w := range g[ri] {
		if w != 0 {
			n++
		}
	}
	return n
}

// Consume zeroes digit d in every row.
func (g *Grid) Consume(d int) {
	for ri := range g {
		g[ri][d] = 0
	}
}

func (g Grid) String() string {
	var b strings.Builder
	for ri, row := range g {
		fmt.Fprintf(&b, "%d:", ri)
		for _, w := range row {
			fmt.Fprintf(&b, " %4d", w)
		}
		if ri < len(g)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
