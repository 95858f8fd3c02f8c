package game

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
)

// Generator draws guesses from a likelihood grid, filling the most contended
// positions first.
type Generator struct {
	seed Grid
	rnd  *rand.Rand
	log  *slog.Logger
}

func NewGenerator(seed Grid, rnd *rand.Rand, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{seed: seed, rnd: rnd, log: log}
}

// Generate draws a guess from the seed grid.
func (g *Generator) Generate() (int, error) {
	return g.generate(g.seed, 0)
}

// GenerateFrom draws a guess from grid instead of the seed.
func (g *Generator) GenerateFrom(grid Grid) (int, error) {
	return g.generate(grid, 0)
}

type rowCost struct {
	row  int
	cost float64
}

// generate runs one pass. pass counts refinement passes; there is only one today.
func (g *Generator) generate(grid Grid, pass int) (int, error) {
	var slots [GuessLength]int
	for ri := range grid {
		slots[ri] = grid.SlotCount(ri)
	}

	// contention per digit: how much of each row's choice it occupies
	var digitCost [TotalDigits]float64
	maxDigitCost := 0.0
	for di := 0; di < TotalDigits; di++ {
		for ri := 0; ri < GuessLength; ri++ {
			if grid[ri][di] != 0 {
				digitCost[di] += 1 / float64(slots[ri])
			}
		}
		digitCost[di] = round2(digitCost[di])
		maxDigitCost = max(maxDigitCost, digitCost[di])
	}

	costs := make([]rowCost, GuessLength)
	for ri := 0; ri < GuessLength; ri++ {
		costs[ri].row = ri
		if slots[ri] == 0 {
			continue
		}
		sum := 0.0
		for di := 0; di < TotalDigits; di++ {
			if grid[ri][di] != 0 {
				sum += digitCost[di]
			}
		}
		costs[ri].cost = round2(sum / float64(slots[ri]))
	}

	order := slices.Clone(costs)
	slices.SortStableFunc(order, func(a, b rowCost) int {
		return cmp.Compare(b.cost, a.cost)
	})

	g.log.Debug("contention costs",
		"pass", pass,
		"digitCost", digitCost,
		"maxDigitCost", maxDigitCost,
		"rowCost", costs,
		"order", order,
	)

	answer := 0
	for _, rc := range order {
		digit, err := WeightedPick(g.rnd, grid[rc.row][:])
		if err != nil {
			return 0, fmt.Errorf("generate: position %d: %w", rc.row, err)
		}
		grid.Consume(digit)
		answer += digit * pow10(GuessLength-1-rc.row)

		g.log.Debug("digit assigned", "position", rc.row, "digit", digit)
	}
	return answer, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func pow10(n int) int {
	p := 1
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
