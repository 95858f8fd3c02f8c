package game

import (
	"errors"
	"math/rand/v2"
)

var (
	ErrEmptyDistribution = errors.New("weighted pick: total weight of row is zero")
	ErrNegativeWeight    = errors.New("weighted pick: negative weight in row")
)

// WeightedPick returns index i with probability row[i]/sum(row).
func WeightedPick(r *rand.Rand, row []int) (int, error) {
	total := 0
	for _, w := range row {
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		total += w
	}
	if total == 0 {
		return 0, ErrEmptyDistribution
	}

	n := r.IntN(total)
	sum := 0
	for i, w := range row {
		sum += w
		if sum > n {
			return i, nil
		}
	}
	// unreachable: sum == total > n after the last entry
	return len(row) - 1, nil
}
