package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(SeedGrid(), rand.New(rand.NewPCG(seed, seed+1)), nil)
}

func TestSeedGrid(t *testing.T) {
	g := SeedGrid()

	assert.Equal(t, 0, g[0][0], "leading position must not hold zero")
	for di := 1; di < TotalDigits; di++ {
		assert.Equal(t, TotalProbability/9, g[0][di])
	}
	for ri := 1; ri < GuessLength; ri++ {
		for di := 0; di < TotalDigits; di++ {
			assert.Equal(t, TotalProbability/10, g[ri][di])
		}
	}

	// copies are independent of the cached seed
	g.Consume(5)
	assert.Equal(t, TotalProbability/9, SeedGrid()[0][5])
	assert.Equal(t, SeedGrid(), SeedGrid())
}

func TestGrid_SlotCountAndConsume(t *testing.T) {
	g := SeedGrid()
	assert.Equal(t, 9, g.SlotCount(0))
	assert.Equal(t, 10, g.SlotCount(1))

	g.Consume(3)
	for ri := range g {
		assert.Equal(t, 0, g[ri][3])
	}
	assert.Equal(t, 8, g.SlotCount(0))
	assert.Equal(t, 9, g.SlotCount(3))
}

func TestWeightedPick(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	i, err := WeightedPick(r, []int{0, 0, 0, 7, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = WeightedPick(r, []int{0, 0, 0})
	require.ErrorIs(t, err, ErrEmptyDistribution)
	assert.Contains(t, err.Error(), "zero")

	_, err = WeightedPick(r, []int{1000, -1, 5})
	require.ErrorIs(t, err, ErrNegativeWeight)
	assert.Contains(t, err.Error(), "negative")
}

func TestWeightedPick_FollowsWeights(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	row := []int{0, 100, 0, 300}

	var hits [4]int
	const n = 20000
	for i := 0; i < n; i++ {
		idx, err := WeightedPick(r, row)
		require.NoError(t, err)
		hits[idx]++
	}
	assert.Zero(t, hits[0])
	assert.Zero(t, hits[2])
	assert.InDelta(t, 0.25, float64(hits[1])/n, 0.03)
	assert.InDelta(t, 0.75, float64(hits[3])/n, 0.03)
}

func TestGenerate_DefaultSeed(t *testing.T) {
	gen := newTestGenerator(42)
	var h History

	for i := 0; i < 2000; i++ {
		guess, err := gen.Generate()
		require.NoError(t, err)
		require.GreaterOrEqual(t, guess, MinGuess)
		require.LessOrEqual(t, guess, MaxGuess)
		require.NoError(t, h.Validate(guess), "guess=%d", guess)
	}
}

func TestGenerate_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "single candidate per row gives 1234",
			run: func(t *testing.T) {
				var g Grid
				for ri := range g {
					g[ri][ri+1] = 10
				}
				for seed := uint64(0); seed < 20; seed++ {
					got, err := newTestGenerator(seed).GenerateFrom(g)
					require.NoError(t, err)
					require.Equal(t, 1234, got)
				}
			},
		},
		{
			name: "two candidates per row without overlap",
			run: func(t *testing.T) {
				var g Grid
				possible := []int{0}
				for ri := range g {
					a, b := ri*2+1, ri*2+2
					g[ri][a], g[ri][b] = 10, 10

					var next []int
					for _, p := range possible {
						next = append(next, p*10+a, p*10+b)
					}
					possible = next
				}
				require.Len(t, possible, 16)

				seen := map[int]bool{}
				gen := newTestGenerator(9)
				for i := 0; i < 400; i++ {
					got, err := gen.GenerateFrom(g)
					require.NoError(t, err)
					require.Contains(t, possible, got)
					seen[got] = true
				}
				assert.Greater(t, len(seen), 1, "draws should vary")
			},
		},
		{
			name: "all-zero grid is an empty distribution",
			run: func(t *testing.T) {
				_, err := newTestGenerator(1).GenerateFrom(Grid{})
				require.ErrorIs(t, err, ErrEmptyDistribution)
				assert.Contains(t, err.Error(), "zero")
			},
		},
		{
			name: "negative weight is reported",
			run: func(t *testing.T) {
				var g Grid
				g[0][1] = 1000
				g[0][2] = -1
				_, err := newTestGenerator(1).GenerateFrom(g)
				require.ErrorIs(t, err, ErrNegativeWeight)
				assert.Contains(t, err.Error(), "negative")
			},
		},
		{
			name: "input grid is not modified",
			run: func(t *testing.T) {
				g := SeedGrid()
				before := g
				_, err := newTestGenerator(5).GenerateFrom(g)
				require.NoError(t, err)
				assert.Equal(t, before, g)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, tc.run)
	}
}

func TestSolver_Acceptable(t *testing.T) {
	s := NewSolver(newTestGenerator(8))

	require.NoError(t, s.Acceptable(1234))
	assert.Equal(t, 1, s.Record(1234, Result{Cows: 0, Bulls: 0}))

	require.ErrorIs(t, s.Acceptable(1234), ErrDuplicateAttempt)
	require.ErrorIs(t, s.Acceptable(1567), ErrNotCompliant)
	require.ErrorIs(t, s.Acceptable(1123), ErrRepeatedDigit)
	require.NoError(t, s.Acceptable(5678))

	guess, err := s.Probable()
	require.NoError(t, err)
	require.NoError(t, s.Validate(guess))
	assert.Equal(t, 1, s.History().Len())
}
