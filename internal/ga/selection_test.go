package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouletteWheelSelectionFollowsFitness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	population := testPopulation()
	selection := RouletteWheelSelection[*testIndividual]{}

	histogram := make(map[float32]int)
	for i := 0; i < 1000; i++ {
		histogram[selection.Select(rng, population).Fitness()]++
	}

	// Expected counts are 100, 200, 300 and 400; allow four standard deviations.
	for fitness, tolerance := range map[float32]int{1: 40, 2: 52, 3: 58, 4: 62} {
		assert.InDelta(t, int(fitness)*100, histogram[fitness], float64(tolerance), "fitness %v", fitness)
	}
	assert.Less(t, histogram[1], histogram[2])
	assert.Less(t, histogram[2], histogram[3])
	assert.Less(t, histogram[3], histogram[4])
}

func TestRouletteWheelSelectionSkipsZeroFitness(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	population := []*testIndividual{
		newTestIndividual(0, 0),
		newTestIndividual(3, 1),
		newTestIndividual(0, 2),
	}
	selection := RouletteWheelSelection[*testIndividual]{}

	for i := 0; i < 200; i++ {
		require.Same(t, population[1], selection.Select(rng, population))
	}
}

func TestRouletteWheelSelectionAllZeroIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	population := []*testIndividual{
		newTestIndividual(0, 0),
		newTestIndividual(0, 1),
		newTestIndividual(0, 2),
	}
	selection := RouletteWheelSelection[*testIndividual]{}

	seen := make(map[*testIndividual]int)
	for i := 0; i < 300; i++ {
		seen[selection.Select(rng, population)]++
	}
	assert.Len(t, seen, 3)
}

func TestRouletteWheelSelectionIsDeterministic(t *testing.T) {
	population := testPopulation()
	selection := RouletteWheelSelection[*testIndividual]{}

	draw := func() []*testIndividual {
		rng := rand.New(rand.NewSource(123))
		picks := make([]*testIndividual, 50)
		for i := range picks {
			picks[i] = selection.Select(rng, population)
		}
		return picks
	}
	assert.Equal(t, draw(), draw())
}

func TestRouletteWheelSelectionPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	selection := RouletteWheelSelection[*testIndividual]{}

	assert.Panics(t, func() { selection.Select(rng, nil) })
	assert.Panics(t, func() {
		selection.Select(rng, []*testIndividual{newTestIndividual(1, 0), newTestIndividual(-1, 0)})
	})
}
