package ga

import (
	"fmt"
	"math/rand"
)

// SelectionMethod picks one parent out of a population
type SelectionMethod[I Individual[I]] interface {
	Select(rng *rand.Rand, population []I) I
}

// RouletteWheelSelection picks an individual with probability proportional
// to its fitness. A population whose fitnesses are all zero is sampled
// uniformly. Panics on an empty population or on a negative fitness.
type RouletteWheelSelection[I Individual[I]] struct{}

// Select implements SelectionMethod
func (RouletteWheelSelection[I]) Select(rng *rand.Rand, population []I) I {
	if len(population) == 0 {
		panic("ga: selection from an empty population")
	}

	var total float64
	for i, individual := range population {
		fitness := individual.Fitness()
		if fitness < 0 {
			panic(fmt.Sprintf("ga: roulette wheel selection got negative fitness %v at index %d", fitness, i))
		}
		total += float64(fitness)
	}

	if total == 0 {
		return population[rng.Intn(len(population))]
	}

	spin := rng.Float64() * total
	for _, individual := range population {
		spin -= float64(individual.Fitness())
		if spin < 0 {
			return individual
		}
	}

	// Rounding can leave spin at a tiny non-negative value; the last
	// individual with any weight owns the end of the wheel.
	for i := len(population) - 1; i >= 0; i-- {
		if population[i].Fitness() > 0 {
			return population[i]
		}
	}
	return population[len(population)-1]
}
