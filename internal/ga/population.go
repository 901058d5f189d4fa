package ga

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Individual is anything the genetic algorithm can breed. I is the
// concrete type itself, so Create can return it without a type assertion.
type Individual[I any] interface {
	// Fitness is the reproductive weight of the individual; it must not be negative.
	Fitness() float32
	Chromosome() *Chromosome
	// Create builds a fresh individual from a chromosome. The receiver is
	// only used as a prototype and is not modified.
	Create(chromosome Chromosome) I
}

// Statistics summarizes the fitness of one population
type Statistics struct {
	Size          int     `json:"size"`
	MinFitness    float64 `json:"min_fitness"`
	MaxFitness    float64 `json:"max_fitness"`
	MeanFitness   float64 `json:"mean_fitness"`
	MedianFitness float64 `json:"median_fitness"`
	StdDevFitness float64 `json:"stddev_fitness"`
}

// NewStatistics computes fitness statistics for a population.
// Panics on an empty population.
func NewStatistics[I Individual[I]](population []I) Statistics {
	if len(population) == 0 {
		panic("ga: statistics of an empty population")
	}

	fitnesses := make([]float64, len(population))
	for i, individual := range population {
		fitnesses[i] = float64(individual.Fitness())
	}

	sorted := slices.Clone(fitnesses)
	slices.Sort(sorted)

	mean, std := stat.PopMeanStdDev(fitnesses, nil)
	return Statistics{
		Size:          len(population),
		MinFitness:    floats.Min(fitnesses),
		MaxFitness:    floats.Max(fitnesses),
		MeanFitness:   mean,
		MedianFitness: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDevFitness: std,
	}
}

// Best returns the individual with the highest fitness. The first one
// wins on ties. Panics on an empty population.
func Best[I Individual[I]](population []I) I {
	if len(population) == 0 {
		panic("ga: best of an empty population")
	}
	best := population[0]
	for _, individual := range population[1:] {
		if individual.Fitness() > best.Fitness() {
			best = individual
		}
	}
	return best
}
