// Package ga implements a generational genetic algorithm over real-valued
// chromosomes. Strategies for selection, crossover and mutation are
// pluggable; anything implementing Individual can be evolved.
package ga

import (
	"math/rand"
)

// GeneticAlgorithm breeds a new population from an old one
type GeneticAlgorithm[I Individual[I], S SelectionMethod[I]] struct {
	selection S
	crossover CrossoverMethod
	mutation  MutationMethod
}

// New creates a genetic algorithm from its three strategies
func New[I Individual[I], S SelectionMethod[I]](selection S, crossover CrossoverMethod, mutation MutationMethod) *GeneticAlgorithm[I, S] {
	return &GeneticAlgorithm[I, S]{
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
	}
}

// Evolve produces a population of the same size as the input. Every slot
// is filled by selecting two parents, crossing their chromosomes over and
// mutating the child. The returned statistics describe the input
// population. Panics on an empty population.
func (g *GeneticAlgorithm[I, S]) Evolve(rng *rand.Rand, population []I) ([]I, Statistics) {
	if len(population) == 0 {
		panic("ga: evolve of an empty population")
	}

	next := make([]I, len(population))
	for i := range next {
		parentA := g.selection.Select(rng, population)
		parentB := g.selection.Select(rng, population)

		child := g.crossover.Crossover(rng, parentA.Chromosome(), parentB.Chromosome())
		g.mutation.Mutate(rng, &child)

		next[i] = parentA.Create(child)
	}

	return next, NewStatistics(population)
}
