package ga

import (
	"fmt"
	"math/rand"
)

// CrossoverMethod combines two parents into one child
type CrossoverMethod interface {
	Crossover(rng *rand.Rand, parentA, parentB *Chromosome) Chromosome
}

// UniformCrossover takes every gene from either parent with equal probability
type UniformCrossover struct{}

// Crossover implements CrossoverMethod. Panics if the parents differ in length.
func (UniformCrossover) Crossover(rng *rand.Rand, parentA, parentB *Chromosome) Chromosome {
	if parentA.Len() != parentB.Len() {
		panic(fmt.Sprintf("ga: crossover of chromosomes with different lengths (%d != %d)", parentA.Len(), parentB.Len()))
	}

	child := make([]float32, parentA.Len())
	for i := range child {
		if rng.Float64() < 0.5 {
			child[i] = parentA.At(i)
		} else {
			child[i] = parentB.At(i)
		}
	}
	return NewChromosome(child)
}

// SinglePointCrossover copies parent A up to a random cut point and
// parent B from there on.
type SinglePointCrossover struct{}

// Crossover implements CrossoverMethod. Panics if the parents differ in length.
func (SinglePointCrossover) Crossover(rng *rand.Rand, parentA, parentB *Chromosome) Chromosome {
	if parentA.Len() != parentB.Len() {
		panic(fmt.Sprintf("ga: crossover of chromosomes with different lengths (%d != %d)", parentA.Len(), parentB.Len()))
	}

	size := parentA.Len()
	child := make([]float32, size)
	if size == 0 {
		return NewChromosome(child)
	}
	point := rng.Intn(size)
	copy(child[:point], parentA.Genes()[:point])
	copy(child[point:], parentB.Genes()[point:])
	return NewChromosome(child)
}
