package sim

import (
	"math/rand"

	"evosim/internal/ga"
	"evosim/internal/nn"
)

// AnimalIndividual adapts an Animal to the genetic algorithm
type AnimalIndividual struct {
	fitness    float32
	chromosome ga.Chromosome
}

var _ ga.Individual[*AnimalIndividual] = (*AnimalIndividual)(nil)

// FromAnimal captures an animal's fitness and genes
func FromAnimal(a *Animal) *AnimalIndividual {
	return &AnimalIndividual{
		fitness:    a.Fitness(),
		chromosome: a.brain.Chromosome(),
	}
}

func (i *AnimalIndividual) Fitness() float32 {
	return i.fitness
}

func (i *AnimalIndividual) Chromosome() *ga.Chromosome {
	return &i.chromosome
}

// Create returns an unscored individual carrying chromosome
func (i *AnimalIndividual) Create(chromosome ga.Chromosome) *AnimalIndividual {
	return &AnimalIndividual{chromosome: chromosome}
}

// IntoAnimal places a fresh animal with this individual's brain at a
// random spot in the world.
func (i *AnimalIndividual) IntoAnimal(rng *rand.Rand, topology []nn.LayerTopology, speed float32) *Animal {
	return newAnimal(rng, BrainFromChromosome(i.chromosome, topology), speed)
}
