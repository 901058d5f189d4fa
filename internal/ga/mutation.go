package ga

import (
	"fmt"
	"math/rand"
)

const (
	// MaxMutationCoeff bounds the magnitude of a single gene perturbation.
	MaxMutationCoeff = 3.0
)

// MutationMethod perturbs a chromosome in place
type MutationMethod interface {
	Mutate(rng *rand.Rand, child *Chromosome)
}

// GaussianMutation nudges each gene, with probability chance, by up to
// coeff in a random direction.
type GaussianMutation struct {
	chance float32
	coeff  float32
}

// NewGaussianMutation validates its parameters: chance must lie in [0, 1]
// and coeff in [0, MaxMutationCoeff]. Panics otherwise.
func NewGaussianMutation(chance, coeff float32) GaussianMutation {
	if chance < 0 || chance > 1 {
		panic(fmt.Sprintf("ga: mutation chance %v outside [0, 1]", chance))
	}
	if coeff < 0 || coeff > MaxMutationCoeff {
		panic(fmt.Sprintf("ga: mutation coeff %v outside [0, %v]", coeff, MaxMutationCoeff))
	}
	return GaussianMutation{chance: chance, coeff: coeff}
}

// Chance returns the per-gene mutation probability
func (m GaussianMutation) Chance() float32 { return m.chance }

// Coeff returns the maximum perturbation magnitude
func (m GaussianMutation) Coeff() float32 { return m.coeff }

// Mutate implements MutationMethod
func (m GaussianMutation) Mutate(rng *rand.Rand, child *Chromosome) {
	genes := child.Genes()
	for i := range genes {
		sign := float32(1)
		if rng.Float64() < 0.5 {
			sign = -1
		}
		if rng.Float32() < m.chance {
			genes[i] += sign * m.coeff * rng.Float32()
		}
	}
}
