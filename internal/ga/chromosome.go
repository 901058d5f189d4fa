package ga

import (
	"iter"
	"math"
	"slices"
)

// geneEpsilon is the tolerance used when comparing genes.
const geneEpsilon = 1e-6

// Chromosome is a fixed-length vector of genes. It is the interchange
// format between a network's weights and the genetic algorithm.
type Chromosome struct {
	genes []float32
}

// NewChromosome wraps genes without copying them
func NewChromosome(genes []float32) Chromosome {
	return Chromosome{genes: genes}
}

// CollectChromosome builds a chromosome from any sequence of genes
func CollectChromosome(seq iter.Seq[float32]) Chromosome {
	return Chromosome{genes: slices.Collect(seq)}
}

// Len returns the number of genes
func (c Chromosome) Len() int {
	return len(c.genes)
}

// At returns the gene at index i. Panics if i is out of range.
func (c Chromosome) At(i int) float32 {
	return c.genes[i]
}

// All iterates over the genes in order without exposing the backing slice
func (c Chromosome) All() iter.Seq[float32] {
	return slices.Values(c.genes)
}

// Genes returns the backing slice; writes through it mutate the chromosome
func (c Chromosome) Genes() []float32 {
	return c.genes
}

// Clone makes a deep copy of the chromosome
func (c Chromosome) Clone() Chromosome {
	return Chromosome{genes: slices.Clone(c.genes)}
}

// Equal reports whether both chromosomes have the same length and every
// gene pair differs by at most geneEpsilon.
func (c Chromosome) Equal(other Chromosome) bool {
	if len(c.genes) != len(other.genes) {
		return false
	}
	for i := range c.genes {
		if math.Abs(float64(c.genes[i]-other.genes[i])) > geneEpsilon {
			return false
		}
	}
	return true
}
