package sim

import (
	"math/rand"

	"evosim/internal/ga"
	"evosim/internal/nn"
)

// brainOutputs are speed and rotation
const brainOutputs = 2

// Topology returns the network layout of a brain: one input per eye cell,
// the given hidden layers, and the two motor outputs.
func Topology(eye Eye, hidden []int) []nn.LayerTopology {
	topology := make([]nn.LayerTopology, 0, len(hidden)+2)
	topology = append(topology, nn.LayerTopology{Neurons: eye.Cells})
	for _, size := range hidden {
		topology = append(topology, nn.LayerTopology{Neurons: size})
	}
	return append(topology, nn.LayerTopology{Neurons: brainOutputs})
}

// Brain maps what an animal sees to how it moves
type Brain struct {
	network *nn.Network
}

// RandomBrain creates a brain with random weights
func RandomBrain(rng *rand.Rand, topology []nn.LayerTopology) *Brain {
	return &Brain{network: nn.Random(rng, topology)}
}

// BrainFromChromosome decodes a brain from its genes
func BrainFromChromosome(chromosome ga.Chromosome, topology []nn.LayerTopology) *Brain {
	return &Brain{network: nn.FromWeights(topology, chromosome.All())}
}

// Chromosome encodes the brain's weights as genes
func (b *Brain) Chromosome() ga.Chromosome {
	return ga.CollectChromosome(b.network.Weights())
}

// Think returns the raw speed and rotation outputs for a vision vector
func (b *Brain) Think(vision []float32) (speed, rotation float32) {
	out := b.network.Propagate(vision)
	return out[0], out[1]
}
