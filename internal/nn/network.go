// Package nn implements a fixed-depth feed-forward neural network with
// rectified linear activations.
//
// A network can be flattened into a single weight sequence and rebuilt
// from one. The layout is, for every layer in order and every neuron in
// that layer in order, the neuron's bias followed by its input weights:
//
//	[l0n0.bias, l0n0.w0, l0n0.w1, ..., l0n1.bias, ..., l1n0.bias, ...]
package nn

import (
	"fmt"
	"iter"
	"math/rand"
)

// LayerTopology describes one layer by its neuron count. The first entry
// of a topology is the size of the input vector.
type LayerTopology struct {
	Neurons int `yaml:"neurons" json:"neurons"`
}

// Network is a stack of fully connected layers
type Network struct {
	inputSize int
	layers    []layer
}

type layer struct {
	neurons []neuron
}

type neuron struct {
	bias    float32
	weights []float32
}

// Random builds a network with every bias and weight drawn uniformly from
// [-1, 1]. Panics if the topology has fewer than two layers.
func Random(rng *rand.Rand, topology []LayerTopology) *Network {
	checkTopology(topology)

	layers := make([]layer, 0, len(topology)-1)
	for i := 1; i < len(topology); i++ {
		layers = append(layers, randomLayer(rng, topology[i-1].Neurons, topology[i].Neurons))
	}
	return &Network{inputSize: topology[0].Neurons, layers: layers}
}

func randomLayer(rng *rand.Rand, inputSize, outputSize int) layer {
	neurons := make([]neuron, outputSize)
	for i := range neurons {
		neurons[i] = randomNeuron(rng, inputSize)
	}
	return layer{neurons: neurons}
}

func randomNeuron(rng *rand.Rand, inputSize int) neuron {
	bias := uniform(rng)
	weights := make([]float32, inputSize)
	for i := range weights {
		weights[i] = uniform(rng)
	}
	return neuron{bias: bias, weights: weights}
}

// uniform draws from [-1, 1]
func uniform(rng *rand.Rand) float32 {
	return rng.Float32()*2 - 1
}

// FromWeights rebuilds a network from a sequence produced by Weights.
// Panics if the sequence runs out before every neuron is filled or still
// has values left afterwards.
func FromWeights(topology []LayerTopology, weights iter.Seq[float32]) *Network {
	checkTopology(topology)

	next, stop := iter.Pull(weights)
	defer stop()

	take := func() float32 {
		w, ok := next()
		if !ok {
			panic("nn: not enough weights")
		}
		return w
	}

	layers := make([]layer, 0, len(topology)-1)
	for i := 1; i < len(topology); i++ {
		inputSize := topology[i-1].Neurons
		neurons := make([]neuron, topology[i].Neurons)
		for j := range neurons {
			n := neuron{bias: take(), weights: make([]float32, inputSize)}
			for k := range n.weights {
				n.weights[k] = take()
			}
			neurons[j] = n
		}
		layers = append(layers, layer{neurons: neurons})
	}

	if _, ok := next(); ok {
		panic("nn: too many weights")
	}
	return &Network{inputSize: topology[0].Neurons, layers: layers}
}

// Build creates a network from explicit layer definitions. Each layer is
// given as rows of [bias, w0, w1, ...], one row per neuron. Panics if a
// row does not match the size of the previous layer.
func Build(inputSize int, layers ...[][]float32) *Network {
	network := &Network{inputSize: inputSize, layers: make([]layer, 0, len(layers))}
	for i, rows := range layers {
		neurons := make([]neuron, len(rows))
		for j, row := range rows {
			if len(row) != inputSize+1 {
				panic(fmt.Sprintf("nn: layer %d neuron %d has %d values, want bias + %d weights", i, j, len(row), inputSize))
			}
			neurons[j] = neuron{bias: row[0], weights: append([]float32(nil), row[1:]...)}
		}
		network.layers = append(network.layers, layer{neurons: neurons})
		inputSize = len(rows)
	}
	return network
}

func checkTopology(topology []LayerTopology) {
	if len(topology) < 2 {
		panic(fmt.Sprintf("nn: topology needs at least two layers, got %d", len(topology)))
	}
}

// Topology returns the layer sizes the network was built from
func (n *Network) Topology() []LayerTopology {
	if len(n.layers) == 0 {
		return nil
	}
	topology := make([]LayerTopology, 0, len(n.layers)+1)
	topology = append(topology, LayerTopology{Neurons: n.inputSize})
	for _, l := range n.layers {
		topology = append(topology, LayerTopology{Neurons: len(l.neurons)})
	}
	return topology
}

// Propagate feeds inputs through every layer and returns the outputs of
// the last one. Panics if the input size does not match the network.
func (n *Network) Propagate(inputs []float32) []float32 {
	if len(inputs) != n.inputSize {
		panic(fmt.Sprintf("nn: got %d inputs, network expects %d", len(inputs), n.inputSize))
	}
	for _, l := range n.layers {
		inputs = l.propagate(inputs)
	}
	return inputs
}

func (l layer) propagate(inputs []float32) []float32 {
	outputs := make([]float32, len(l.neurons))
	for i, nr := range l.neurons {
		outputs[i] = nr.propagate(inputs)
	}
	return outputs
}

func (n neuron) propagate(inputs []float32) float32 {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: got %d inputs, neuron expects %d", len(inputs), len(n.weights)))
	}

	var sum float32
	for i, input := range inputs {
		sum += input * n.weights[i]
	}
	return relu(sum + n.bias)
}

func relu(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

// Weights yields every bias and weight in the layout described in the
// package documentation.
func (n *Network) Weights() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, l := range n.layers {
			for _, nr := range l.neurons {
				if !yield(nr.bias) {
					return
				}
				for _, w := range nr.weights {
					if !yield(w) {
						return
					}
				}
			}
		}
	}
}

// WeightCount returns how many values Weights yields for a topology
func WeightCount(topology []LayerTopology) int {
	checkTopology(topology)
	count := 0
	for i := 1; i < len(topology); i++ {
		count += (topology[i-1].Neurons + 1) * topology[i].Neurons
	}
	return count
}
