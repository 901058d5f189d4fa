package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimalIndividual(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	topology := Topology(Eye{Cells: 3}, []int{6})
	animal := newAnimal(rng, RandomBrain(rng, topology), 0.002)
	animal.Satiation = 4

	individual := FromAnimal(animal)
	assert.Equal(t, float32(4), individual.Fitness())
	assert.True(t, individual.Chromosome().Equal(animal.Brain().Chromosome()))

	child := individual.Create(individual.Chromosome().Clone())
	assert.Zero(t, child.Fitness())
	assert.True(t, child.Chromosome().Equal(*individual.Chromosome()))

	reborn := child.IntoAnimal(rng, topology, 0.003)
	assert.Zero(t, reborn.Satiation)
	assert.Equal(t, float32(0.003), reborn.Speed)
	assert.True(t, reborn.Brain().Chromosome().Equal(*individual.Chromosome()))
	assert.GreaterOrEqual(t, reborn.Position.X, float32(0))
	assert.Less(t, reborn.Position.X, float32(1))
}
