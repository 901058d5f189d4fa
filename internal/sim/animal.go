package sim

import (
	"math"
	"math/rand"
)

// Animal is a single creature in the world
type Animal struct {
	Position  Point
	Rotation  float32 // heading in radians; 0 faces +X
	Speed     float32
	Satiation int // foods eaten this generation

	brain *Brain
}

func newAnimal(rng *rand.Rand, brain *Brain, speed float32) *Animal {
	return &Animal{
		Position: RandomPoint(rng),
		Rotation: wrapAngle(rng.Float32() * 2 * math.Pi),
		Speed:    speed,
		brain:    brain,
	}
}

// Brain returns the network steering the animal
func (a *Animal) Brain() *Brain {
	return a.brain
}

// Fitness is the number of foods eaten
func (a *Animal) Fitness() float32 {
	return float32(a.Satiation)
}

// heading returns the unit vector the animal faces
func (a *Animal) heading() (float32, float32) {
	sin, cos := math.Sincos(float64(a.Rotation))
	return float32(cos), float32(sin)
}
