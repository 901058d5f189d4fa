// Package sim runs a 2-D world of animals that search for food. Every
// animal is steered by a neural network; when a generation ends the
// networks are bred with a genetic algorithm and the world is reset.
package sim

import (
	"math"
	"math/rand"
)

// Point is a position in the unit square
type Point struct {
	X, Y float32
}

// RandomPoint returns a point drawn uniformly from [0, 1)²
func RandomPoint(rng *rand.Rand) Point {
	return Point{X: rng.Float32(), Y: rng.Float32()}
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(q Point) float32 {
	return float32(math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y)))
}

// Food is a single piece of food
type Food struct {
	Position Point
}

// World holds everything that lives in the simulation
type World struct {
	Animals []*Animal
	Foods   []*Food
}

func randomFoods(rng *rand.Rand, n int) []*Food {
	foods := make([]*Food, n)
	for i := range foods {
		foods[i] = &Food{Position: RandomPoint(rng)}
	}
	return foods
}

// wrapUnit maps x into [0, 1)
func wrapUnit(x float32) float32 {
	x -= float32(math.Floor(float64(x)))
	if x >= 1 {
		return 0
	}
	return x
}

// wrapAngle maps an angle into [-π, π]
func wrapAngle(a float32) float32 {
	return float32(math.Remainder(float64(a), 2*math.Pi))
}

func clamp(x, lo, hi float32) float32 {
	return max(lo, min(x, hi))
}
