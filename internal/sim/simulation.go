package sim

import (
	"fmt"
	"math/rand"

	"evosim/internal/config"
	"evosim/internal/ga"
	"evosim/internal/nn"
)

type algorithm = ga.GeneticAlgorithm[*AnimalIndividual, ga.RouletteWheelSelection[*AnimalIndividual]]

// Simulation advances the world one step at a time and breeds a new
// generation of animals every StepsPerGeneration steps.
type Simulation struct {
	cfg      config.WorldConfig
	eye      Eye
	topology []nn.LayerTopology
	world    *World
	algo     *algorithm

	age        int
	generation int
}

// New creates a simulation with a random world
func New(rng *rand.Rand, cfg *config.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var crossover ga.CrossoverMethod
	switch cfg.GA.Crossover {
	case config.CrossoverUniform:
		crossover = ga.UniformCrossover{}
	case config.CrossoverSinglePoint:
		crossover = ga.SinglePointCrossover{}
	default:
		return nil, fmt.Errorf("unknown crossover %q", cfg.GA.Crossover)
	}

	s := &Simulation{
		cfg:  cfg.World,
		eye:  NewEye(cfg.Eye),
		algo: ga.New[*AnimalIndividual](
			ga.RouletteWheelSelection[*AnimalIndividual]{},
			crossover,
			ga.NewGaussianMutation(cfg.GA.MutationChance, cfg.GA.MutationCoeff),
		),
	}
	s.topology = Topology(s.eye, cfg.Brain.Hidden)

	animals := make([]*Animal, cfg.World.Animals)
	for i := range animals {
		animals[i] = newAnimal(rng, RandomBrain(rng, s.topology), s.startSpeed())
	}
	s.world = &World{
		Animals: animals,
		Foods:   randomFoods(rng, cfg.World.Foods),
	}
	return s, nil
}

// World returns the current state of the world
func (s *Simulation) World() *World {
	return s.world
}

// Eye returns the vision sensor shared by every animal
func (s *Simulation) Eye() Eye {
	return s.eye
}

// Age returns the number of steps taken in the current generation
func (s *Simulation) Age() int {
	return s.age
}

// Generation returns the number of completed generations
func (s *Simulation) Generation() int {
	return s.generation
}

// Step advances the world by one tick. When the tick ends a generation the
// population is evolved and the statistics of the finished generation are
// returned with ok set.
func (s *Simulation) Step(rng *rand.Rand) (stats ga.Statistics, ok bool) {
	s.processCollisions(rng)
	s.processBrains()
	s.processMovement()

	s.age++
	if s.age >= s.cfg.StepsPerGeneration {
		return s.evolve(rng), true
	}
	return ga.Statistics{}, false
}

// Train steps until the current generation ends
func (s *Simulation) Train(rng *rand.Rand) ga.Statistics {
	for {
		if stats, ok := s.Step(rng); ok {
			return stats
		}
	}
}

func (s *Simulation) processCollisions(rng *rand.Rand) {
	for _, animal := range s.world.Animals {
		for _, food := range s.world.Foods {
			if animal.Position.Distance(food.Position) < s.cfg.CollisionRadius {
				animal.Satiation++
				food.Position = RandomPoint(rng)
			}
		}
	}
}

func (s *Simulation) processBrains() {
	for _, animal := range s.world.Animals {
		vision := s.eye.ProcessVision(animal.Position, animal.Rotation, s.world.Foods)
		speed, rotation := animal.brain.Think(vision)

		speed = clamp(speed, -s.cfg.SpeedAccel, s.cfg.SpeedAccel)
		rotation = clamp(rotation, -s.cfg.RotationAccel, s.cfg.RotationAccel)

		animal.Speed = clamp(animal.Speed+speed, s.cfg.SpeedMin, s.cfg.SpeedMax)
		animal.Rotation = wrapAngle(animal.Rotation + rotation)
	}
}

func (s *Simulation) processMovement() {
	for _, animal := range s.world.Animals {
		dx, dy := animal.heading()
		animal.Position.X = wrapUnit(animal.Position.X + dx*animal.Speed)
		animal.Position.Y = wrapUnit(animal.Position.Y + dy*animal.Speed)
	}
}

func (s *Simulation) evolve(rng *rand.Rand) ga.Statistics {
	s.age = 0
	s.generation++

	current := make([]*AnimalIndividual, len(s.world.Animals))
	for i, animal := range s.world.Animals {
		current[i] = FromAnimal(animal)
	}

	next, stats := s.algo.Evolve(rng, current)

	for i, individual := range next {
		s.world.Animals[i] = individual.IntoAnimal(rng, s.topology, s.startSpeed())
	}
	for _, food := range s.world.Foods {
		food.Position = RandomPoint(rng)
	}
	return stats
}

func (s *Simulation) startSpeed() float32 {
	return (s.cfg.SpeedMin + s.cfg.SpeedMax) / 2
}
