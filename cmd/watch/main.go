package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/exec"
	"runtime"
	"time"

	"evosim/internal/config"
	"evosim/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults are used when empty)")
	train := flag.Int("train", 0, "generations to train headless before rendering")
	width := flag.Int("width", 40, "grid width in characters")
	height := flag.Int("height", 20, "grid height in characters")
	delay := flag.Int("delay", 50, "delay between frames in milliseconds")
	every := flag.Int("every", 5, "render every n-th step")
	flag.Parse()

	if *every <= 0 {
		*every = 1
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	simulation, err := sim.New(rng, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating simulation: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *train; i++ {
		stats := simulation.Train(rng)
		fmt.Printf("Trained gen %d: max=%.0f mean=%.2f\n", simulation.Generation(), stats.MaxFitness, stats.MeanFitness)
	}

	display := NewDisplay(*width, *height)
	frameDelay := time.Duration(*delay) * time.Millisecond
	fmt.Println("Press Ctrl+C to exit")

	for step := 0; ; step++ {
		if step%*every == 0 {
			display.Render(simulation)
			time.Sleep(frameDelay)
		}
		if stats, ok := simulation.Step(rng); ok {
			fmt.Printf("  Generation %d finished: max=%.0f mean=%.2f\n",
				simulation.Generation(), stats.MaxFitness, stats.MeanFitness)
			time.Sleep(time.Second)
		}
	}
}

// Display handles terminal rendering
type Display struct {
	width  int
	height int
}

// NewDisplay creates a new display
func NewDisplay(width, height int) *Display {
	return &Display{width: width, height: height}
}

// Render draws the world state to terminal
func (d *Display) Render(s *sim.Simulation) {
	clearScreen()

	grid := make([][]rune, d.height)
	for y := range grid {
		grid[y] = make([]rune, d.width)
		for x := range grid[y] {
			grid[y][x] = '·'
		}
	}

	world := s.World()
	for _, food := range world.Foods {
		x, y := d.cell(food.Position)
		grid[y][x] = '•'
	}
	for _, animal := range world.Animals {
		x, y := d.cell(animal.Position)
		grid[y][x] = headingGlyph(animal.Rotation)
	}

	fmt.Print("┌")
	for x := 0; x < d.width; x++ {
		fmt.Print("─")
	}
	fmt.Println("┐")

	// Row 0 is the top of the screen, which is the largest Y in the world.
	for y := d.height - 1; y >= 0; y-- {
		fmt.Print("│")
		fmt.Print(string(grid[y]))
		fmt.Println("│")
	}

	fmt.Print("└")
	for x := 0; x < d.width; x++ {
		fmt.Print("─")
	}
	fmt.Println("┘")

	best := 0
	for _, animal := range world.Animals {
		best = max(best, animal.Satiation)
	}
	fmt.Printf("  Generation: %d | Step: %4d | Animals: %d | Best satiation: %d\n",
		s.Generation(), s.Age(), len(world.Animals), best)
}

func (d *Display) cell(p sim.Point) (int, int) {
	x := min(int(p.X*float32(d.width)), d.width-1)
	y := min(int(p.Y*float32(d.height)), d.height-1)
	return max(x, 0), max(y, 0)
}

// headingGlyph picks one of eight arrows for a rotation in radians
func headingGlyph(rotation float32) rune {
	arrows := []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
	octant := int(math.Round(float64(rotation)/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

func clearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
}
