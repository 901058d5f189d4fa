package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"evosim/internal/config"
	"evosim/internal/logging"
	"evosim/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults are used when empty)")
	generations := flag.Int("generations", 100, "number of generations to run")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Evolution Simulator")
	fmt.Printf("Animals: %d, Foods: %d, Steps/gen: %d\n", cfg.World.Animals, cfg.World.Foods, cfg.World.StepsPerGeneration)
	fmt.Printf("Eye: %d cells, range %.2f, Hidden: %v\n", cfg.Eye.Cells, cfg.Eye.FOVRange, cfg.Brain.Hidden)
	fmt.Printf("Crossover: %s, Mutation: chance=%.3f coeff=%.2f\n", cfg.GA.Crossover, cfg.GA.MutationChance, cfg.GA.MutationCoeff)
	fmt.Println("---")

	rng := rand.New(rand.NewSource(cfg.Seed))

	simulation, err := sim.New(rng, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating simulation: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	startTime := time.Now()

	for gen := 1; gen <= *generations; gen++ {
		stats := simulation.Train(rng)
		if err := logger.LogGeneration(gen, stats, cfg.Logging.EveryGenSummary || gen%10 == 0); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to log generation %d: %v\n", gen, err)
		}
	}

	fmt.Println("---")
	fmt.Printf("Simulation complete! %d generations in %v\n", *generations, time.Since(startTime))
	logger.LogTop(cfg.Logging.TopN)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
