package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64       `yaml:"seed"`
	World   WorldConfig `yaml:"world"`
	Eye     EyeConfig   `yaml:"eye"`
	Brain   BrainConfig `yaml:"brain"`
	GA      GAConfig    `yaml:"ga"`
	Logging LogConfig   `yaml:"logging"`
}

// WorldConfig defines the simulated world and animal physics
type WorldConfig struct {
	Animals            int     `yaml:"animals"`
	Foods              int     `yaml:"foods"`
	StepsPerGeneration int     `yaml:"steps_per_generation"`
	CollisionRadius    float32 `yaml:"collision_radius"`
	SpeedMin           float32 `yaml:"speed_min"`
	SpeedMax           float32 `yaml:"speed_max"`
	SpeedAccel         float32 `yaml:"speed_accel"`
	RotationAccel      float32 `yaml:"rotation_accel"`
}

// EyeConfig defines the vision sensor
type EyeConfig struct {
	FOVRange float32 `yaml:"fov_range"`
	FOVAngle float32 `yaml:"fov_angle"` // radians
	Cells    int     `yaml:"cells"`
}

// BrainConfig defines the hidden layers between eye and motor outputs
type BrainConfig struct {
	Hidden []int `yaml:"hidden"` // empty means one layer of 2*cells
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	Crossover      string  `yaml:"crossover"` // uniform|single_point
	MutationChance float32 `yaml:"mutation_chance"`
	MutationCoeff  float32 `yaml:"mutation_coeff"`
}

// LogConfig defines logging parameters
type LogConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	TopN            int    `yaml:"topn"`
	CSVPath         string `yaml:"csv_path"`
	JSONPath        string `yaml:"json_path"`
}

// Crossover strategies accepted in GAConfig.Crossover
const (
	CrossoverUniform     = "uniform"
	CrossoverSinglePoint = "single_point"
)

// Load reads a YAML config file and returns a Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.World.Animals == 0 {
		cfg.World.Animals = 40
	}
	if cfg.World.Foods == 0 {
		cfg.World.Foods = 60
	}
	if cfg.World.StepsPerGeneration == 0 {
		cfg.World.StepsPerGeneration = 2500
	}
	if cfg.World.CollisionRadius == 0 {
		cfg.World.CollisionRadius = 0.01
	}
	if cfg.World.SpeedMin == 0 {
		cfg.World.SpeedMin = 0.001
	}
	if cfg.World.SpeedMax == 0 {
		cfg.World.SpeedMax = 0.005
	}
	if cfg.World.SpeedAccel == 0 {
		cfg.World.SpeedAccel = 0.2
	}
	if cfg.World.RotationAccel == 0 {
		cfg.World.RotationAccel = math.Pi / 2
	}
	if cfg.Eye.FOVRange == 0 {
		cfg.Eye.FOVRange = 0.25
	}
	if cfg.Eye.FOVAngle == 0 {
		cfg.Eye.FOVAngle = math.Pi + math.Pi/4
	}
	if cfg.Eye.Cells == 0 {
		cfg.Eye.Cells = 9
	}
	if len(cfg.Brain.Hidden) == 0 {
		cfg.Brain.Hidden = []int{2 * cfg.Eye.Cells}
	}
	if cfg.GA.Crossover == "" {
		cfg.GA.Crossover = CrossoverUniform
	}
	if cfg.GA.MutationChance == 0 {
		cfg.GA.MutationChance = 0.01
	}
	if cfg.GA.MutationCoeff == 0 {
		cfg.GA.MutationCoeff = 0.3
	}
	if cfg.Logging.TopN == 0 {
		cfg.Logging.TopN = 5
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
}

// Validate reports the first setting that is out of range
func (c *Config) Validate() error {
	if c.World.Animals <= 0 {
		return fmt.Errorf("world.animals must be > 0 (got %d)", c.World.Animals)
	}
	if c.World.Foods < 0 {
		return fmt.Errorf("world.foods must be >= 0 (got %d)", c.World.Foods)
	}
	if c.World.StepsPerGeneration <= 0 {
		return fmt.Errorf("world.steps_per_generation must be > 0 (got %d)", c.World.StepsPerGeneration)
	}
	if c.World.SpeedMin < 0 || c.World.SpeedMin > c.World.SpeedMax {
		return fmt.Errorf("world.speed_min must lie in [0, speed_max] (got %v, speed_max %v)", c.World.SpeedMin, c.World.SpeedMax)
	}
	if c.Eye.FOVRange <= 0 {
		return fmt.Errorf("eye.fov_range must be > 0 (got %v)", c.Eye.FOVRange)
	}
	if c.Eye.FOVAngle <= 0 || c.Eye.FOVAngle > 2*math.Pi {
		return fmt.Errorf("eye.fov_angle must lie in (0, 2π] (got %v)", c.Eye.FOVAngle)
	}
	if c.Eye.Cells <= 0 {
		return fmt.Errorf("eye.cells must be > 0 (got %d)", c.Eye.Cells)
	}
	for i, size := range c.Brain.Hidden {
		if size <= 0 {
			return fmt.Errorf("brain.hidden[%d] must be > 0 (got %d)", i, size)
		}
	}
	switch c.GA.Crossover {
	case CrossoverUniform, CrossoverSinglePoint:
	default:
		return fmt.Errorf("ga.crossover must be %q or %q (got %q)", CrossoverUniform, CrossoverSinglePoint, c.GA.Crossover)
	}
	if c.GA.MutationChance < 0 || c.GA.MutationChance > 1 {
		return fmt.Errorf("ga.mutation_chance must lie in [0, 1] (got %v)", c.GA.MutationChance)
	}
	if c.GA.MutationCoeff < 0 || c.GA.MutationCoeff > 3 {
		return fmt.Errorf("ga.mutation_coeff must lie in [0, 3] (got %v)", c.GA.MutationCoeff)
	}
	return nil
}
