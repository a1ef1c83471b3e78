// Package config loads the cranes harness configuration from an optional
// .env file, CRANES_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Algorithm selections accepted by Config.Algo.
const (
	AlgoBoth       = "both"
	AlgoExhaustive = "exhaustive"
	AlgoDynProg    = "dynprog"
)

// Config holds the harness configuration values.
type Config struct {
	GridFile            string  // Text grid to load; when set, random options are ignored
	Rows                int     // Random grid rows
	Cols                int     // Random grid columns
	Seed                int64   // Random grid seed (0 = fixed default)
	BuildingProbability float64 // Chance that a non-origin cell is a building
	MaxCranes           int     // Upper bound of cranes per EMPTY cell
	Algo                string  // exhaustive, dynprog or both
	Sweep               int     // Timing sweep over n×n grids for n=1..Sweep; 0 disables
	ExhaustiveLimit     int     // Largest R+C-2 for which a sweep still runs the exhaustive search
	LogLevel            string  // logrus level name
}

// Load reads the env file named by CRANES_ENV_FILE (default ".env") if it
// exists, builds defaults from the environment, then lets args override
// them through a flag set named name. The result is validated.
func Load(name string, args []string) (Config, error) {
	envFile := getEnvWithDefault("CRANES_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.StringVar(&cfg.GridFile, "grid", cfg.GridFile, "text grid file to solve")
	fset.IntVar(&cfg.Rows, "rows", cfg.Rows, "random grid rows")
	fset.IntVar(&cfg.Cols, "cols", cfg.Cols, "random grid columns")
	fset.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random grid seed (0 = default)")
	fset.Float64Var(&cfg.BuildingProbability, "buildings", cfg.BuildingProbability, "building probability in [0,1]")
	fset.IntVar(&cfg.MaxCranes, "max-cranes", cfg.MaxCranes, "maximum cranes per cell")
	fset.StringVar(&cfg.Algo, "algo", cfg.Algo, "exhaustive, dynprog or both")
	fset.IntVar(&cfg.Sweep, "sweep", cfg.Sweep, "time solvers on n×n grids for n=1..sweep")
	fset.IntVar(&cfg.ExhaustiveLimit, "exhaustive-limit", cfg.ExhaustiveLimit, "largest rows+cols-2 for the exhaustive search in a sweep")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Algo = strings.ToLower(strings.TrimSpace(cfg.Algo))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// fromEnv populates a Config from CRANES_* variables with defaults.
func fromEnv() (Config, error) {
	var (
		cfg = Config{
			GridFile: getEnvWithDefault("CRANES_GRID_FILE", ""),
			Algo:     getEnvWithDefault("CRANES_ALGO", AlgoBoth),
			LogLevel: getEnvWithDefault("CRANES_LOG_LEVEL", "info"),
		}
		err error
	)
	if cfg.Rows, err = getEnvAsInt("CRANES_ROWS", 6); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = getEnvAsInt("CRANES_COLS", 6); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsInt64("CRANES_SEED", 0); err != nil {
		return Config{}, err
	}
	if cfg.BuildingProbability, err = getEnvAsFloat("CRANES_BUILDING_PROB", 0.2); err != nil {
		return Config{}, err
	}
	if cfg.MaxCranes, err = getEnvAsInt("CRANES_MAX_CRANES", 9); err != nil {
		return Config{}, err
	}
	if cfg.Sweep, err = getEnvAsInt("CRANES_SWEEP", 0); err != nil {
		return Config{}, err
	}
	if cfg.ExhaustiveLimit, err = getEnvAsInt("CRANES_EXHAUSTIVE_LIMIT", 20); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch c.Algo {
	case AlgoBoth, AlgoExhaustive, AlgoDynProg, "dp":
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, c.Algo)
	}
	if c.GridFile == "" && c.Sweep == 0 && (c.Rows < 1 || c.Cols < 1) {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.BuildingProbability < 0 || c.BuildingProbability > 1 {
		return fmt.Errorf("%w: building probability %v outside [0,1]", ErrInvalidConfig, c.BuildingProbability)
	}
	if c.MaxCranes < 0 || c.MaxCranes == math.MaxInt {
		return fmt.Errorf("%w: max cranes %d outside [0,%d)", ErrInvalidConfig, c.MaxCranes, math.MaxInt)
	}
	if c.Sweep < 0 {
		return fmt.Errorf("%w: sweep %d is negative", ErrInvalidConfig, c.Sweep)
	}
	if c.ExhaustiveLimit < 0 || c.ExhaustiveLimit > 63 {
		return fmt.Errorf("%w: exhaustive limit %d outside [0,63]", ErrInvalidConfig, c.ExhaustiveLimit)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns defaultValue if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return value, nil
}

// getEnvAsInt64 is getEnvAsInt for 64-bit values.
func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return value, nil
}

// getEnvAsFloat retrieves a float environment variable or returns defaultValue if not set.
func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidConfig, key, err)
	}
	return value, nil
}
