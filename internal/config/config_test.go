package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/cranes/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noEnvFile points CRANES_ENV_FILE at a file that does not exist.
func noEnvFile(t *testing.T) {
	t.Helper()
	t.Setenv("CRANES_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

// TestLoad_Defaults checks the built-in defaults with no env and no flags.
func TestLoad_Defaults(t *testing.T) {
	noEnvFile(t)
	cfg, err := config.Load("cranes", nil)
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Rows:                6,
		Cols:                6,
		BuildingProbability: 0.2,
		MaxCranes:           9,
		Algo:                config.AlgoBoth,
		ExhaustiveLimit:     20,
		LogLevel:            "info",
	}, cfg)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

// TestLoad_EnvAndFlags verifies env overrides defaults and flags override env.
func TestLoad_EnvAndFlags(t *testing.T) {
	noEnvFile(t)
	t.Setenv("CRANES_ROWS", "3")
	t.Setenv("CRANES_COLS", "4")
	t.Setenv("CRANES_SEED", "99")
	t.Setenv("CRANES_ALGO", "Exhaustive")
	t.Setenv("CRANES_LOG_LEVEL", "debug")

	cfg, err := config.Load("cranes", []string{"-cols", "7", "-buildings", "0.5"})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Rows)
	assert.Equal(t, 7, cfg.Cols)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 0.5, cfg.BuildingProbability)
	assert.Equal(t, config.AlgoExhaustive, cfg.Algo)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

// TestLoad_EnvFile reads values from a .env file without overriding the process env.
func TestLoad_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CRANES_MAX_CRANES=4\nCRANES_SWEEP=5\n"), 0o600))
	t.Setenv("CRANES_ENV_FILE", envFile)
	t.Setenv("CRANES_SWEEP", "2")
	t.Cleanup(func() { _ = os.Unsetenv("CRANES_MAX_CRANES") })

	cfg, err := config.Load("cranes", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxCranes)
	assert.Equal(t, 2, cfg.Sweep, "process env wins over the .env file")
}

// TestLoad_Errors covers malformed env values and invalid settings.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"BadInt", map[string]string{"CRANES_ROWS": "many"}, nil},
		{"BadFloat", map[string]string{"CRANES_BUILDING_PROB": "often"}, nil},
		{"BadSeed", map[string]string{"CRANES_SEED": "x"}, nil},
		{"UnknownAlgo", nil, []string{"-algo", "greedy"}},
		{"ZeroRows", nil, []string{"-rows", "0"}},
		{"Probability", nil, []string{"-buildings", "2"}},
		{"NegativeCranes", nil, []string{"-max-cranes", "-1"}},
		{"MaxIntCranes", nil, []string{"-max-cranes", "9223372036854775807"}},
		{"NegativeSweep", nil, []string{"-sweep", "-3"}},
		{"ExhaustiveLimit", nil, []string{"-exhaustive-limit", "64"}},
		{"LogLevel", nil, []string{"-log-level", "chatty"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			noEnvFile(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load("cranes", tc.args)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

// TestLoad_BadFlag surfaces flag parsing errors.
func TestLoad_BadFlag(t *testing.T) {
	noEnvFile(t)
	_, err := config.Load("cranes", []string{"-nope"})
	assert.Error(t, err)
}

// TestValidate_GridFileSkipsShape allows zero rows when a grid file is given.
func TestValidate_GridFileSkipsShape(t *testing.T) {
	cfg := config.Config{GridFile: "harbor.txt", Algo: config.AlgoDynProg, LogLevel: "info"}
	assert.NoError(t, cfg.Validate())
}
