package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/trideck/analysis"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "odds.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
simulation {
  trials    = 3000
  workers   = 4
  seed      = 42
  budget_ms = 250
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Simulation.Trials)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, 250, cfg.Simulation.BudgetMs)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeConfig(t, `simulation { trials = `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestApplyConfig(t *testing.T) {
	cfg := &Config{Simulation: SimulationSettings{
		Trials:   5000,
		Workers:  3,
		Seed:     7,
		BudgetMs: 100,
	}}

	// Defaults on the CLI defer to the config file.
	cli := &CLI{}
	opts := analysis.Options{}
	applyConfig(cli, cfg, &opts)
	assert.Equal(t, 5000, opts.Trials)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, int64(7), opts.Seed)
	assert.Equal(t, 100*time.Millisecond, opts.Budget)

	// Explicit flags win over the config file.
	seed := int64(99)
	trials := 1000
	cli = &CLI{Trials: &trials, Workers: 2, Seed: &seed, Budget: time.Second}
	opts = analysis.Options{Trials: *cli.Trials, Workers: cli.Workers, Seed: seed, Budget: cli.Budget}
	applyConfig(cli, cfg, &opts)
	assert.Equal(t, 1000, opts.Trials)
	assert.Equal(t, 2, opts.Workers)
	assert.Equal(t, int64(99), opts.Seed)
	assert.Equal(t, time.Second, opts.Budget)
}

func TestApplyConfigExplicitDefaultValueWins(t *testing.T) {
	// An explicit trial count equal to the simulator default must still
	// beat the config file.
	cfg := &Config{Simulation: SimulationSettings{Trials: 5000}}

	trials := analysis.DefaultTrials
	cli := &CLI{Trials: &trials}
	opts := analysis.Options{Trials: *cli.Trials}
	applyConfig(cli, cfg, &opts)
	assert.Equal(t, analysis.DefaultTrials, opts.Trials)
}
