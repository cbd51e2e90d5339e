package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/trideck/analysis"
)

// Config holds simulation defaults loaded from an HCL file, e.g.
//
//	simulation {
//	  trials    = 3000
//	  workers   = 4
//	  seed      = 42
//	  budget_ms = 250
//	}
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
}

// SimulationSettings contains simulation-level configuration.
type SimulationSettings struct {
	Trials   int   `hcl:"trials,optional"`
	Workers  int   `hcl:"workers,optional"`
	Seed     int64 `hcl:"seed,optional"`
	BudgetMs int   `hcl:"budget_ms,optional"`
}

// LoadConfig loads simulation configuration from an HCL file.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file not found: %s", filename)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	return &config, nil
}

// applyConfig fills simulation options from the config file for any
// setting the user did not override on the command line. Flags that can
// carry a meaningful zero use pointers so "unset" is distinguishable
// from an explicit value.
func applyConfig(cli *CLI, cfg *Config, opts *analysis.Options) {
	if cli.Trials == nil && cfg.Simulation.Trials > 0 {
		opts.Trials = cfg.Simulation.Trials
	}
	if cli.Workers == 0 && cfg.Simulation.Workers > 0 {
		opts.Workers = cfg.Simulation.Workers
	}
	if cli.Seed == nil && cfg.Simulation.Seed != 0 {
		opts.Seed = cfg.Simulation.Seed
	}
	if cli.Budget == 0 && cfg.Simulation.BudgetMs > 0 {
		opts.Budget = time.Duration(cfg.Simulation.BudgetMs) * time.Millisecond
	}
}
