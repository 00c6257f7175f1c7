// Package config loads table definitions for the holdem command from HCL.
//
//	simulation {
//	  hands = 1000
//	  seed  = 42
//	}
//
//	table "main" {
//	  small_blind    = 5
//	  big_blind      = 10
//	  starting_stack = 1000
//
//	  seat "alice" {}
//	  seat "bob" { chips = 500 }
//	}
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem/game"
)

const (
	DefaultHands        = 100
	DefaultPlayers      = 6
	DefaultStackBBs     = 100
	DefaultLogLevel     = "info"
	DefaultTableName    = "main"
	DefaultSmallBlind   = 5
	DefaultBigBlind     = 10
	MaxSeats            = 10
	defaultConcurrency  = 4
	minimumSeatsPerHand = 2
)

// Config is the complete file.
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Tables     []TableConfig       `hcl:"table,block"`
}

// SimulationSettings controls a simulate run.
type SimulationSettings struct {
	Hands       int    `hcl:"hands,optional"` // Hands per table
	Seed        int64  `hcl:"seed,optional"`
	Concurrency int    `hcl:"concurrency,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	HistoryDir  string `hcl:"history_dir,optional"` // Write a PHH file per hand when set
}

// TableConfig defines one table.
type TableConfig struct {
	Name          string       `hcl:"name,label"`
	SmallBlind    int          `hcl:"small_blind"`
	BigBlind      int          `hcl:"big_blind"`
	StartingStack int          `hcl:"starting_stack,optional"`
	Players       int          `hcl:"players,optional"` // Seats to create when no seat blocks are given
	Button        int          `hcl:"button,optional"`
	Seats         []SeatConfig `hcl:"seat,block"`
}

// SeatConfig is one player at a table.
type SeatConfig struct {
	Name  string `hcl:"name,label"`
	Chips int    `hcl:"chips,optional"` // Defaults to the table's starting stack
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		Tables: []TableConfig{{
			Name:       DefaultTableName,
			SmallBlind: DefaultSmallBlind,
			BigBlind:   DefaultBigBlind,
		}},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads filename. A missing file yields the default configuration.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	return decode(file, diags)
}

// Parse decodes HCL source; filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	return decode(file, diags)
}

func decode(file *hcl.File, diags hcl.Diagnostics) (*Config, error) {
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if len(cfg.Tables) == 0 {
		return nil, errors.New("no table blocks defined")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	s := c.Simulation
	if s.Hands == 0 {
		s.Hands = DefaultHands
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}

	for i := range c.Tables {
		t := &c.Tables[i]
		if t.StartingStack == 0 {
			t.StartingStack = t.BigBlind * DefaultStackBBs
		}
		if len(t.Seats) == 0 {
			if t.Players == 0 {
				t.Players = DefaultPlayers
			}
			for n := 1; n <= t.Players; n++ {
				t.Seats = append(t.Seats, SeatConfig{Name: fmt.Sprintf("player-%d", n)})
			}
		}
		t.Players = len(t.Seats)
		for j := range t.Seats {
			if t.Seats[j].Chips == 0 {
				t.Seats[j].Chips = t.StartingStack
			}
		}
	}
}

// Validate checks the configuration describes playable tables.
func (c *Config) Validate() error {
	if c.Simulation.Hands < 0 {
		return fmt.Errorf("invalid hands: %d", c.Simulation.Hands)
	}
	if c.Simulation.Concurrency < 1 {
		return fmt.Errorf("invalid concurrency: %d", c.Simulation.Concurrency)
	}

	names := make(map[string]bool)
	for _, t := range c.Tables {
		if names[t.Name] {
			return fmt.Errorf("duplicate table name: %s", t.Name)
		}
		names[t.Name] = true

		if t.SmallBlind <= 0 || t.BigBlind < t.SmallBlind {
			return fmt.Errorf("table %s: invalid blinds %d/%d", t.Name, t.SmallBlind, t.BigBlind)
		}
		if len(t.Seats) < minimumSeatsPerHand || len(t.Seats) > MaxSeats {
			return fmt.Errorf("table %s: %d seats, want %d-%d", t.Name, len(t.Seats), minimumSeatsPerHand, MaxSeats)
		}
		if t.Button < 0 || t.Button >= len(t.Seats) {
			return fmt.Errorf("table %s: button %d out of range", t.Name, t.Button)
		}
		seen := make(map[string]bool)
		for _, s := range t.Seats {
			if seen[s.Name] {
				return fmt.Errorf("table %s: duplicate seat %s", t.Name, s.Name)
			}
			seen[s.Name] = true
			if s.Chips < 0 {
				return fmt.Errorf("table %s: seat %s has %d chips", t.Name, s.Name, s.Chips)
			}
		}
	}
	return nil
}

// GameSeats converts the table's seats for game.Engine.StartHand.
func (t TableConfig) GameSeats() []game.Seat {
	seats := make([]game.Seat, len(t.Seats))
	for i, s := range t.Seats {
		seats[i] = game.Seat{ID: s.Name, Name: s.Name, Chips: s.Chips}
	}
	return seats
}

// Table returns the named table.
func (c *Config) Table(name string) (TableConfig, bool) {
	for _, t := range c.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return TableConfig{}, false
}
