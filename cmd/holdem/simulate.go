package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem/cmd/holdem/shared"
	"github.com/lox/holdem/game"
	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/fileutil"
	"github.com/lox/holdem/internal/phh"
	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/internal/statistics"
	"github.com/lox/holdem/sdk"
)

// SimulateCmd plays hands at every configured table with a fixed
// check/call driver. Tables run concurrently; each owns its state and RNG.
type SimulateCmd struct {
	Config      string `short:"c" type:"path" help:"HCL table configuration file"`
	Hands       int    `help:"Hands per table (overrides config)"`
	Seed        *int64 `help:"Random seed (overrides config)"`
	HistoryDir  string `name:"history-dir" type:"path" help:"Write a PHH file per hand into this directory"`
	SnapshotDir string `name:"snapshot-dir" type:"path" help:"Write each table's final state as a JSON snapshot"`
}

// tableRun is what one table needs to play.
type tableRun struct {
	Table       config.TableConfig
	Hands       int
	Seed        int64
	Stream      uint64 // Table index, so tables never share a shuffle
	HistoryDir  string
	SnapshotDir string
}

// tableResult summarises a finished table.
type tableResult struct {
	Name       string
	Hands      int
	BiggestPot int
	SidePots   int // Hands that needed more than one pot
	Final      game.GameState
	Stats      []statistics.Statistics // Per seat, in big blinds
}

func (cmd SimulateCmd) Run(g *Globals) error {
	cfg := config.Default()
	if cmd.Config != "" {
		var err error
		if cfg, err = config.Load(cmd.Config); err != nil {
			return err
		}
	}
	if cmd.Hands > 0 {
		cfg.Simulation.Hands = cmd.Hands
	}
	if cmd.Seed != nil {
		cfg.Simulation.Seed = *cmd.Seed
	}
	if cmd.HistoryDir != "" {
		cfg.Simulation.HistoryDir = cmd.HistoryDir
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}
	if debug, err := shared.ParseLevel(cfg.Simulation.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	} else if debug {
		g.Debug = true
	}

	logger := g.Logger()
	status := g.Status()
	engine := game.NewEngine(game.WithLogger(logger))

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	status.Info("Starting simulation", "tables", len(cfg.Tables), "hands", cfg.Simulation.Hands, "seed", cfg.Simulation.Seed)
	start := time.Now()

	results, err := simulate(ctx, engine, cfg, cmd.SnapshotDir)
	if err != nil {
		return err
	}

	status.Info("Simulation complete", "elapsed", time.Since(start).Round(time.Millisecond))
	_, err = fmt.Fprint(g.Out(), renderResults(results))
	return err
}

// simulate runs every table concurrently and returns results in table order.
func simulate(ctx context.Context, engine *game.Engine, cfg *config.Config, snapshotDir string) ([]tableResult, error) {
	results := make([]tableResult, len(cfg.Tables))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Simulation.Concurrency)
	for i, table := range cfg.Tables {
		run := tableRun{
			Table:       table,
			Hands:       cfg.Simulation.Hands,
			Stream:      uint64(i),
			Seed:        cfg.Simulation.Seed,
			HistoryDir:  cfg.Simulation.HistoryDir,
			SnapshotDir: snapshotDir,
		}
		eg.Go(func() error {
			res, err := runTable(ctx, engine, run)
			if err != nil {
				return fmt.Errorf("table %s: %w", table.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runTable plays up to run.Hands hands, stopping early when fewer than two
// seats have chips.
func runTable(ctx context.Context, engine *game.Engine, run tableRun) (tableResult, error) {
	result := tableResult{Name: run.Table.Name}
	result.Stats = make([]statistics.Statistics, len(run.Table.GameSeats()))
	rng := randutil.Derive(run.Seed, run.Stream)

	if run.HistoryDir != "" {
		if err := os.MkdirAll(filepath.Join(run.HistoryDir, run.Table.Name), 0o755); err != nil {
			return result, err
		}
	}

	state, err := engine.StartHand(rng, run.Table.GameSeats(), run.Table.Button, run.Table.SmallBlind, run.Table.BigBlind)
	for err == nil && result.Hands < run.Hands {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		before := startingPoint(state)
		var showdown game.ShowdownResult
		state, showdown, err = playHand(engine, state)
		if err != nil {
			return result, err
		}
		record(result.Stats, before, state, showdown)
		result.Hands++
		result.BiggestPot = max(result.BiggestPot, awarded(state))
		if len(state.Pots) > 1 {
			result.SidePots++
		}

		if run.HistoryDir != "" {
			hand, err := phh.FromState(state, phh.Meta{Table: run.Table.Name})
			if err != nil {
				return result, err
			}
			path := filepath.Join(run.HistoryDir, run.Table.Name, fmt.Sprintf("hand-%05d.phh", result.Hands))
			if err := phh.WriteFile(path, hand); err != nil {
				return result, err
			}
		}

		if state, err = engine.AdvancePhase(state); err != nil {
			return result, err
		}
		if result.Hands < run.Hands {
			var next game.GameState
			if next, err = engine.NextHand(rng, state); err == nil {
				state = next
			}
		}
	}
	if err != nil && !errors.Is(err, game.ErrNotEnoughPlayers) {
		return result, err
	}
	result.Final = state

	if run.SnapshotDir != "" {
		data, err := game.MarshalSnapshot(state)
		if err != nil {
			return result, err
		}
		if err := fileutil.WriteFileAtomic(filepath.Join(run.SnapshotDir, run.Table.Name+".json"), data, 0o644); err != nil {
			return result, err
		}
	}
	return result, nil
}

// playHand checks or calls for every player until the pots are awarded.
func playHand(engine *game.Engine, s game.GameState) (game.GameState, game.ShowdownResult, error) {
	var err error
	for s.Phase != game.Showdown {
		if s.CurrentPlayer < 0 {
			if s, err = engine.AdvancePhase(s); err != nil {
				return s, game.ShowdownResult{}, err
			}
			continue
		}
		action := game.Call()
		if s.ToCall(s.CurrentPlayer) == 0 {
			action = game.Check()
		}
		if s, err = engine.Apply(s, s.CurrentPlayer, action); err != nil {
			return s, game.ShowdownResult{}, err
		}
	}
	return engine.ResolveShowdown(s)
}

// seatStart is a dealt seat's stack before blinds and its position.
type seatStart struct {
	Dealt    bool
	Stack    int
	Position string
}

func startingPoint(s game.GameState) []seatStart {
	out := make([]seatStart, len(s.Players))
	for i, p := range s.Players {
		if p.SittingOut {
			continue
		}
		view, err := sdk.ViewFor(s, i)
		if err != nil {
			continue
		}
		out[i] = seatStart{Dealt: true, Stack: p.Chips + p.TotalBet, Position: view.Position}
	}
	return out
}

// record adds each dealt seat's result for an awarded hand.
func record(stats []statistics.Statistics, before []seatStart, s game.GameState, res game.ShowdownResult) {
	bb := float64(s.BigBlind)
	pot := float64(awarded(s)) / bb
	for i, start := range before {
		if !start.Dealt || i >= len(stats) {
			continue
		}
		stats[i].Add(statistics.HandResult{
			NetBB:    float64(s.Players[i].Chips-start.Stack) / bb,
			Position: start.Position,
			Showdown: !res.Uncontested,
			PotBB:    pot,
		})
	}
}

// awarded sums the chips paid out in the hand's log.
func awarded(s game.GameState) int {
	total := 0
	for _, ev := range s.Log {
		if ev.Kind == game.EventAward {
			total += ev.Amount
		}
	}
	return total
}

func renderResults(results []tableResult) string {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(headerStyle.Render(fmt.Sprintf("Table %s", r.Name)))
		b.WriteString("\n")
		b.WriteString(field("Hands", fmt.Sprintf("%d", r.Hands)))
		b.WriteString(field("Biggest pot", fmt.Sprintf("%d", r.BiggestPot)))
		b.WriteString(field("Side pots", fmt.Sprintf("%d", r.SidePots)))
		for i, p := range r.Final.Players {
			chips := fmt.Sprintf("%d", p.Chips)
			if p.Chips == 0 {
				chips = dimStyle.Render("busted")
			}
			if i < len(r.Stats) && r.Stats[i].Hands > 0 {
				st := &r.Stats[i]
				low, high := st.ConfidenceInterval95()
				chips += dimStyle.Render(fmt.Sprintf("  %+.1f bb/100 (%+.1f to %+.1f)", st.BBPer100(), low*100, high*100))
			}
			b.WriteString(field(p.Name, chips))
		}
		b.WriteString("\n")
	}
	return b.String()
}
