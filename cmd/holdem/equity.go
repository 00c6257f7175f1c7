package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/sdk/analysis"
)

// EquityCmd estimates hero equity against random hands or ranges.
type EquityCmd struct {
	Hole        string   `arg:"" help:"Hero hole cards, e.g. AsKd"`
	Board       string   `short:"b" help:"Community cards, e.g. 'Td 7s 8h'"`
	Opponents   int      `short:"o" help:"Opponents holding random cards" default:"1"`
	Ranges      []string `short:"r" name:"range" help:"Opponent range such as 'TT+,AQs+'; repeat for each opponent"`
	Simulations int      `short:"n" help:"Number of Monte Carlo runouts" default:"20000"`
	Seed        *int64   `help:"Random seed for reproducible results"`
}

func (cmd EquityCmd) Run(g *Globals) error {
	hole, board, err := parseHoleAndBoard(cmd.Hole, cmd.Board)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if cmd.Seed != nil {
		seed = *cmd.Seed
	}
	rng := randutil.New(seed)

	start := time.Now()
	var result analysis.EquityResult
	if len(cmd.Ranges) > 0 {
		ranges := make([]*analysis.Range, len(cmd.Ranges))
		for i, notation := range cmd.Ranges {
			if ranges[i], err = analysis.ParseRange(notation); err != nil {
				return err
			}
		}
		result, err = analysis.CalculateRangeEquity(rng, hole, board, ranges, cmd.Simulations)
	} else {
		result, err = analysis.CalculateEquity(rng, hole, board, cmd.Opponents, cmd.Simulations)
	}
	if err != nil {
		return err
	}

	g.Status().Debug("equity calculated", "seed", seed, "runouts", result.TotalSimulations, "elapsed", time.Since(start))
	_, err = fmt.Fprint(g.Out(), renderEquity(cmd.Hole, cmd.Board, cmd.opponentLabel(), result))
	return err
}

func (cmd EquityCmd) opponentLabel() string {
	if len(cmd.Ranges) > 0 {
		return strings.Join(cmd.Ranges, " | ")
	}
	if cmd.Opponents == 1 {
		return "1 random hand"
	}
	return fmt.Sprintf("%d random hands", cmd.Opponents)
}

func renderEquity(hole, board, against string, r analysis.EquityResult) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Equity"))
	b.WriteString("\n\n")
	b.WriteString(field("Hero", handStyle.Render(hole)))
	if board != "" {
		b.WriteString(field("Board", board))
	}
	b.WriteString(field("Against", against))
	b.WriteString(field("Equity", winStyle.Render(fmt.Sprintf("%.2f%%", r.Equity()*100))))
	lower, upper := r.ConfidenceInterval()
	b.WriteString(field("95% CI", fmt.Sprintf("%.2f%% - %.2f%%", lower*100, upper*100)))
	b.WriteString(field("Win", fmt.Sprintf("%.2f%%", r.WinRate()*100)))
	b.WriteString(field("Tie", tieStyle.Render(fmt.Sprintf("%.2f%%", r.TieRate()*100))))
	b.WriteString(field("Runouts", fmt.Sprintf("%d", r.TotalSimulations)))
	return b.String()
}
