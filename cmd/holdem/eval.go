package main

import (
	"fmt"
	"strings"

	"github.com/lox/holdem/poker"
	"github.com/lox/holdem/sdk/classification"
)

// EvalCmd evaluates hole cards against an optional board.
type EvalCmd struct {
	Hole  string `arg:"" help:"Hole cards, e.g. AsKd"`
	Board string `short:"b" help:"Community cards, e.g. 'Qs Js 2c'"`
}

func (cmd EvalCmd) Run(g *Globals) error {
	hole, board, err := parseHoleAndBoard(cmd.Hole, cmd.Board)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(g.Out(), renderEval(hole, board))
	return err
}

func parseHoleAndBoard(holeStr, boardStr string) (hole, board []poker.Card, err error) {
	hole, err = poker.ParseCards(holeStr)
	if err != nil {
		return nil, nil, fmt.Errorf("hole cards: %w", err)
	}
	if len(hole) != 2 {
		return nil, nil, fmt.Errorf("hole cards: want 2, got %d", len(hole))
	}
	if boardStr != "" {
		board, err = poker.ParseCards(boardStr)
		if err != nil {
			return nil, nil, fmt.Errorf("board: %w", err)
		}
	}
	if len(board) > 5 {
		return nil, nil, fmt.Errorf("board: want at most 5 cards, got %d", len(board))
	}
	used := poker.NewHand(hole...)
	for _, c := range board {
		if used.HasCard(c) {
			return nil, nil, fmt.Errorf("duplicate card found: %s", c)
		}
		used.AddCard(c)
	}
	return hole, board, nil
}

func renderEval(hole, board []poker.Card) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s", poker.FormatCards(hole), poker.FormatCards(board))))
	b.WriteString("\n\n")

	b.WriteString(field("Starting", fmt.Sprintf("%s (%s)", poker.StartingHand(hole[0], hole[1]), poker.CategorizeHoleCards(hole))))

	result := poker.Evaluate(hole, board)
	if result.Incomplete {
		b.WriteString(field("Hand", dimStyle.Render(result.Description)))
	} else {
		b.WriteString(field("Hand", handStyle.Render(result.String())))
		b.WriteString(field("Score", fmt.Sprintf("%d", result.Score)))
	}
	b.WriteString(field("Strength", fmt.Sprintf("%.4f", result.Strength())))

	if len(board) >= 3 {
		draws := classification.DetectDraws(hole, board)
		if draws.HasDraw() {
			b.WriteString(field("Draws", draws.String()))
		}
		texture := classification.AnalyzeBoard(board)
		b.WriteString(field("Board", describeTexture(texture)))
	}
	return b.String()
}

func describeTexture(t classification.BoardTexture) string {
	var parts []string
	parts = append(parts, t.Dryness.String())
	switch {
	case t.Monotone:
		parts = append(parts, "monotone")
	case t.TwoTone:
		parts = append(parts, "two-tone")
	}
	if t.Paired {
		parts = append(parts, "paired")
	}
	parts = append(parts, fmt.Sprintf("spread %d", t.RankSpread), fmt.Sprintf("connected %d", t.Connectedness))
	return strings.Join(parts, ", ")
}
