package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/holdem/game"
	"github.com/lox/holdem/internal/phh"
	"github.com/lox/holdem/poker"
)

// InspectCmd prints a JSON snapshot or a PHH hand history.
type InspectCmd struct {
	File string `arg:"" type:"existingfile" help:"Snapshot (.json) or hand history (.phh) file"`
}

func (cmd InspectCmd) Run(g *Globals) error {
	var out string
	switch strings.ToLower(filepath.Ext(cmd.File)) {
	case ".phh", ".toml":
		hand, err := phh.ReadFile(cmd.File)
		if err != nil {
			return err
		}
		out = renderHistory(hand)
	default:
		data, err := os.ReadFile(cmd.File)
		if err != nil {
			return err
		}
		state, err := game.UnmarshalSnapshot(data)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.File, err)
		}
		out = renderState(state)
	}
	_, err := fmt.Fprint(g.Out(), out)
	return err
}

func renderState(s game.GameState) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Hand %s", s.HandID)))
	b.WriteString("\n")
	b.WriteString(field("Phase", s.Phase.String()))
	b.WriteString(field("Blinds", fmt.Sprintf("%d/%d", s.SmallBlind, s.BigBlind)))
	if len(s.Community) > 0 {
		b.WriteString(field("Board", handStyle.Render(poker.FormatCards(s.Community))))
	}
	for i, pot := range s.Pots {
		b.WriteString(field(potLabel(i), fmt.Sprintf("%d %v", pot.Amount, pot.Eligible)))
	}

	b.WriteString("\n")
	for _, p := range s.Players {
		var flags []string
		switch {
		case p.SittingOut:
			flags = append(flags, "sitting out")
		case p.Folded:
			flags = append(flags, "folded")
		case p.AllIn:
			flags = append(flags, "all-in")
		}
		if p.Seat == s.Button {
			flags = append(flags, "button")
		}
		if p.Seat == s.CurrentPlayer {
			flags = append(flags, "to act")
		}
		line := fmt.Sprintf("%d chips", p.Chips)
		if p.Bet > 0 {
			line += fmt.Sprintf(", bet %d", p.Bet)
		}
		if len(p.HoleCards) > 0 {
			line += " [" + poker.FormatCards(p.HoleCards) + "]"
		}
		if len(flags) > 0 {
			line += " " + dimStyle.Render("("+strings.Join(flags, ", ")+")")
		}
		b.WriteString(field(p.Name, line))
	}

	if len(s.Log) > 0 {
		b.WriteString("\n")
		b.WriteString(game.FormatLog(s.Log))
		b.WriteString("\n")
	}
	return b.String()
}

func potLabel(i int) string {
	if i == 0 {
		return "Main pot"
	}
	return fmt.Sprintf("Side pot %d", i)
}

func renderHistory(h *phh.HandHistory) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Hand %s", h.HandID)))
	b.WriteString("\n")
	if h.Table != "" {
		b.WriteString(field("Table", h.Table))
	}
	b.WriteString(field("Variant", h.Variant))
	b.WriteString("\n")
	for i, name := range h.Players {
		net := 0
		if i < len(h.FinishingStacks) && i < len(h.StartingStacks) {
			net = h.FinishingStacks[i] - h.StartingStacks[i]
		}
		result := fmt.Sprintf("%+d", net)
		switch {
		case net > 0:
			result = winStyle.Render(result)
		case net == 0:
			result = dimStyle.Render(result)
		}
		b.WriteString(field(fmt.Sprintf("p%d %s", i+1, name), result))
	}
	b.WriteString("\n")
	for _, action := range h.Actions {
		b.WriteString(action)
		b.WriteString("\n")
	}
	return b.String()
}
