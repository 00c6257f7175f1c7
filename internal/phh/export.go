package phh

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lox/holdem/game"
	"github.com/lox/holdem/poker"
)

// ErrHandNotFinished is returned when exporting a hand whose pots have not been awarded.
var ErrHandNotFinished = errors.New("hand not finished")

// Meta carries the table details a GameState does not record.
type Meta struct {
	Table string
	// Time the hand was played. Zero uses the time of the first log event.
	Time time.Time
}

// FromState builds the history of a finished hand: state must be at
// showdown with its pots awarded, before AdvancePhase clears it.
func FromState(state game.GameState, meta Meta) (*HandHistory, error) {
	if state.Phase != game.Showdown || !state.Awarded {
		return nil, fmt.Errorf("export hand %s in %s: %w", state.HandID, state.Phase, ErrHandNotFinished)
	}

	order := dealtOrder(state)
	index := make(map[int]int, len(order))
	for i, seat := range order {
		index[seat] = i
	}
	n := len(order)

	hand := &HandHistory{
		Variant:           VariantNoLimitHoldem,
		Table:             meta.Table,
		SeatCount:         len(state.Players),
		Seats:             make([]int, n),
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            state.BigBlind,
		StartingStacks:    make([]int, n),
		FinishingStacks:   make([]int, n),
		Winnings:          make([]int, n),
		Players:           make([]string, n),
		HandID:            state.HandID,
	}

	for _, ev := range state.Log {
		i, ok := index[ev.Seat]
		if !ok {
			continue
		}
		switch ev.Kind {
		case game.EventBlind:
			hand.BlindsOrStraddles[i] += ev.Amount
		case game.EventAward:
			hand.Winnings[i] += ev.Amount
		}
	}

	for i, seat := range order {
		p := state.Players[seat]
		hand.Seats[i] = seat + 1
		hand.Players[i] = p.Name
		hand.FinishingStacks[i] = p.Chips
		hand.StartingStacks[i] = p.Chips - hand.Winnings[i] + p.TotalBet
		hand.Actions = append(hand.Actions, fmt.Sprintf("d dh p%d %s", i+1, joinCards(p.HoleCards)))
	}

	dealt := 0
	for _, ev := range state.Log {
		if ev.Kind == game.EventStreet {
			hand.Actions = append(hand.Actions, "d db "+joinCards(ev.Cards[dealt:]))
			dealt = len(ev.Cards)
			continue
		}
		if i, ok := index[ev.Seat]; ok {
			if action, ok := FormatEvent(i, ev); ok {
				hand.Actions = append(hand.Actions, action)
			}
		}
	}

	at := meta.Time
	if at.IsZero() && len(state.Log) > 0 {
		at = state.Log[0].At
	}
	if !at.IsZero() {
		hand.Time = at.Format(time.TimeOnly)
		hand.TimeZone = at.Location().String()
		hand.Day, hand.Month, hand.Year = at.Day(), int(at.Month()), at.Year()
	}
	return hand, nil
}

// FormatEvent converts a player's log entry to a PHH action for player
// p<index+1>. It returns false for entries PHH records elsewhere: blinds,
// uncalled bet refunds and awards.
func FormatEvent(index int, ev game.Event) (string, bool) {
	player := fmt.Sprintf("p%d", index+1)
	switch ev.Kind {
	case game.EventAction:
		switch ev.Action {
		case game.ActionFold:
			return player + " f", true
		case game.ActionCheck, game.ActionCall:
			return player + " cc", true
		case game.ActionBet, game.ActionRaise:
			return fmt.Sprintf("%s cbr %d", player, ev.Amount), true
		}
	case game.EventShow:
		return fmt.Sprintf("%s sm %s", player, joinCards(ev.Cards)), true
	}
	return "", false
}

// dealtOrder lists the seats dealt into the hand starting left of the button.
func dealtOrder(state game.GameState) []int {
	var order []int
	n := len(state.Players)
	for i := 1; i <= n; i++ {
		seat := (state.Button + i) % n
		if !state.Players[seat].SittingOut {
			order = append(order, seat)
		}
	}
	return order
}

func joinCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
