package game

import (
	"fmt"
)

// Apply performs action for seat and returns the resulting state.
//
// The seat must be the current player during a betting street. Check needs
// nothing to call, Call needs something to call, Bet opens an unbet street
// and Raise increases an existing bet by its amount. A bet or raise smaller
// than MinRaise is only accepted when it puts the player all-in, and any
// contribution larger than the stack is reduced to the stack.
func (e *Engine) Apply(s GameState, seat int, action Action) (GameState, error) {
	if err := validateTurn(s, seat); err != nil {
		e.reject(s, seat, action, err)
		return s, err
	}

	next := s.Clone()
	p := &next.Players[seat]
	ev := Event{Kind: EventAction, Seat: seat, Player: p.Name, Action: action.kind}

	switch action.kind {
	case ActionFold:
		p.Folded = true

	case ActionCheck:
		if p.Bet != next.CurrentBet {
			err := fmt.Errorf("check facing %d to call: %w", next.CurrentBet-p.Bet, ErrIllegalAction)
			e.reject(s, seat, action, err)
			return s, err
		}

	case ActionCall:
		if next.CurrentBet <= p.Bet {
			err := fmt.Errorf("call with nothing to call: %w", ErrIllegalAction)
			e.reject(s, seat, action, err)
			return s, err
		}
		ev.Amount = p.contribute(next.CurrentBet - p.Bet)

	case ActionBet, ActionRaise:
		target, err := betTarget(next, *p, action)
		if err != nil {
			e.reject(s, seat, action, err)
			return s, err
		}
		p.contribute(target - p.Bet)
		full := target-next.CurrentBet >= next.MinRaise
		if full {
			next.MinRaise = target - next.CurrentBet
		}
		next.CurrentBet = target
		// Everyone else has to respond to the new bet. A short all-in only
		// lets players who already acted re-raise once the total they face
		// has grown by a full raise.
		for i := range next.Players {
			o := &next.Players[i]
			switch {
			case full:
				o.RaiseClosed = false
			case i != seat && (o.Acted || o.RaiseClosed):
				o.RaiseClosed = target-o.Bet < next.MinRaise
			}
			o.Acted = false
		}
		ev.Amount = target

	default:
		err := fmt.Errorf("unknown action %d: %w", action.kind, ErrIllegalAction)
		e.reject(s, seat, action, err)
		return s, err
	}

	p.Acted = true
	ev.AllIn = p.AllIn && action.kind != ActionFold && action.kind != ActionCheck
	e.record(&next, ev)

	e.logger.Debug().
		Str("hand_id", next.HandID).
		Int("seat", seat).
		Str("action", action.String()).
		Int("chips", p.Chips).
		Int("current_bet", next.CurrentBet).
		Msg("action applied")

	next.Pots = BuildPots(next.Players)
	switch {
	case next.countPlayers(Player.InHand) == 1:
		e.endUncontested(&next)
	case isRoundComplete(next):
		next.CurrentPlayer = -1
	default:
		next.CurrentPlayer = next.nextToAct(seat)
	}
	checkChips(next)
	return next, nil
}

// Fold folds seat's hand.
func (e *Engine) Fold(s GameState, seat int) (GameState, error) {
	return e.Apply(s, seat, Fold())
}

// Check checks for seat.
func (e *Engine) Check(s GameState, seat int) (GameState, error) {
	return e.Apply(s, seat, Check())
}

// Call calls the current bet for seat.
func (e *Engine) Call(s GameState, seat int) (GameState, error) {
	return e.Apply(s, seat, Call())
}

// BetAmount opens the betting for seat with amount chips.
func (e *Engine) BetAmount(s GameState, seat, amount int) (GameState, error) {
	action, err := Bet(amount)
	if err != nil {
		return s, err
	}
	return e.Apply(s, seat, action)
}

// RaiseBy raises the current bet by amount chips for seat.
func (e *Engine) RaiseBy(s GameState, seat, amount int) (GameState, error) {
	action, err := Raise(amount)
	if err != nil {
		return s, err
	}
	return e.Apply(s, seat, action)
}

// IsRoundComplete reports whether the current betting round is over: every
// player still in the hand has matched the current bet or is all-in, and
// everyone who can still act has done so since the last bet or raise.
func (e *Engine) IsRoundComplete(s GameState) bool {
	return isRoundComplete(s)
}

// LegalActions returns the action kinds seat may take right now.
func (e *Engine) LegalActions(s GameState, seat int) []ActionKind {
	return s.LegalActions(seat)
}

// LegalActions returns the action kinds seat may take right now, or nil when
// it is not seat's turn.
func (s GameState) LegalActions(seat int) []ActionKind {
	if validateTurn(s, seat) != nil {
		return nil
	}
	p := s.Players[seat]
	actions := []ActionKind{ActionFold}
	if p.Bet == s.CurrentBet {
		actions = append(actions, ActionCheck)
	} else {
		actions = append(actions, ActionCall)
	}
	if !s.canBetOrRaise(p) {
		return actions
	}
	switch {
	case s.CurrentBet == 0:
		actions = append(actions, ActionBet)
	case p.Chips+p.Bet > s.CurrentBet:
		actions = append(actions, ActionRaise)
	}
	return actions
}

// canBetOrRaise reports whether p may put in more than a call: betting must
// be open to them and someone else must still be able to respond.
func (s GameState) canBetOrRaise(p Player) bool {
	if p.RaiseClosed {
		return false
	}
	return s.countPlayers(func(o Player) bool { return o.Seat != p.Seat && o.CanAct() }) > 0
}

func validateTurn(s GameState, seat int) error {
	if !s.Phase.IsBetting() {
		return fmt.Errorf("act during %s: %w", s.Phase, ErrNoBettingRound)
	}
	if s.CurrentPlayer < 0 {
		return fmt.Errorf("seat %d acts after the betting round closed: %w", seat, ErrNotYourTurn)
	}
	if seat != s.CurrentPlayer {
		return fmt.Errorf("seat %d acts, seat %d to act: %w", seat, s.CurrentPlayer, ErrNotYourTurn)
	}
	return nil
}

// betTarget returns the Bet a bet or raise brings the player to.
func betTarget(s GameState, p Player, action Action) (int, error) {
	var target int
	switch action.kind {
	case ActionBet:
		if s.CurrentBet != 0 {
			return 0, fmt.Errorf("bet facing a bet of %d, raise instead: %w", s.CurrentBet, ErrIllegalAction)
		}
		target = p.Bet + action.amount
	case ActionRaise:
		if s.CurrentBet == 0 {
			return 0, fmt.Errorf("raise with no bet to raise, bet instead: %w", ErrIllegalAction)
		}
		target = s.CurrentBet + action.amount
	}
	if action.amount <= 0 {
		return 0, fmt.Errorf("%s %d: %w", action.kind, action.amount, ErrInvalidAmount)
	}
	if p.RaiseClosed {
		return 0, fmt.Errorf("%s after a short all-in did not reopen the betting: %w", action.kind, ErrIllegalAction)
	}
	if !s.canBetOrRaise(p) {
		return 0, fmt.Errorf("%s with no opponent left to act: %w", action.kind, ErrIllegalAction)
	}

	stack := p.Chips + p.Bet
	if stack <= s.CurrentBet {
		return 0, fmt.Errorf("%s with %d chips facing %d, call instead: %w", action.kind, p.Chips, s.CurrentBet-p.Bet, ErrIllegalAction)
	}
	allIn := target >= stack
	target = min(target, stack)
	if target-s.CurrentBet < s.MinRaise && !allIn {
		return 0, fmt.Errorf("%s of %d, minimum is %d: %w", action.kind, target-s.CurrentBet, s.MinRaise, ErrBelowMinimum)
	}
	return target, nil
}

func isRoundComplete(s GameState) bool {
	if !s.Phase.IsBetting() {
		return false
	}
	if s.countPlayers(Player.InHand) <= 1 {
		return true
	}
	actors := 0
	for _, p := range s.Players {
		if !p.CanAct() {
			continue
		}
		if p.Bet < s.CurrentBet {
			return false
		}
		actors++
	}
	if actors <= 1 {
		return true
	}
	for _, p := range s.Players {
		if p.CanAct() && !p.Acted {
			return false
		}
	}
	return true
}

// nextToAct returns the next seat after from that still owes an action.
func (s GameState) nextToAct(from int) int {
	return s.nextSeat(from, func(p Player) bool {
		return p.CanAct() && (!p.Acted || p.Bet < s.CurrentBet)
	})
}

func (e *Engine) reject(s GameState, seat int, action Action, err error) {
	e.logger.Debug().
		Str("hand_id", s.HandID).
		Int("seat", seat).
		Str("action", action.String()).
		Err(err).
		Msg("action rejected")
}
