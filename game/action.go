package game

import "fmt"

// ActionKind identifies what an Action does.
type ActionKind uint8

const (
	ActionFold ActionKind = iota + 1
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
)

func (k ActionKind) String() string {
	switch k {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionBet:
		return "bet"
	case ActionRaise:
		return "raise"
	default:
		return "unknown"
	}
}

func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ActionKind) UnmarshalText(text []byte) error {
	for kind := ActionFold; kind <= ActionRaise; kind++ {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	if string(text) == "unknown" {
		*k = 0
		return nil
	}
	return fmt.Errorf("unknown action %q", text)
}

// Action is a player decision. Its fields are unexported so only the
// constructors below can build one; the zero Action is rejected by the engine.
type Action struct {
	kind   ActionKind
	amount int
}

// Fold gives up the hand.
func Fold() Action { return Action{kind: ActionFold} }

// Check passes when there is nothing to call.
func Check() Action { return Action{kind: ActionCheck} }

// Call matches the current bet, or puts in the whole stack if it is smaller.
func Call() Action { return Action{kind: ActionCall} }

// Bet opens the betting on a street with amount chips.
func Bet(amount int) (Action, error) {
	if amount <= 0 {
		return Action{}, fmt.Errorf("bet %d: %w", amount, ErrInvalidAmount)
	}
	return Action{kind: ActionBet, amount: amount}, nil
}

// Raise increases the current bet by amount chips.
func Raise(amount int) (Action, error) {
	if amount <= 0 {
		return Action{}, fmt.Errorf("raise %d: %w", amount, ErrInvalidAmount)
	}
	return Action{kind: ActionRaise, amount: amount}, nil
}

// Kind returns the action kind.
func (a Action) Kind() ActionKind { return a.kind }

// Amount returns the bet size or raise increment, zero for other actions.
func (a Action) Amount() int { return a.amount }

func (a Action) String() string {
	switch a.kind {
	case ActionBet, ActionRaise:
		return fmt.Sprintf("%s %d", a.kind, a.amount)
	default:
		return a.kind.String()
	}
}
