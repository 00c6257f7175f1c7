package game

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/lox/holdem/poker"
)

// EventKind identifies an entry in the hand log.
type EventKind uint8

const (
	EventHandStart EventKind = iota + 1
	EventBlind
	EventAction
	EventStreet
	EventRefund
	EventShow
	EventAward
)

var eventKindNames = [...]string{"", "hand_start", "blind", "action", "street", "refund", "show", "award"}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && k != 0 {
		return eventKindNames[k]
	}
	return "unknown"
}

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *EventKind) UnmarshalText(text []byte) error {
	for i, name := range eventKindNames {
		if i > 0 && name == string(text) {
			*k = EventKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", text)
}

// Event is one human readable entry in a hand's action log.
type Event struct {
	Kind   EventKind    `json:"kind"`
	At     time.Time    `json:"at"`
	Seat   int          `json:"seat"`
	Player string       `json:"player,omitempty"`
	Action ActionKind   `json:"action,omitempty"`
	Amount int          `json:"amount,omitempty"` // Chips moved; for bets and raises the total bet
	AllIn  bool         `json:"all_in,omitempty"`
	Phase  Phase        `json:"phase"` // Phase the event happened in
	Cards  []poker.Card `json:"cards,omitempty"`
	Detail string       `json:"detail,omitempty"` // Hand ID, blind name, hand description or pot name
}

func (e Event) clone() Event {
	e.Cards = slices.Clone(e.Cards)
	return e
}

// String formats the event the way a hand history reads.
func (e Event) String() string {
	var b strings.Builder
	switch e.Kind {
	case EventHandStart:
		fmt.Fprintf(&b, "*** HAND %s *** %s has the button", e.Detail, e.Player)
	case EventBlind:
		fmt.Fprintf(&b, "%s posts %s %d", e.Player, e.Detail, e.Amount)
	case EventAction:
		switch e.Action {
		case ActionFold:
			fmt.Fprintf(&b, "%s folds", e.Player)
		case ActionCheck:
			fmt.Fprintf(&b, "%s checks", e.Player)
		case ActionCall:
			fmt.Fprintf(&b, "%s calls %d", e.Player, e.Amount)
		case ActionBet:
			fmt.Fprintf(&b, "%s bets %d", e.Player, e.Amount)
		case ActionRaise:
			fmt.Fprintf(&b, "%s raises to %d", e.Player, e.Amount)
		default:
			fmt.Fprintf(&b, "%s acts", e.Player)
		}
	case EventStreet:
		fmt.Fprintf(&b, "*** %s *** [%s]", strings.ToUpper(e.Phase.String()), poker.FormatCards(e.Cards))
	case EventRefund:
		fmt.Fprintf(&b, "Uncalled bet of %d returned to %s", e.Amount, e.Player)
	case EventShow:
		fmt.Fprintf(&b, "%s shows [%s] (%s)", e.Player, poker.FormatCards(e.Cards), e.Detail)
	case EventAward:
		fmt.Fprintf(&b, "%s wins %d from %s", e.Player, e.Amount, e.Detail)
	default:
		return "unknown event"
	}
	if e.AllIn {
		b.WriteString(" (all-in)")
	}
	return b.String()
}

// FormatLog renders the log one event per line.
func FormatLog(events []Event) string {
	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
