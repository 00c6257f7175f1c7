package game

import "fmt"

// Phase is the stage of a hand.
type Phase uint8

const (
	Waiting Phase = iota
	PreFlop
	Flop
	Turn
	River
	Showdown
)

var phaseNames = [...]string{"waiting", "preflop", "flop", "turn", "river", "showdown"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// IsBetting reports whether players act during the phase.
func (p Phase) IsBetting() bool {
	return p >= PreFlop && p <= River
}

// communityCards returns how many cards are dealt on entering the phase.
func (p Phase) communityCards() int {
	switch p {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	if int(p) >= len(phaseNames) {
		return nil, fmt.Errorf("unknown phase %d", p)
	}
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for i, name := range phaseNames {
		if name == string(text) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}
