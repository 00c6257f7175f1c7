package game

import (
	"slices"
	"strconv"
)

// Pot is the main pot or a side pot. Cap is the per-player contribution
// level the pot reaches up to.
type Pot struct {
	Amount   int   `json:"amount"`
	Cap      int   `json:"cap"`
	Eligible []int `json:"eligible"` // Seats that can win this pot
}

func (p Pot) clone() Pot {
	p.Eligible = slices.Clone(p.Eligible)
	return p
}

// Refund is chips returned to the player whose last bet nobody matched.
type Refund struct {
	Seat   int
	Amount int
}

// BuildPots derives the main pot and side pots from each player's total
// contribution. Every distinct contribution level starts a tier that
// collects up to that level from every contributor, folded or not, and is
// eligible to the players still in hand who reached it. Adjacent tiers
// with the same eligible seats are merged, and a tier nobody can win is
// added to the one below it.
func BuildPots(players []Player) []Pot {
	var levels []int
	for _, p := range players {
		if p.TotalBet > 0 && !slices.Contains(levels, p.TotalBet) {
			levels = append(levels, p.TotalBet)
		}
	}
	slices.Sort(levels)

	var pots []Pot
	prev, carry := 0, 0
	for _, level := range levels {
		amount := carry
		var eligible []int
		for _, p := range players {
			amount += min(p.TotalBet, level) - min(p.TotalBet, prev)
			if p.TotalBet >= level && p.InHand() {
				eligible = append(eligible, p.Seat)
			}
		}
		prev, carry = level, 0

		last := len(pots) - 1
		switch {
		case len(eligible) == 0 && last < 0:
			carry = amount
		case len(eligible) == 0:
			pots[last].Amount += amount
		case last >= 0 && slices.Equal(pots[last].Eligible, eligible):
			pots[last].Amount += amount
			pots[last].Cap = level
		default:
			pots = append(pots, Pot{Amount: amount, Cap: level, Eligible: eligible})
		}
	}
	if carry > 0 {
		pots = append(pots, Pot{Amount: carry, Cap: prev})
	}
	return pots
}

// ReturnUncalled gives the top contributor back whatever they put in above
// the second highest contribution. The input slice is not modified.
func ReturnUncalled(players []Player) ([]Player, Refund) {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = p.clone()
	}

	top, second := -1, 0
	for i, p := range out {
		switch {
		case top < 0 || p.TotalBet > out[top].TotalBet:
			if top >= 0 {
				second = out[top].TotalBet
			}
			top = i
		case p.TotalBet > second:
			second = p.TotalBet
		}
	}
	if top < 0 || out[top].TotalBet <= second {
		return out, Refund{Seat: -1}
	}

	p := &out[top]
	excess := p.TotalBet - second
	// The excess always comes from the current street: a previous street
	// ended with the top contribution matched.
	excess = min(excess, p.Bet)
	p.Bet -= excess
	p.TotalBet -= excess
	p.Chips += excess
	if p.Chips > 0 {
		p.AllIn = false
	}
	return out, Refund{Seat: p.Seat, Amount: excess}
}

// potName labels pots for logs: "main pot", "side pot 1", ...
func potName(i int) string {
	if i == 0 {
		return "main pot"
	}
	return "side pot " + strconv.Itoa(i)
}
