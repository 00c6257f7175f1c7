// Package analysis estimates hand equity by Monte Carlo simulation and
// parses starting hand ranges.
package analysis

import (
	"errors"
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/lox/holdem/poker"
)

// ErrInvalidEquityInput is returned when the cards or counts passed to an
// equity calculation cannot describe a real deal.
var ErrInvalidEquityInput = errors.New("invalid equity input")

// MaxOpponents is the most random opponents a full board leaves cards for.
const MaxOpponents = 22

// EquityResult represents the result of an equity calculation
type EquityResult struct {
	Wins             int
	Ties             int
	TotalSimulations int
	// TieEquity is the sum of pot shares won in tied runouts: 1/2 for a
	// two-way tie, 1/3 for three-way and so on.
	TieEquity float64
}

// WinRate returns the share of runouts won outright.
func (e EquityResult) WinRate() float64 {
	if e.TotalSimulations == 0 {
		return 0
	}
	return float64(e.Wins) / float64(e.TotalSimulations)
}

// TieRate returns the share of runouts that split the pot.
func (e EquityResult) TieRate() float64 {
	if e.TotalSimulations == 0 {
		return 0
	}
	return float64(e.Ties) / float64(e.TotalSimulations)
}

// LossRate returns the share of runouts lost.
func (e EquityResult) LossRate() float64 {
	if e.TotalSimulations == 0 {
		return 0
	}
	return float64(e.TotalSimulations-e.Wins-e.Ties) / float64(e.TotalSimulations)
}

// Equity returns the expected share of the pot, in [0, 1].
func (e EquityResult) Equity() float64 {
	if e.TotalSimulations == 0 {
		return 0
	}
	return (float64(e.Wins) + e.TieEquity) / float64(e.TotalSimulations)
}

// ConfidenceInterval returns the 95% confidence interval for equity
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	n := float64(e.TotalSimulations)
	if n == 0 {
		return 0, 0
	}
	equity := e.Equity()
	// Normal approximation to the binomial proportion.
	margin := 1.96 * math.Sqrt(equity*(1-equity)/n)
	return math.Max(0, equity-margin), math.Min(1, equity+margin)
}

func (e EquityResult) String() string {
	lower, upper := e.ConfidenceInterval()
	return fmt.Sprintf("equity %.1f%% (95%% CI %.1f%%-%.1f%%), win %.1f%% tie %.1f%% over %d runouts",
		e.Equity()*100, lower*100, upper*100, e.WinRate()*100, e.TieRate()*100, e.TotalSimulations)
}

// CalculateEquity estimates the equity of hero's two hole cards against a
// number of opponents holding random cards, completing the board at random.
// The same rng seed always gives the same result.
func CalculateEquity(rng *rand.Rand, hero, board []poker.Card, opponents, simulations int) (EquityResult, error) {
	if opponents < 1 || opponents > MaxOpponents {
		return EquityResult{}, fmt.Errorf("%w: %d opponents, want 1-%d", ErrInvalidEquityInput, opponents, MaxOpponents)
	}
	return simulate(rng, hero, board, simulations, make([]*Range, opponents))
}

// CalculateRangeEquity estimates hero's equity against one opponent per
// range, each dealt a random hand from their range.
func CalculateRangeEquity(rng *rand.Rand, hero, board []poker.Card, villains []*Range, simulations int) (EquityResult, error) {
	if len(villains) < 1 || len(villains) > MaxOpponents {
		return EquityResult{}, fmt.Errorf("%w: %d ranges, want 1-%d", ErrInvalidEquityInput, len(villains), MaxOpponents)
	}
	for i, r := range villains {
		if r == nil || r.Size() == 0 {
			return EquityResult{}, fmt.Errorf("%w: range %d is empty", ErrInvalidEquityInput, i)
		}
	}
	return simulate(rng, hero, board, simulations, villains)
}

// simulate runs the runouts. A nil range deals that opponent random cards.
func simulate(rng *rand.Rand, hero, board []poker.Card, simulations int, villains []*Range) (EquityResult, error) {
	if rng == nil {
		panic("rng is required to calculate equity")
	}
	if simulations <= 0 {
		return EquityResult{}, fmt.Errorf("%w: %d simulations", ErrInvalidEquityInput, simulations)
	}
	if len(hero) != 2 {
		return EquityResult{}, fmt.Errorf("%w: %d hole cards, want 2", ErrInvalidEquityInput, len(hero))
	}
	if len(board) > 5 {
		return EquityResult{}, fmt.Errorf("%w: %d board cards, want at most 5", ErrInvalidEquityInput, len(board))
	}
	var known poker.Hand
	for _, c := range append(append([]poker.Card(nil), hero...), board...) {
		if !c.IsValid() || known.HasCard(c) {
			return EquityResult{}, fmt.Errorf("%w: card %s is invalid or repeated", ErrInvalidEquityInput, c)
		}
		known.AddCard(c)
	}
	missing := 5 - len(board)
	if 2+len(board)+2*len(villains)+missing > 52 {
		return EquityResult{}, fmt.Errorf("%w: not enough cards for %d opponents", ErrInvalidEquityInput, len(villains))
	}

	combos := make([][]poker.Hand, len(villains))
	for i, r := range villains {
		if r != nil {
			combos[i] = r.Hands()
		}
	}

	var result EquityResult
	runout := make([]poker.Card, 0, 5)
	opponents := make([]poker.Hand, len(villains))
	stub := make([]poker.Card, 0, 52)

	for result.TotalSimulations < simulations {
		dead := known
		ok := true
		for i, r := range villains {
			if r == nil {
				continue
			}
			h, found := r.sample(rng, combos[i], dead)
			if !found {
				ok = false
				break
			}
			opponents[i] = h
			dead |= h
		}
		if !ok {
			return result, fmt.Errorf("%w: ranges cannot be dealt around the known cards", ErrInvalidEquityInput)
		}

		stub = stub[:0]
		for _, c := range poker.NewDeck().Cards() {
			if !dead.HasCard(c) {
				stub = append(stub, c)
			}
		}
		next := drawer(rng, stub)

		runout = append(runout[:0], board...)
		for range missing {
			runout = append(runout, next())
		}
		for i, r := range villains {
			if r == nil {
				opponents[i] = poker.NewHand(next(), next())
			}
		}

		heroScore := poker.Evaluate(hero, runout).Score
		best, tied := 0, 0
		for _, h := range opponents {
			score := poker.Evaluate(h.Cards(), runout).Score
			switch {
			case score > best:
				best, tied = score, 1
			case score == best:
				tied++
			}
		}

		switch {
		case heroScore > best:
			result.Wins++
		case heroScore == best:
			result.Ties++
			result.TieEquity += 1 / float64(tied+1)
		}
		result.TotalSimulations++
	}
	return result, nil
}

// drawer deals cards from a partial Fisher-Yates shuffle of cards.
func drawer(rng *rand.Rand, cards []poker.Card) func() poker.Card {
	i := 0
	return func() poker.Card {
		j := i + rng.IntN(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
		i++
		return cards[i-1]
	}
}
