package game

import "fmt"

// checkChips panics if chips have been created or destroyed. Before the pots
// are paid every contributed chip must be in a pot; afterwards the stacks
// alone must add up to the starting total.
func checkChips(s GameState) {
	if err := verifyChips(s); err != nil {
		panic(err)
	}
}

func verifyChips(s GameState) error {
	stacks, contributed := 0, 0
	for _, p := range s.Players {
		if p.Chips < 0 || p.Bet < 0 || p.TotalBet < p.Bet {
			return fmt.Errorf("%w: seat %d has chips %d, bet %d, total bet %d", ErrChipConservation, p.Seat, p.Chips, p.Bet, p.TotalBet)
		}
		stacks += p.Chips
		contributed += p.TotalBet
	}
	pots := s.PotTotal()

	if s.Awarded {
		if pots != 0 || stacks != s.StartingTotal {
			return fmt.Errorf("%w: after award stacks %d, pots %d, started with %d", ErrChipConservation, stacks, pots, s.StartingTotal)
		}
		return nil
	}
	if pots != contributed || stacks+pots != s.StartingTotal {
		return fmt.Errorf("%w: stacks %d, pots %d, contributed %d, started with %d", ErrChipConservation, stacks, pots, contributed, s.StartingTotal)
	}
	return nil
}
