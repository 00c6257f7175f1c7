package game

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/lox/holdem/poker"
)

// ErrInvalidSnapshot is returned when a snapshot cannot be turned back into
// a consistent GameState.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

const snapshotVersion = 1

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// snapshot is the wire form of a GameState. Cards are written as "As"
// style strings, the deck as the list of undealt cards and pot
// eligibility as player IDs rather than seat indices.
type snapshot struct {
	Version       int           `json:"version"`
	HandID        string        `json:"hand_id"`
	Phase         Phase         `json:"phase"`
	Players       []Player      `json:"players"`
	Community     []poker.Card  `json:"community"`
	Deck          []poker.Card  `json:"deck"`
	Button        int           `json:"button"`
	CurrentPlayer int           `json:"current_player"`
	CurrentBet    int           `json:"current_bet"`
	MinRaise      int           `json:"min_raise"`
	SmallBlind    int           `json:"small_blind"`
	BigBlind      int           `json:"big_blind"`
	Pots          []snapshotPot `json:"pots"`
	StartingTotal int           `json:"starting_total"`
	Awarded       bool          `json:"awarded"`
	Log           []Event       `json:"log,omitempty"`
}

type snapshotPot struct {
	Amount   int      `json:"amount"`
	Cap      int      `json:"cap"`
	Eligible []string `json:"eligible"` // Player IDs
}

// MarshalSnapshot encodes the state as JSON.
func MarshalSnapshot(s GameState) ([]byte, error) {
	pots := make([]snapshotPot, len(s.Pots))
	for i, pot := range s.Pots {
		ids := make([]string, len(pot.Eligible))
		for j, seat := range pot.Eligible {
			if seat < 0 || seat >= len(s.Players) {
				return nil, fmt.Errorf("%w: %s lists seat %d", ErrInvalidSnapshot, potName(i), seat)
			}
			ids[j] = s.Players[seat].ID
		}
		pots[i] = snapshotPot{Amount: pot.Amount, Cap: pot.Cap, Eligible: ids}
	}
	snap := snapshot{
		Version:       snapshotVersion,
		HandID:        s.HandID,
		Phase:         s.Phase,
		Players:       s.Players,
		Community:     s.Community,
		Deck:          s.Deck.Cards(),
		Button:        s.Button,
		CurrentPlayer: s.CurrentPlayer,
		CurrentBet:    s.CurrentBet,
		MinRaise:      s.MinRaise,
		SmallBlind:    s.SmallBlind,
		BigBlind:      s.BigBlind,
		Pots:          pots,
		StartingTotal: s.StartingTotal,
		Awarded:       s.Awarded,
		Log:           s.Log,
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes a state written by MarshalSnapshot and checks
// that it is internally consistent: no card appears twice, seats and
// indices are in range and chips add up.
func UnmarshalSnapshot(data []byte) (GameState, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return GameState{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if snap.Version != snapshotVersion {
		return GameState{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, snap.Version)
	}

	deck, err := poker.NewDeckFromCards(snap.Deck)
	if err != nil {
		return GameState{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	pots, err := decodePots(snap.Pots, snap.Players)
	if err != nil {
		return GameState{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	s := GameState{
		HandID:        snap.HandID,
		Phase:         snap.Phase,
		Players:       snap.Players,
		Community:     snap.Community,
		Deck:          deck,
		Button:        snap.Button,
		CurrentPlayer: snap.CurrentPlayer,
		CurrentBet:    snap.CurrentBet,
		MinRaise:      snap.MinRaise,
		SmallBlind:    snap.SmallBlind,
		BigBlind:      snap.BigBlind,
		Pots:          pots,
		StartingTotal: snap.StartingTotal,
		Awarded:       snap.Awarded,
		Log:           snap.Log,
	}
	if err := validateState(s, snap.Deck); err != nil {
		return GameState{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return s, nil
}

// decodePots maps eligible player IDs back to seats.
func decodePots(in []snapshotPot, players []Player) ([]Pot, error) {
	seats := make(map[string]int, len(players))
	for i, p := range players {
		if _, dup := seats[p.ID]; dup {
			return nil, fmt.Errorf("duplicate player id %q", p.ID)
		}
		seats[p.ID] = i
	}
	var pots []Pot
	for i, sp := range in {
		pot := Pot{Amount: sp.Amount, Cap: sp.Cap}
		for _, id := range sp.Eligible {
			seat, ok := seats[id]
			if !ok {
				return nil, fmt.Errorf("%s lists unknown player %q", potName(i), id)
			}
			pot.Eligible = append(pot.Eligible, seat)
		}
		pots = append(pots, pot)
	}
	return pots, nil
}

func validateState(s GameState, deck []poker.Card) error {
	n := len(s.Players)
	if n > 0 && (s.Button < 0 || s.Button >= n) {
		return fmt.Errorf("button %d out of range", s.Button)
	}
	if s.CurrentPlayer < -1 || s.CurrentPlayer >= n {
		return fmt.Errorf("current player %d out of range", s.CurrentPlayer)
	}

	var seen poker.Hand
	addCards := func(where string, cards []poker.Card) error {
		for _, c := range cards {
			if seen.HasCard(c) {
				return fmt.Errorf("%s: duplicate card %s", where, c)
			}
			seen.AddCard(c)
		}
		return nil
	}
	for i, p := range s.Players {
		if p.Seat != i {
			return fmt.Errorf("player %q has seat %d at index %d", p.Name, p.Seat, i)
		}
		if len(p.HoleCards) != 0 && len(p.HoleCards) != 2 {
			return fmt.Errorf("player %q has %d hole cards", p.Name, len(p.HoleCards))
		}
		if err := addCards("hole cards", p.HoleCards); err != nil {
			return err
		}
	}
	if err := addCards("community", s.Community); err != nil {
		return err
	}
	if err := addCards("deck", deck); err != nil {
		return err
	}

	want := map[Phase][]int{
		Waiting:  {0},
		PreFlop:  {0},
		Flop:     {3},
		Turn:     {4},
		River:    {5},
		Showdown: {0, 3, 4, 5},
	}
	counts, ok := want[s.Phase]
	if !ok {
		return fmt.Errorf("unknown phase %d", s.Phase)
	}
	valid := false
	for _, c := range counts {
		valid = valid || len(s.Community) == c
	}
	if !valid {
		return fmt.Errorf("%d community cards during %s", len(s.Community), s.Phase)
	}

	for i, pot := range s.Pots {
		for _, seat := range pot.Eligible {
			if seat < 0 || seat >= n {
				return fmt.Errorf("%s lists seat %d", potName(i), seat)
			}
		}
	}
	return verifyChips(s)
}
