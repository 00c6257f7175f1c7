package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

var (
	// ErrDeckExhausted is returned when a deal asks for more cards than remain.
	ErrDeckExhausted = errors.New("deck exhausted")
	// ErrInvalidDeck is returned when a stacked deck holds invalid or duplicate cards.
	ErrInvalidDeck = errors.New("invalid deck")
)

// Deck is an ordered sequence of distinct cards consumed front to back.
// It is a value: Shuffle and Deal return new decks and never modify the receiver.
type Deck struct {
	cards [52]Card
	size  int
	next  int
}

// NewDeck returns all 52 cards in canonical order (clubs deuce first, spades ace last).
func NewDeck() Deck {
	d := Deck{size: 52}
	i := 0
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
	return d
}

// NewShuffledDeck returns a fresh deck shuffled with rng.
func NewShuffledDeck(rng *rand.Rand) Deck {
	return NewDeck().Shuffle(rng)
}

// NewDeckFromCards builds a deck that deals cards in the given order.
func NewDeckFromCards(cards []Card) (Deck, error) {
	if len(cards) > 52 {
		return Deck{}, fmt.Errorf("%w: %d cards", ErrInvalidDeck, len(cards))
	}
	var seen Hand
	d := Deck{size: len(cards)}
	for i, c := range cards {
		if !c.IsValid() {
			return Deck{}, fmt.Errorf("%w: card %d is not a valid card", ErrInvalidDeck, i)
		}
		if seen.HasCard(c) {
			return Deck{}, fmt.Errorf("%w: duplicate %s", ErrInvalidDeck, c)
		}
		seen.AddCard(c)
		d.cards[i] = c
	}
	return d, nil
}

// Shuffle returns a Fisher-Yates permutation of the undealt cards.
func (d Deck) Shuffle(rng *rand.Rand) Deck {
	if rng == nil {
		panic("rng is required to shuffle")
	}
	rest := d.cards[d.next:d.size]
	for i := len(rest) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		rest[i], rest[j] = rest[j], rest[i]
	}
	return d
}

// Deal returns the first n undealt cards and the deck without them.
func (d Deck) Deal(n int) ([]Card, Deck, error) {
	if n < 0 {
		return nil, d, fmt.Errorf("deal %d cards: negative count", n)
	}
	if d.next+n > d.size {
		return nil, d, fmt.Errorf("deal %d cards with %d left: %w", n, d.Remaining(), ErrDeckExhausted)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, d, nil
}

// Remaining returns the number of undealt cards.
func (d Deck) Remaining() int {
	return d.size - d.next
}

// Cards returns a copy of the undealt cards in deal order.
func (d Deck) Cards() []Card {
	out := make([]Card, d.Remaining())
	copy(out, d.cards[d.next:d.size])
	return out
}
