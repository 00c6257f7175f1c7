package poker

import (
	"errors"
	"testing"

	"github.com/lox/holdem/internal/randutil"
)

func assertFullDeck(t *testing.T, d Deck) {
	t.Helper()
	cards := d.Cards()
	if len(cards) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(cards))
	}
	if NewHand(cards...).CountCards() != 52 {
		t.Fatal("deck contains duplicate cards")
	}
}

func TestNewDeckCanonicalOrder(t *testing.T) {
	t.Parallel()
	d := NewDeck()
	assertFullDeck(t, d)

	cards := d.Cards()
	if cards[0] != NewCard(Two, Clubs) || cards[51] != NewCard(Ace, Spades) {
		t.Errorf("unexpected canonical order: first %s last %s", cards[0], cards[51])
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	t.Parallel()
	for seed := int64(0); seed < 200; seed++ {
		shuffled := NewDeck().Shuffle(randutil.New(seed))
		assertFullDeck(t, shuffled)
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	t.Parallel()
	a := NewShuffledDeck(randutil.New(7)).Cards()
	b := NewShuffledDeck(randutil.New(7)).Cards()
	c := NewShuffledDeck(randutil.New(8)).Cards()

	if FormatCards(a) != FormatCards(b) {
		t.Error("same seed should give the same order")
	}
	if FormatCards(a) == FormatCards(c) {
		t.Error("different seeds should give different orders")
	}
}

func TestShuffleDoesNotModifyReceiver(t *testing.T) {
	t.Parallel()
	d := NewDeck()
	_ = d.Shuffle(randutil.New(1))
	if d.Cards()[0] != NewCard(Two, Clubs) {
		t.Error("Shuffle must return a new deck")
	}
}

func TestDeal(t *testing.T) {
	t.Parallel()
	d := NewShuffledDeck(randutil.New(42))

	first, d1, err := d.Deal(2)
	if err != nil || len(first) != 2 {
		t.Fatalf("Deal(2) = %v, %v", first, err)
	}
	second, d2, err := d1.Deal(3)
	if err != nil || len(second) != 3 {
		t.Fatalf("Deal(3) = %v, %v", second, err)
	}
	if NewHand(append(first, second...)...).CountCards() != 5 {
		t.Error("dealt same card twice")
	}
	if d.Remaining() != 52 || d1.Remaining() != 50 || d2.Remaining() != 47 {
		t.Errorf("remaining = %d/%d/%d", d.Remaining(), d1.Remaining(), d2.Remaining())
	}

	rest, empty, err := d2.Deal(47)
	if err != nil || len(rest) != 47 {
		t.Fatalf("Deal(47) = %d cards, %v", len(rest), err)
	}
	if _, _, err := empty.Deal(1); !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("expected ErrDeckExhausted, got %v", err)
	}
	if _, _, err := d.Deal(-1); err == nil {
		t.Error("negative deal should fail")
	}
}

func TestNewDeckFromCards(t *testing.T) {
	t.Parallel()
	d, err := NewDeckFromCards(MustParseCards("AhAdKcKd"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cards, _, err := d.Deal(2)
	if err != nil || FormatCards(cards) != "Ah Ad" {
		t.Errorf("stacked deal = %v, %v", cards, err)
	}

	dup := []Card{NewCard(Ace, Hearts), NewCard(Ace, Hearts)}
	if _, err := NewDeckFromCards(dup); !errors.Is(err, ErrInvalidDeck) {
		t.Errorf("expected ErrInvalidDeck, got %v", err)
	}
}
