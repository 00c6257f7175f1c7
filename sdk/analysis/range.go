package analysis

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/lox/holdem/poker"
)

// ErrInvalidRange is returned for range notation that cannot be parsed.
var ErrInvalidRange = errors.New("invalid range")

// Range is a set of two-card starting hands, each stored as a poker.Hand
// holding both cards.
type Range struct {
	combos map[poker.Hand]struct{}
}

// NewRange creates an empty range.
func NewRange() *Range {
	return &Range{combos: make(map[poker.Hand]struct{})}
}

// ParseRange builds a range from standard notation, for example
// "AA,KK", "AKs,AKo", "TT+", "A5s-A2s", "KTs+" or "22-66". A hand without
// a suited or offsuit marker includes both.
func ParseRange(notation string) (*Range, error) {
	r := NewRange()
	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := r.add(part); err != nil {
			return nil, fmt.Errorf("range part %q: %w", part, err)
		}
	}
	if r.Size() == 0 {
		return nil, fmt.Errorf("%w: %q holds no hands", ErrInvalidRange, notation)
	}
	return r, nil
}

// handClass is one line of the 13x13 starting hand grid.
type handClass struct {
	high, low uint8 // Ranks, high >= low
	suited    bool
	offsuit   bool
}

func (h handClass) pair() bool { return h.high == h.low }

func parseClass(s string) (handClass, error) {
	if len(s) < 2 || len(s) > 3 {
		return handClass{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	a, b := rankIndex(s[0]), rankIndex(s[1])
	if a < 0 || b < 0 {
		return handClass{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidRange, s)
	}
	h := handClass{high: uint8(max(a, b)), low: uint8(min(a, b)), suited: true, offsuit: true}
	if len(s) == 3 {
		if h.pair() {
			return handClass{}, fmt.Errorf("%w: pair %q cannot be suited or offsuit", ErrInvalidRange, s)
		}
		switch s[2] {
		case 's':
			h.offsuit = false
		case 'o':
			h.suited = false
		default:
			return handClass{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidRange, s[2])
		}
	}
	return h, nil
}

func rankIndex(c byte) int {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return strings.IndexByte("23456789TJQKA", c)
}

func (r *Range) add(part string) error {
	switch {
	case strings.HasSuffix(part, "+"):
		h, err := parseClass(strings.TrimSuffix(part, "+"))
		if err != nil {
			return err
		}
		if h.pair() {
			for rank := h.high; rank <= poker.Ace; rank++ {
				r.addClass(handClass{high: rank, low: rank})
			}
			return nil
		}
		for low := h.low; low < h.high; low++ {
			h.low = low
			r.addClass(h)
		}
		return nil

	case strings.Contains(part, "-"):
		from, to, _ := strings.Cut(part, "-")
		a, err := parseClass(strings.TrimSpace(from))
		if err != nil {
			return err
		}
		b, err := parseClass(strings.TrimSpace(to))
		if err != nil {
			return err
		}
		switch {
		case a.pair() && b.pair():
			for rank := min(a.high, b.high); rank <= max(a.high, b.high); rank++ {
				r.addClass(handClass{high: rank, low: rank})
			}
		case a.high == b.high && a.suited == b.suited && a.offsuit == b.offsuit:
			for low := min(a.low, b.low); low <= max(a.low, b.low); low++ {
				h := a
				h.low = low
				r.addClass(h)
			}
		default:
			return fmt.Errorf("%w: unsupported span %q", ErrInvalidRange, part)
		}
		return nil

	default:
		h, err := parseClass(part)
		if err != nil {
			return err
		}
		r.addClass(h)
		return nil
	}
}

func (r *Range) addClass(h handClass) {
	for s1 := range uint8(4) {
		for s2 := range uint8(4) {
			if h.pair() && s2 <= s1 {
				continue
			}
			if (s1 == s2 && !h.suited) || (s1 != s2 && !h.offsuit && !h.pair()) {
				continue
			}
			r.combos[poker.NewHand(poker.NewCard(h.high, s1), poker.NewCard(h.low, s2))] = struct{}{}
		}
	}
}

// Contains reports whether the two cards form a hand in the range.
func (r *Range) Contains(a, b poker.Card) bool {
	_, ok := r.combos[poker.NewHand(a, b)]
	return ok
}

// Size returns the number of card combinations.
func (r *Range) Size() int {
	return len(r.combos)
}

// Hands returns every combination in a stable order.
func (r *Range) Hands() []poker.Hand {
	hands := make([]poker.Hand, 0, len(r.combos))
	for h := range r.combos {
		hands = append(hands, h)
	}
	slices.Sort(hands)
	return hands
}

// sample picks a uniformly random combination that shares no card with dead.
func (r *Range) sample(rng *rand.Rand, hands []poker.Hand, dead poker.Hand) (poker.Hand, bool) {
	for range 32 {
		if h := hands[rng.IntN(len(hands))]; h&dead == 0 {
			return h, true
		}
	}
	live := make([]poker.Hand, 0, len(hands))
	for _, h := range hands {
		if h&dead == 0 {
			live = append(live, h)
		}
	}
	if len(live) == 0 {
		return 0, false
	}
	return live[rng.IntN(len(live))], true
}
