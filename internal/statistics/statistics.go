// Package statistics accumulates one seat's results across simulated hands,
// measured in big blinds so tables with different stakes compare directly.
package statistics

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// BigPotBB is the pot size, in big blinds, from which a hand counts as a big pot.
const BigPotBB = 50

// ErrNoHands is returned by Validate when nothing has been recorded.
var ErrNoHands = errors.New("no hands recorded")

// HandResult is one seat's outcome for a single hand.
type HandResult struct {
	NetBB    float64 // Chips won or lost, in big blinds
	Position string  // e.g. "Button", "UTG+1"
	Showdown bool    // The hand was decided by comparing hands
	PotBB    float64 // Total paid out, in big blinds
}

// PositionStats is the running total for one table position.
type PositionStats struct {
	Hands int
	SumBB float64
}

// Mean returns big blinds per hand from this position.
func (p PositionStats) Mean() float64 {
	if p.Hands == 0 {
		return 0
	}
	return p.SumBB / float64(p.Hands)
}

// Statistics is the running summary of a seat's results. The zero value is
// ready to use.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // Sum of squares, for the variance
	Values []float64 // Every result, for the median and percentiles

	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64 // Won and lost in hands that reached a showdown
	NonShowdownBB   float64 // Won and lost in hands decided by folds

	Positions map[string]PositionStats

	MaxPotBB  float64
	BigPots   int
	BigPotsBB float64 // Net result in big pots
}

// Add records one hand.
func (s *Statistics) Add(r HandResult) {
	s.Hands++
	s.SumBB += r.NetBB
	s.SumBB2 += r.NetBB * r.NetBB
	s.Values = append(s.Values, r.NetBB)

	if r.Showdown {
		s.ShowdownBB += r.NetBB
		if r.NetBB > 0 {
			s.ShowdownWins++
		}
	} else {
		s.NonShowdownBB += r.NetBB
		if r.NetBB > 0 {
			s.NonShowdownWins++
		}
	}

	if s.Positions == nil {
		s.Positions = make(map[string]PositionStats)
	}
	ps := s.Positions[r.Position]
	ps.Hands++
	ps.SumBB += r.NetBB
	s.Positions[r.Position] = ps

	s.MaxPotBB = max(s.MaxPotBB, r.PotBB)
	if r.PotBB >= BigPotBB {
		s.BigPots++
		s.BigPotsBB += r.NetBB
	}
}

// Mean returns big blinds won per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the normal-approximation 95% interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean, margin := s.Mean(), 1.96*s.StdError()
	return mean - margin, mean + margin
}

// BBPer100 returns the win rate in big blinds per hundred hands.
func (s *Statistics) BBPer100() float64 {
	return s.Mean() * 100
}

func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the linearly interpolated value at p, from 0 to 1.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	p = min(max(p, 0), 1)
	index := p * float64(len(sorted)-1)
	lower := int(index)
	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[lower+1]*weight
}

// PositionMean returns big blinds per hand from position, or 0 when the
// seat never played from it.
func (s *Statistics) PositionMean(position string) float64 {
	return s.Positions[position].Mean()
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)
	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	if len(other.Positions) > 0 && s.Positions == nil {
		s.Positions = make(map[string]PositionStats, len(other.Positions))
	}
	for name, ps := range other.Positions {
		mine := s.Positions[name]
		mine.Hands += ps.Hands
		mine.SumBB += ps.SumBB
		s.Positions[name] = mine
	}
	s.MaxPotBB = max(s.MaxPotBB, other.MaxPotBB)
	s.BigPots += other.BigPots
	s.BigPotsBB += other.BigPotsBB
}

// IsLedgerBalanced reports whether the showdown and non-showdown totals add
// up to the overall result.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.SumBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate checks the running totals agree with each other.
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return ErrNoHands
	}
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: total=%.6f showdown=%.6f non-showdown=%.6f",
			s.SumBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("recorded %d values for %d hands", len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("total wins %d exceeds %d hands", wins, s.Hands)
	}
	positioned := 0
	for _, ps := range s.Positions {
		positioned += ps.Hands
	}
	if positioned != s.Hands {
		return fmt.Errorf("position hands total %d does not match %d hands", positioned, s.Hands)
	}
	return nil
}
