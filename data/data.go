package data

import "fmt"

// NewStore validates and wraps an externally supplied bar sequence.
// Bars must be strictly time-ordered with non-negative volume.
func NewStore(bars []Bar) (*Store, error) {
	if len(bars) == 0 {
		return nil, errNoBars
	}
	for i := range bars {
		if bars[i].Volume < 0 {
			return nil, fmt.Errorf("%w at index %v", errNegativeVolume, i)
		}
		if i > 0 && bars[i].Time <= bars[i-1].Time {
			return nil, fmt.Errorf("%w at index %v", errOutOfOrder, i)
		}
	}
	s := &Store{bars: make([]Bar, len(bars))}
	copy(s.bars, bars)
	return s, nil
}

// Len returns the number of bars held.
func (s *Store) Len() int {
	return len(s.bars)
}

// Bar returns the bar at index i. Out of range access is a
// programming error and panics rather than returning an error.
func (s *Store) Bar(i int) Bar {
	return s.bars[i]
}

// History returns all bars strictly prior to index i. The returned
// slice aliases the store and must not be mutated.
func (s *Store) History(i int) []Bar {
	return s.bars[:i]
}

// Stream returns the full bar sequence. The returned slice aliases
// the store and must not be mutated.
func (s *Store) Stream() []Bar {
	return s.bars
}
