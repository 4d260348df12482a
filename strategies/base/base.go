// Package base holds plumbing shared by strategy implementations.
package base

import "github.com/tradekit/backtester/data"

// Context carries caller state across OnBar invocations within one
// run. The engine creates it once and hands the same instance to the
// strategy on every bar.
type Context map[string]any

// Strategy is the base implementation strategies embed for shared
// history helpers.
type Strategy struct{}

// CloseSeries extracts the close price series from history.
func (s *Strategy) CloseSeries(history []data.Bar) []float64 {
	out := make([]float64, len(history))
	for i := range history {
		out[i] = history[i].Close
	}
	return out
}

// HighestHigh returns the highest high over the trailing lookback
// bars of history, or zero when history is empty.
func (s *Strategy) HighestHigh(history []data.Bar, lookback int) float64 {
	start := len(history) - lookback
	if start < 0 {
		start = 0
	}
	var high float64
	for i := start; i < len(history); i++ {
		if history[i].High > high {
			high = history[i].High
		}
	}
	return high
}
