// Package rsi buys when the relative strength index signals oversold
// conditions and sells when it signals overbought.
package rsi

import (
	"github.com/thrasher-corp/gct-ta/indicators"

	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/strategies/base"
)

// Name is the strategy name
const Name = "rsi"

const (
	defaultPeriod   = 14
	defaultLow      = 30.0
	defaultHigh     = 70.0
	defaultQuantity = 1.0
)

// Strategy is an implementation of the strategies.Handler interface.
type Strategy struct {
	base.Strategy
	Period   int
	Low      float64
	High     float64
	Quantity float64
}

// New returns the strategy with default settings.
func New() *Strategy {
	return &Strategy{
		Period:   defaultPeriod,
		Low:      defaultLow,
		High:     defaultHigh,
		Quantity: defaultQuantity,
	}
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// OnBar computes RSI over the close history including the current bar
// and emits a market order when the threshold levels are breached.
func (s *Strategy) OnBar(_ int, bar data.Bar, history []data.Bar, _ base.Context) (*orders.Request, error) {
	if len(history) < s.Period {
		return nil, nil
	}
	closes := append(s.CloseSeries(history), bar.Close)
	rsi := indicators.RSI(closes, s.Period)
	latest := rsi[len(rsi)-1]

	switch {
	case latest >= s.High:
		return &orders.Request{
			Side:     orders.Sell,
			Quantity: s.Quantity,
			Type:     orders.Market,
		}, nil
	case latest <= s.Low:
		return &orders.Request{
			Side:     orders.Buy,
			Quantity: s.Quantity,
			Type:     orders.Market,
		}, nil
	}
	return nil, nil
}
