// Package pullback buys dips below a recent high and exits on a
// profit target or stop loss.
package pullback

import (
	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/strategies/base"
)

// Name is the strategy name
const Name = "pullback"

const (
	defaultLookback  = 20
	defaultThreshold = 0.03
	defaultTarget    = 0.15
	defaultStop      = 0.05
	defaultQuantity  = 1.0
)

// context keys for cross-bar position state
const (
	ctxEntryPrice = "pullback-entry-price"
	ctxTarget     = "pullback-target-price"
	ctxStop       = "pullback-stop-price"
)

// Strategy enters when price pulls back Threshold below the highest
// high of the trailing Lookback bars, and exits at Target gain or
// Stop loss from entry.
type Strategy struct {
	base.Strategy
	Lookback  int
	Threshold float64
	Target    float64
	Stop      float64
	Quantity  float64
}

// New returns the strategy with default settings.
func New() *Strategy {
	return &Strategy{
		Lookback:  defaultLookback,
		Threshold: defaultThreshold,
		Target:    defaultTarget,
		Stop:      defaultStop,
		Quantity:  defaultQuantity,
	}
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// OnBar scans for an entry when flat and for an exit when a position
// was opened on an earlier bar. Position state lives in ctx.
func (s *Strategy) OnBar(_ int, bar data.Bar, history []data.Bar, ctx base.Context) (*orders.Request, error) {
	if _, open := ctx[ctxEntryPrice]; open {
		return s.checkExit(bar, ctx), nil
	}
	if len(history) < s.Lookback {
		return nil, nil
	}

	recentHigh := s.HighestHigh(history, s.Lookback)
	if recentHigh <= 0 {
		return nil, nil
	}
	pullback := (bar.Close - recentHigh) / recentHigh
	if pullback > -s.Threshold {
		return nil, nil
	}

	ctx[ctxEntryPrice] = bar.Close
	ctx[ctxTarget] = bar.Close * (1 + s.Target)
	ctx[ctxStop] = bar.Close * (1 - s.Stop)
	return &orders.Request{
		Side:     orders.Buy,
		Quantity: s.Quantity,
		Type:     orders.Market,
	}, nil
}

func (s *Strategy) checkExit(bar data.Bar, ctx base.Context) *orders.Request {
	target, _ := ctx[ctxTarget].(float64)
	stop, _ := ctx[ctxStop].(float64)
	if bar.High < target && bar.Low > stop {
		return nil
	}
	delete(ctx, ctxEntryPrice)
	delete(ctx, ctxTarget)
	delete(ctx, ctxStop)
	return &orders.Request{
		Side:     orders.Sell,
		Quantity: s.Quantity,
		Type:     orders.Market,
	}
}
