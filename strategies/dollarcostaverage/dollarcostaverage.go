// Package dollarcostaverage buys a fixed quantity at a fixed bar
// interval regardless of price.
package dollarcostaverage

import (
	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/strategies/base"
)

// Name is the strategy name
const Name = "dollarcostaverage"

const (
	defaultInterval = 5
	defaultQuantity = 1.0
)

// Strategy buys Quantity units every IntervalBars bars.
type Strategy struct {
	base.Strategy
	IntervalBars int
	Quantity     float64
}

// New returns the strategy with default settings.
func New() *Strategy {
	return &Strategy{
		IntervalBars: defaultInterval,
		Quantity:     defaultQuantity,
	}
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// OnBar emits a market buy whenever the bar index lands on the
// configured interval.
func (s *Strategy) OnBar(index int, _ data.Bar, _ []data.Bar, _ base.Context) (*orders.Request, error) {
	if s.IntervalBars <= 0 || index%s.IntervalBars != 0 {
		return nil, nil
	}
	return &orders.Request{
		Side:     orders.Buy,
		Quantity: s.Quantity,
		Type:     orders.Market,
	}, nil
}
