package strategies

import (
	"errors"

	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/strategies/base"
)

// ErrStrategyNotFound is returned when a name matches no registered strategy
var ErrStrategyNotFound = errors.New("strategy not found")

// Handler is the signal callback contract the engine drives once per
// bar. history holds every bar strictly prior to the current one; ctx
// persists across calls for strategy state. A nil request means no
// order this bar.
type Handler interface {
	Name() string
	OnBar(index int, bar data.Bar, history []data.Bar, ctx base.Context) (*orders.Request, error)
}

// HandlerFunc adapts a plain closure into a Handler, for callers who
// do not want a stateful strategy type.
type HandlerFunc func(index int, bar data.Bar, history []data.Bar, ctx base.Context) (*orders.Request, error)

type funcHandler struct {
	name string
	fn   HandlerFunc
}
