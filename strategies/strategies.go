// Package strategies exposes the signal callback contract and a
// registry of built-in strategies.
package strategies

import (
	"fmt"
	"strings"

	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/strategies/base"
	"github.com/tradekit/backtester/strategies/dollarcostaverage"
	"github.com/tradekit/backtester/strategies/pullback"
	"github.com/tradekit/backtester/strategies/rsi"
)

// NewFuncHandler wraps fn as a named Handler.
func NewFuncHandler(name string, fn HandlerFunc) Handler {
	return &funcHandler{name: name, fn: fn}
}

// Name returns the handler name.
func (f *funcHandler) Name() string {
	return f.name
}

// OnBar invokes the wrapped closure.
func (f *funcHandler) OnBar(index int, bar data.Bar, history []data.Bar, ctx base.Context) (*orders.Request, error) {
	return f.fn(index, bar, history, ctx)
}

// LoadStrategyByName returns the built-in strategy matching name,
// case insensitively.
func LoadStrategyByName(name string) (Handler, error) {
	strats := GetStrategies()
	for i := range strats {
		if !strings.EqualFold(name, strats[i].Name()) {
			continue
		}
		return strats[i], nil
	}
	return nil, fmt.Errorf("%w: %v", ErrStrategyNotFound, name)
}

// GetStrategies returns a fresh instance of every built-in strategy.
func GetStrategies() []Handler {
	return []Handler{
		dollarcostaverage.New(),
		rsi.New(),
		pullback.New(),
	}
}
