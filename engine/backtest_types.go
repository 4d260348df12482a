package engine

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tradekit/backtester/config"
	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/exchange"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/strategies/base"
)

var (
	errNilStrategy   = errors.New("strategy handler is nil")
	errBadBarRange   = errors.New("invalid bar range")
	errNilBacktester = errors.New("backtester is nil")
)

// defaultInstrument labels strategy-generated orders when the caller
// never names one.
const defaultInstrument = "SIM"

// Backtest owns one full simulation run: the bar store, the fill
// simulator and the order books. It is single threaded; run two
// backtests concurrently with two instances.
type Backtest struct {
	cfg        config.Config
	store      *data.Store
	sim        *exchange.Simulator
	manager    *orders.Manager
	ctx        base.Context
	instrument string
	log        *zap.Logger
}
