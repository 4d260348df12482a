// Package engine replays historical bars through a strategy and a
// simulated execution venue, deterministically: the same bars, config
// and strategy always produce the same fills.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tradekit/backtester/config"
	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/exchange"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/statistics"
	"github.com/tradekit/backtester/strategies"
	"github.com/tradekit/backtester/strategies/base"
)

// New builds a backtest over the supplied bars. A nil logger is
// replaced with a no-op logger.
func New(cfg config.Config, bars []data.Bar, log *zap.Logger) (*Backtest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	store, err := data.NewStore(bars)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Backtest{
		cfg:   cfg,
		store: store,
		sim: exchange.NewSimulator(exchange.Settings{
			MaxShareOfBar:     cfg.MaxShareOfBar,
			SlippageSpreadPct: cfg.SlippageSpreadPct,
			ImpactSensitivity: cfg.ImpactSensitivity,
			MakerFee:          cfg.MakerFee,
			TakerFee:          cfg.TakerFee,
		}),
		manager:    orders.NewManager(cfg.LatencyBars),
		ctx:        base.Context{},
		instrument: defaultInstrument,
		log:        log,
	}, nil
}

// SetInstrument names the instrument stamped on strategy-generated
// orders.
func (b *Backtest) SetInstrument(id string) {
	if id != "" {
		b.instrument = id
	}
}

// Bars exposes the read-only bar store.
func (b *Backtest) Bars() *data.Store {
	return b.store
}

// Reset clears all order state so the instance can run again from a
// clean slate against the same bars.
func (b *Backtest) Reset() {
	b.manager = orders.NewManager(b.cfg.LatencyBars)
	b.ctx = base.Context{}
}

// SubmitOrder validates and registers an order, returning its live
// trade record. Invalid requests are rejected here, before any bar
// processing sees them.
func (b *Backtest) SubmitOrder(o orders.Order) (*orders.TradeRecord, error) {
	rec, err := b.manager.Submit(o)
	if err != nil {
		return nil, err
	}
	b.log.Debug("order submitted",
		zap.String("id", rec.Order.ID),
		zap.String("side", string(rec.Order.Side)),
		zap.String("type", string(rec.Order.Type)),
		zap.Float64("quantity", rec.Order.Quantity),
		zap.Int("created-bar", rec.Order.CreatedBarIndex))
	return rec, nil
}

// ProcessBar advances every active order through the bar at idx.
// An out of range index panics, matching the bar store contract.
func (b *Backtest) ProcessBar(idx int) {
	bar := b.store.Bar(idx)
	b.manager.HandleBar(idx, bar, b.sim)
	if b.cfg.Verbose {
		b.log.Info("bar processed",
			zap.Int("index", idx),
			zap.Int64("time", bar.Time),
			zap.Int("active-orders", b.manager.ActiveCount()))
	}
}

// ProcessBars advances through bars [start, end).
func (b *Backtest) ProcessBars(start, end int) error {
	if start < 0 || end > b.store.Len() || start > end {
		return fmt.Errorf("%w [%v, %v) over %v bars", errBadBarRange, start, end, b.store.Len())
	}
	for i := start; i < end; i++ {
		b.ProcessBar(i)
	}
	return nil
}

// Run drives a full simulation: for each bar from the warm-up offset
// onward the strategy is consulted first, any returned request is
// registered at the current bar index, then all active orders are
// processed in submission order.
func (b *Backtest) Run(strategy strategies.Handler) error {
	if b == nil {
		return errNilBacktester
	}
	if strategy == nil {
		return errNilStrategy
	}
	for i := b.cfg.WarmupBars; i < b.store.Len(); i++ {
		bar := b.store.Bar(i)
		req, err := strategy.OnBar(i, bar, b.store.History(i), b.ctx)
		if err != nil {
			return fmt.Errorf("strategy %v at bar %v: %w", strategy.Name(), i, err)
		}
		if req != nil {
			if err = req.Validate(); err != nil {
				return fmt.Errorf("strategy %v at bar %v: %w", strategy.Name(), i, err)
			}
			_, err = b.SubmitOrder(orders.Order{
				Instrument:      b.instrument,
				Side:            req.Side,
				Quantity:        req.Quantity,
				Type:            req.Type,
				LimitPrice:      req.LimitPrice,
				CreatedBarIndex: i,
				TimeInForceBars: req.TimeInForceBars,
			})
			if err != nil {
				return err
			}
		}
		b.ProcessBar(i)
	}
	b.log.Info("run complete",
		zap.Int("bars", b.store.Len()),
		zap.Int("orders", len(b.manager.Records())))
	return nil
}

// Records returns every trade record in submission order.
func (b *Backtest) Records() []*orders.TradeRecord {
	return b.manager.Records()
}

// ComputePerformance aggregates all executed trades into a report.
func (b *Backtest) ComputePerformance() *statistics.Report {
	return statistics.CalculateResults(b.manager.Records())
}
