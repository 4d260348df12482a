// Package exchange simulates order execution against historical bars:
// how much quantity fills, at what price, and with what fee.
package exchange

import (
	"math"

	"github.com/tradekit/backtester/common"
	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/orders"
)

// NewSimulator returns a fill simulator for the given settings.
func NewSimulator(s Settings) *Simulator {
	return &Simulator{settings: s}
}

// Settings returns the simulator's settings.
func (s *Simulator) Settings() Settings {
	return s.settings
}

// BarBudget returns the total quantity consumable from a bar across
// all orders sharing it.
func (s *Simulator) BarBudget(bar data.Bar) float64 {
	return bar.Volume * s.settings.MaxShareOfBar
}

// Fill prices one attempt for an order against a bar. remaining is
// the order's unfilled quantity and budget the bar volume still
// available after earlier orders. A zero Result means no fill this
// bar, which is not an error; the order stays pending.
func (s *Simulator) Fill(o orders.Order, bar data.Bar, remaining, budget float64) orders.Result {
	// Dust remainders below tolerance are not worth a fill event.
	if remaining <= 0 || common.AlmostZero(remaining) || budget <= 0 {
		return orders.Result{}
	}
	switch o.Type {
	case orders.Limit:
		return s.fillLimit(o, bar, remaining, budget)
	default:
		return s.fillMarket(o, bar, remaining, budget)
	}
}

// fillMarket executes against the bar open with two additive slippage
// components: a fixed spread cost and a participation driven impact
// cost. Buys pay up, sells receive less. Market fills are takers.
func (s *Simulator) fillMarket(o orders.Order, bar data.Bar, remaining, budget float64) orders.Result {
	qty := math.Min(remaining, budget)
	if qty <= 0 {
		return orders.Result{}
	}
	base := bar.Open
	spread := base * s.settings.SlippageSpreadPct
	impact := base * s.impactRate(qty, bar.Volume)

	var price float64
	switch o.Side {
	case orders.Sell:
		price = base - spread - impact
	default:
		price = base + spread + impact
	}

	f := orders.Fill{
		Time:      bar.Time,
		Price:     price,
		Quantity:  qty,
		Fee:       price * qty * s.settings.TakerFee,
		Liquidity: orders.Taker,
	}
	return orders.Result{Fills: []orders.Fill{f}, Consumed: qty}
}

// fillLimit executes only when the bar's range crosses the limit. The
// fill price is never worse than the limit and never better than the
// open when the open sits beyond the limit. Resting orders are
// assumed to hold lower queue priority, so only half the bar budget
// is reachable. Limit fills are makers.
func (s *Simulator) fillLimit(o orders.Order, bar data.Bar, remaining, budget float64) orders.Result {
	var crossed bool
	var price float64
	switch o.Side {
	case orders.Buy:
		crossed = bar.Low <= o.LimitPrice
		price = math.Min(o.LimitPrice, bar.Open)
	case orders.Sell:
		crossed = bar.High >= o.LimitPrice
		price = math.Max(o.LimitPrice, bar.Open)
	}
	if !crossed {
		return orders.Result{}
	}

	qty := math.Min(remaining, math.Min(budget, s.BarBudget(bar)*limitLiquidityShare))
	if qty <= 0 {
		return orders.Result{}
	}

	f := orders.Fill{
		Time:      bar.Time,
		Price:     price,
		Quantity:  qty,
		Fee:       price * qty * s.settings.MakerFee,
		Liquidity: orders.Maker,
	}
	return orders.Result{Fills: []orders.Fill{f}, Consumed: qty}
}

// impactRate converts the filled share of bar volume into a price
// fraction. Zero-volume bars fall back to a flat emergency rate
// rather than dividing by zero.
func (s *Simulator) impactRate(qty, barVolume float64) float64 {
	if barVolume <= 0 {
		return emergencyImpactRate
	}
	return math.Pow(qty/barVolume, s.settings.ImpactSensitivity)
}
