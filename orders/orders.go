// Package orders tracks each order's fill state across bars and
// applies latency and time-in-force rules.
package orders

import (
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/tradekit/backtester/common"
	"github.com/tradekit/backtester/data"
)

// NewManager returns a lifecycle manager which holds fill attempts
// back by latencyBars bars after each order's creation.
func NewManager(latencyBars int) *Manager {
	return &Manager{
		latencyBars: latencyBars,
		byID:        make(map[string]*TradeRecord),
	}
}

// Validate rejects malformed requests before they reach the books.
func (r *Request) Validate() error {
	if r.Side != Buy && r.Side != Sell {
		return fmt.Errorf("%w, received %q", ErrInvalidSide, r.Side)
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("%w, received %v", ErrInvalidQuantity, r.Quantity)
	}
	if r.Type == "" {
		r.Type = Market
	}
	if r.Type != Market && r.Type != Limit {
		return fmt.Errorf("%w, received %q", ErrInvalidType, r.Type)
	}
	if r.Type == Limit && r.LimitPrice <= 0 {
		return ErrLimitPriceRequired
	}
	if r.TimeInForceBars < 0 {
		return ErrInvalidTimeInForce
	}
	return nil
}

// Submit validates and registers an order, returning its trade record.
// The record is live: the caller can inspect it as bars are processed.
// An empty order ID is replaced with a generated one.
func (m *Manager) Submit(o Order) (*TradeRecord, error) {
	req := Request{
		Side:            o.Side,
		Quantity:        o.Quantity,
		Type:            o.Type,
		LimitPrice:      o.LimitPrice,
		TimeInForceBars: o.TimeInForceBars,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	o.Type = req.Type
	if o.ID == "" {
		// Name-based IDs keyed on the submission counter keep repeat
		// runs bit-for-bit identical; random IDs would not.
		o.ID = uuid.NewV5(uuid.NamespaceOID, fmt.Sprintf("order-%d", len(m.records))).String()
	}
	if _, ok := m.byID[o.ID]; ok {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateOrderID, o.ID)
	}

	// Orders move from NEW to SUBMITTED immediately on registration.
	rec := &TradeRecord{
		Order:  o,
		Status: Submitted,
	}
	m.records = append(m.records, rec)
	m.byID[o.ID] = rec
	return rec, nil
}

// Records returns every trade record in submission order.
func (m *Manager) Records() []*TradeRecord {
	return m.records
}

// Record returns the trade record for an order ID, or nil.
func (m *Manager) Record(id string) *TradeRecord {
	return m.byID[id]
}

// ActiveCount returns the number of non-terminal orders.
func (m *Manager) ActiveCount() int {
	var n int
	for i := range m.records {
		if !m.records[i].Status.IsTerminal() {
			n++
		}
	}
	return n
}

// Remaining returns the unfilled quantity.
func (t *TradeRecord) Remaining() float64 {
	rem := t.Order.Quantity - t.ExecutedQty
	if rem < 0 {
		return 0
	}
	return rem
}

// applyFill extends the fill list and recomputes the derived
// executed quantity and volume weighted average price.
func (t *TradeRecord) applyFill(f Fill) {
	t.Fills = append(t.Fills, f)
	var qty, notional float64
	for i := range t.Fills {
		qty += t.Fills[i].Quantity
		notional += t.Fills[i].Quantity * t.Fills[i].Price
	}
	t.ExecutedQty = qty
	if qty > 0 {
		t.AvgPrice = notional / qty
	}
}

// filled reports whether the executed quantity has reached the
// requested quantity within tolerance.
func (t *TradeRecord) filled() bool {
	return t.ExecutedQty >= t.Order.Quantity ||
		common.AlmostEqual(t.ExecutedQty, t.Order.Quantity)
}

// expired reports whether the order's time in force has elapsed at idx.
func (t *TradeRecord) expired(idx int) bool {
	return t.Order.TimeInForceBars > 0 &&
		idx-t.Order.CreatedBarIndex >= t.Order.TimeInForceBars
}

// HandleBar advances every non-terminal order one bar. Orders are
// visited in submission order so earlier orders take per-bar volume
// first, mirroring price-time priority. Market and limit orders draw
// from one shared volume budget per bar; the per-kind caps inside the
// execution handler still apply on top of it.
func (m *Manager) HandleBar(idx int, bar data.Bar, exec ExecutionHandler) {
	budget := exec.BarBudget(bar)
	for _, rec := range m.records {
		if rec.Status.IsTerminal() {
			continue
		}
		// Still in flight: latency skips the bar entirely, including
		// time-in-force evaluation.
		if idx < rec.Order.CreatedBarIndex+m.latencyBars {
			continue
		}
		res := exec.Fill(rec.Order, bar, rec.Remaining(), budget)
		budget -= res.Consumed
		if budget < 0 {
			budget = 0
		}
		for i := range res.Fills {
			rec.applyFill(res.Fills[i])
		}
		// A fill completing the order beats expiry on the same bar.
		switch {
		case rec.filled():
			rec.Status = Filled
		case rec.expired(idx):
			rec.Status = Cancelled
		case rec.ExecutedQty > 0:
			rec.Status = PartiallyFilled
		}
	}
}
