package statistics

import (
	"github.com/shopspring/decimal"

	"github.com/tradekit/backtester/orders"
)

// TradeDetail is the per-trade breakdown of one executed order.
type TradeDetail struct {
	OrderID     string          `json:"order-id"`
	Instrument  string          `json:"instrument"`
	Side        orders.Side     `json:"side"`
	Quantity    float64         `json:"quantity"`
	ExecutedQty float64         `json:"executed-qty"`
	AvgPrice    float64         `json:"avg-price"`
	Notional    decimal.Decimal `json:"notional"`
	Fees        decimal.Decimal `json:"fees"`
	Status      orders.Status   `json:"status"`
	Fills       []orders.Fill   `json:"fills"`
}

// Report summarises every trade that executed at least partially.
// Totals accumulate in decimals so long runs do not drift.
type Report struct {
	TotalTrades      int             `json:"total-trades"`
	AverageFillPrice decimal.Decimal `json:"average-fill-price"`
	TotalNotional    decimal.Decimal `json:"total-notional"`
	TotalFees        decimal.Decimal `json:"total-fees"`
	Trades           []TradeDetail   `json:"trade-details"`
}
