package orders

import (
	"errors"

	"github.com/tradekit/backtester/data"
)

var (
	// ErrInvalidSide is returned when a request side is not buy or sell
	ErrInvalidSide = errors.New("order side must be buy or sell")
	// ErrInvalidQuantity is returned when a request quantity is not positive
	ErrInvalidQuantity = errors.New("order quantity must be greater than zero")
	// ErrInvalidType is returned when a request kind is not market or limit
	ErrInvalidType = errors.New("order type must be market or limit")
	// ErrLimitPriceRequired is returned when a limit order carries no price
	ErrLimitPriceRequired = errors.New("limit orders require a positive limit price")
	// ErrInvalidTimeInForce is returned when time in force is negative
	ErrInvalidTimeInForce = errors.New("time in force bars cannot be negative")
	// ErrDuplicateOrderID is returned when a caller supplied ID is reused
	ErrDuplicateOrderID = errors.New("order id already registered")
)

// Side is the direction of an order
type Side string

// Order sides
const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Type differentiates market and limit orders
type Type string

// Order types
const (
	Market Type = "MARKET"
	Limit  Type = "LIMIT"
)

// Status describes where an order sits in its lifecycle
type Status string

// Order statuses. Filled and Cancelled are terminal
const (
	New             Status = "NEW"
	Submitted       Status = "SUBMITTED"
	PartiallyFilled Status = "PARTIAL"
	Filled          Status = "FILLED"
	Cancelled       Status = "CANCELLED"
)

// IsTerminal reports whether no further processing can occur
func (s Status) IsTerminal() bool {
	return s == Filled || s == Cancelled
}

// Liquidity classifies a fill as resting or aggressing
type Liquidity string

// Liquidity roles
const (
	Maker Liquidity = "MAKER"
	Taker Liquidity = "TAKER"
)

// Order is created once at submission and never mutated afterwards;
// all execution state lives on the owning TradeRecord.
type Order struct {
	ID              string  `json:"id"`
	Instrument      string  `json:"instrument"`
	Side            Side    `json:"side"`
	Quantity        float64 `json:"quantity"`
	Type            Type    `json:"type"`
	LimitPrice      float64 `json:"limit-price,omitempty"`
	CreatedBarIndex int     `json:"created-bar-index"`
	// TimeInForceBars of zero means good till cancel.
	TimeInForceBars int `json:"time-in-force-bars,omitempty"`
}

// Request is what a strategy hands back when it wants an order placed.
// Type defaults to Market when empty.
type Request struct {
	Side            Side    `json:"side"`
	Quantity        float64 `json:"quantity"`
	Type            Type    `json:"order_type"`
	LimitPrice      float64 `json:"limit_price,omitempty"`
	TimeInForceBars int     `json:"time_in_force_bars,omitempty"`
}

// Fill records a single execution against a bar.
type Fill struct {
	Time      int64     `json:"time"`
	Price     float64   `json:"price"`
	Quantity  float64   `json:"quantity"`
	Fee       float64   `json:"fee"`
	Liquidity Liquidity `json:"liquidity"`
}

// TradeRecord owns one order and its ordered fills. ExecutedQty and
// AvgPrice are derived from the fill list and never exceed the
// requested quantity.
type TradeRecord struct {
	Order       Order   `json:"order"`
	Fills       []Fill  `json:"fills"`
	ExecutedQty float64 `json:"executed-qty"`
	AvgPrice    float64 `json:"avg-price"`
	Status      Status  `json:"status"`
}

// Result is the outcome of one fill simulation attempt.
type Result struct {
	Fills    []Fill
	Consumed float64
}

// ExecutionHandler decides how much of an order executes against a
// bar. budget is the shared volume still available on the bar across
// all orders processed so far.
type ExecutionHandler interface {
	BarBudget(bar data.Bar) float64
	Fill(o Order, bar data.Bar, remaining, budget float64) Result
}

// Manager walks every registered order through its lifecycle,
// delegating fill decisions to an ExecutionHandler.
type Manager struct {
	latencyBars int
	records     []*TradeRecord
	byID        map[string]*TradeRecord
}
