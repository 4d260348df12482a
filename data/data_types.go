package data

import "errors"

var (
	errNoBars         = errors.New("no bar data provided")
	errOutOfOrder     = errors.New("bar timestamps are not strictly increasing")
	errNegativeVolume = errors.New("bar volume cannot be negative")
)

// Bar is a fixed-interval OHLCV summary of price activity. Time is
// epoch milliseconds. Bars are immutable once loaded into a Store.
type Bar struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Store holds the ordered bar sequence for a run. It exposes no
// mutation API; the simulation only reads bars by index.
type Store struct {
	bars []Bar
}
