package config

import "errors"

var (
	errStartingCashUnset      = errors.New("starting cash must be greater than zero")
	errNegativeFee            = errors.New("fee rates cannot be negative")
	errBadMaxShareOfBar       = errors.New("max share of bar must be within (0, 1]")
	errBadImpactSensitivity   = errors.New("impact sensitivity must be within (0, 1]")
	errNegativeSlippageSpread = errors.New("slippage spread cannot be negative")
	errNegativeLatency        = errors.New("latency bars cannot be negative")
	errNegativeWarmup         = errors.New("warmup bars cannot be negative")
)

// Config holds every tunable for a backtest run. Zero values are not
// usable directly; start from DefaultConfig and override.
type Config struct {
	// StartingCash is informational for reporting; the engine does not
	// track portfolio cash.
	StartingCash float64 `json:"starting-cash"`
	// FeeRate, when set, is applied to both maker and taker rates
	// unless they are individually set.
	FeeRate           float64 `json:"fee-rate,omitempty"`
	MakerFee          float64 `json:"maker-fee"`
	TakerFee          float64 `json:"taker-fee"`
	MaxShareOfBar     float64 `json:"max-share-of-bar"`
	SlippageSpreadPct float64 `json:"slippage-spread-pct"`
	ImpactSensitivity float64 `json:"impact-sensitivity"`
	LatencyBars       int     `json:"latency-bars"`
	WarmupBars        int     `json:"warmup-bars"`
	Verbose           bool    `json:"verbose"`
}
