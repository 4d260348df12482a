// Package config loads and validates backtest run settings from JSON.
package config

import (
	"encoding/json"
	"os"
)

// DefaultConfig returns a config with conservative simulation defaults.
func DefaultConfig() Config {
	return Config{
		StartingCash:      10000,
		MakerFee:          0.0008,
		TakerFee:          0.001,
		MaxShareOfBar:     0.02,
		SlippageSpreadPct: 0.0005,
		ImpactSensitivity: 0.5,
		LatencyBars:       0,
		WarmupBars:        0,
	}
}

// ReadConfigFromFile will take a config from a path
func ReadConfigFromFile(path string) (Config, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return LoadConfig(fileData)
}

// LoadConfig unmarshals byte data over the defaults, so absent fields
// keep their default values.
func LoadConfig(data []byte) (Config, error) {
	resp := DefaultConfig()
	if err := json.Unmarshal(data, &resp); err != nil {
		return Config{}, err
	}
	resp.applyFlatFee()
	return resp, resp.Validate()
}

// applyFlatFee copies a flat fee rate onto any unset maker/taker rate.
func (c *Config) applyFlatFee() {
	if c.FeeRate == 0 {
		return
	}
	if c.MakerFee == 0 {
		c.MakerFee = c.FeeRate
	}
	if c.TakerFee == 0 {
		c.TakerFee = c.FeeRate
	}
}

// Validate checks all config settings
func (c *Config) Validate() error {
	if c.StartingCash <= 0 {
		return errStartingCashUnset
	}
	if c.MakerFee < 0 || c.TakerFee < 0 || c.FeeRate < 0 {
		return errNegativeFee
	}
	if c.MaxShareOfBar <= 0 || c.MaxShareOfBar > 1 {
		return errBadMaxShareOfBar
	}
	if c.ImpactSensitivity <= 0 || c.ImpactSensitivity > 1 {
		return errBadImpactSensitivity
	}
	if c.SlippageSpreadPct < 0 {
		return errNegativeSlippageSpread
	}
	if c.LatencyBars < 0 {
		return errNegativeLatency
	}
	if c.WarmupBars < 0 {
		return errNegativeWarmup
	}
	return nil
}
