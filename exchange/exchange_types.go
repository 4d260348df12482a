package exchange

// emergencyImpactRate is the flat impact fraction applied when a bar
// reports zero volume and the usual participation ratio would divide
// by zero.
const emergencyImpactRate = 0.10

// limitLiquidityShare halves the volume available to resting limit
// orders, modelling their lower queue priority versus aggressing flow.
const limitLiquidityShare = 0.5

// Settings tunes the offline fill model.
type Settings struct {
	// MaxShareOfBar is the fraction of a bar's volume an order may
	// consume, modelling the inability to take a whole bar's
	// liquidity at once.
	MaxShareOfBar float64
	// SlippageSpreadPct is the fixed half-spread cost as a price
	// fraction.
	SlippageSpreadPct float64
	// ImpactSensitivity is the exponent applied to the filled share
	// of bar volume when pricing market impact. Must sit in (0, 1].
	ImpactSensitivity float64
	MakerFee          float64
	TakerFee          float64
}

// Simulator prices fills against bars with spread, impact and fees.
// It holds no per-order state; all lifecycle bookkeeping lives with
// the order manager.
type Simulator struct {
	settings Settings
}
