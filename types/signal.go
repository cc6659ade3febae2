package types

// Stance is the discrete trade stance derived from the indicator rules.
type Stance int

const (
	StanceShort   Stance = -1
	StanceNeutral Stance = 0
	StanceLong    Stance = 1
)

// SignalPoint pairs the stance at a step with the delta from the previous
// step's stance. PositionChange is 0 at the first step by convention and
// otherwise Stance[i] - Stance[i-1], so it ranges over {-2,-1,0,+1,+2}.
type SignalPoint struct {
	Stance         Stance
	PositionChange int
}

// SignalSeries is index-aligned with the indicator set it was derived from.
type SignalSeries []SignalPoint
