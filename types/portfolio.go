package types

import (
	"github.com/shopspring/decimal"
)

// PortfolioState is the account at one step of the simulation: remaining
// cash, share count held, and total value. Total is valued with the close
// of the step that triggered the last transition, not the step's own close.
type PortfolioState struct {
	Cash     decimal.Decimal
	Holdings decimal.Decimal
	Total    decimal.Decimal
}

// Trajectory is the full portfolio evolution, index-aligned with the candle
// series the simulation ran over.
type Trajectory []PortfolioState

// FinalValue returns the total at the last step, or zero for an empty run.
func (t Trajectory) FinalValue() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	return t[len(t)-1].Total
}
