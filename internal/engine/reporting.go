package engine

import (
	"fmt"
	"time"

	"github.com/mehdibadjian/trading-bot/types"
	"github.com/shopspring/decimal"
)

type Report struct {
	// Meta / period info
	StartDate  time.Time
	EndDate    time.Time
	TotalSteps int

	// Executed transitions
	Buys  int
	Sells int

	// Absolute performance
	InitialCash   decimal.Decimal
	FinalValue    decimal.Decimal
	NetProfit     decimal.Decimal
	ReturnPercent decimal.Decimal

	// Drawdown metrics
	MaxDrawdown        decimal.Decimal
	MaxDrawdownPercent decimal.Decimal
}

func (e *Engine) generateReport(candles []types.Candle, trajectory types.Trajectory) *Report {
	report := &Report{
		TotalSteps:  len(candles),
		InitialCash: e.portfolioConfig.initialCash,
		FinalValue:  trajectory.FinalValue(),
	}
	if len(candles) > 0 {
		report.StartDate = candles[0].Timestamp
		report.EndDate = candles[len(candles)-1].Timestamp
	}

	report.Buys, report.Sells = countTrades(trajectory)
	report.NetProfit = report.FinalValue.Sub(report.InitialCash)
	if report.InitialCash.IsPositive() {
		report.ReturnPercent = report.NetProfit.Div(report.InitialCash).Mul(hundred)
	}
	report.MaxDrawdown, report.MaxDrawdownPercent = calcDrawdownMetrics(trajectory)

	return report
}

// countTrades derives executed buys and sells from the holdings transitions
// in the trajectory. A buy is a flat->long transition, a sell long->flat.
func countTrades(trajectory types.Trajectory) (buys, sells int) {
	for i := 1; i < len(trajectory); i++ {
		prev := trajectory[i-1].Holdings
		cur := trajectory[i].Holdings
		if prev.IsZero() && cur.IsPositive() {
			buys++
		}
		if prev.IsPositive() && cur.IsZero() {
			sells++
		}
	}
	return buys, sells
}

func calcDrawdownMetrics(trajectory types.Trajectory) (decimal.Decimal, decimal.Decimal) {
	maxDrawdown := decimal.Zero
	maxDrawdownPercent := decimal.Zero
	if len(trajectory) == 0 {
		return maxDrawdown, maxDrawdownPercent
	}

	peak := trajectory[0].Total
	for _, state := range trajectory[1:] {
		if state.Total.GreaterThan(peak) {
			peak = state.Total
			continue
		}
		drawdown := peak.Sub(state.Total)
		if drawdown.GreaterThan(maxDrawdown) {
			maxDrawdown = drawdown
			if peak.IsPositive() {
				maxDrawdownPercent = drawdown.Div(peak).Mul(hundred)
			}
		}
	}
	return maxDrawdown, maxDrawdownPercent
}

func (e *Engine) printReport(report *Report) {
	fmt.Printf("===== %s =====\n", e.reportingConfig.reportName)
	fmt.Printf("Start Date:            %s\n", report.StartDate.Format("2006-01-02"))
	fmt.Printf("End Date:              %s\n", report.EndDate.Format("2006-01-02"))
	fmt.Printf("Total Steps:           %d\n", report.TotalSteps)

	fmt.Println("\n-- Trades --")
	fmt.Printf("Buys:                  %d\n", report.Buys)
	fmt.Printf("Sells:                 %d\n", report.Sells)

	fmt.Println("\n-- Performance --")
	fmt.Printf("Initial Cash:          $%s\n", report.InitialCash.StringFixed(2))
	fmt.Printf("Net Profit:            $%s\n", report.NetProfit.StringFixed(2))
	fmt.Printf("Return:                %s%%\n", report.ReturnPercent.StringFixed(2))
	fmt.Printf("Max Drawdown:          $%s\n", report.MaxDrawdown.StringFixed(2))
	fmt.Printf("Max Drawdown %%:        %s%%\n", report.MaxDrawdownPercent.StringFixed(2))

	fmt.Println("==========================")
	fmt.Printf("Final portfolio value: $%s\n", report.FinalValue.StringFixed(2))
}
