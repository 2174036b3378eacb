package domain

import (
	"github.com/shopspring/decimal"
)

// MonthSnapshot records the state of every debt at the end of one simulated
// month. Month 0 is the initial state before any accrual or payment. Balances
// are floored at zero for display.
type MonthSnapshot struct {
	Month        int                        `json:"month"`
	TotalBalance decimal.Decimal            `json:"total_balance"`
	Balances     map[string]decimal.Decimal `json:"balances"`
}

// AmortizationRow is one month's payment breakdown for one debt. Interest is
// the interest accrued on the debt that month; Principal is Payment minus
// Interest and can be negative when the minimum payment does not cover the
// accrued interest. Balance is the debt's balance after the month's payments.
type AmortizationRow struct {
	Month     int             `json:"month"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}

// DebtSchedule is the full amortization schedule for one debt, with one row
// per month the debt carried a positive balance.
type DebtSchedule struct {
	Name         string            `json:"name"`
	InterestPaid decimal.Decimal   `json:"interest_paid"`
	Rows         []AmortizationRow `json:"rows"`
}

// PayoffResult is the complete outcome of one simulation run. It is
// independently owned by the caller and never aliases simulator state, so two
// runs may be compared or consumed concurrently.
type PayoffResult struct {
	History       []MonthSnapshot `json:"history"`
	Months        int             `json:"months"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	Amortization  []DebtSchedule  `json:"amortization"`
	PayoffMonth   map[string]int  `json:"payoff_month"`

	// Truncated is set when the safety cap stopped a run that never converged
	// (minimum payments below accrued interest). Months then reflects the cap,
	// not a real payoff date.
	Truncated bool `json:"truncated"`
}

// ScheduleFor returns the amortization schedule for the named debt, or nil.
func (pr *PayoffResult) ScheduleFor(name string) *DebtSchedule {
	for i := range pr.Amortization {
		if pr.Amortization[i].Name == name {
			return &pr.Amortization[i]
		}
	}
	return nil
}

// FinalSnapshot returns the last history entry, or nil for an empty run.
func (pr *PayoffResult) FinalSnapshot() *MonthSnapshot {
	if len(pr.History) == 0 {
		return nil
	}
	return &pr.History[len(pr.History)-1]
}

// ScenarioSummary pairs a scenario's simulation with the savings it achieves
// over the strategy-only baseline.
type ScenarioSummary struct {
	Name          string          `json:"name"`
	Strategy      Strategy        `json:"strategy"`
	Months        int             `json:"months"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	MonthsSaved   int             `json:"months_saved"`
	InterestSaved decimal.Decimal `json:"interest_saved"`
	Result        PayoffResult    `json:"result"`
}

// ScenarioComparison is the top-level report structure: the baseline run
// (minimum payments only, strategy order) plus every configured what-if.
type ScenarioComparison struct {
	BaselineMonths        int               `json:"baseline_months"`
	BaselineTotalInterest decimal.Decimal   `json:"baseline_total_interest"`
	Baseline              PayoffResult      `json:"baseline"`
	Scenarios             []ScenarioSummary `json:"scenarios"`
	Growth                []GrowthPoint     `json:"growth,omitempty"`
	Assumptions           []string          `json:"assumptions"`
}

// GrowthPoint is one year of the investment growth projection.
type GrowthPoint struct {
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
}
