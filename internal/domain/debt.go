package domain

import (
	"github.com/shopspring/decimal"
)

// Strategy selects the order in which extra payments attack debts.
type Strategy string

const (
	// StrategySnowball pays the smallest balance first for quick wins.
	StrategySnowball Strategy = "snowball"
	// StrategyAvalanche pays the highest APR first to minimize total interest.
	StrategyAvalanche Strategy = "avalanche"
)

// IsValid reports whether the strategy is one of the known values.
func (s Strategy) IsValid() bool {
	return s == StrategySnowball || s == StrategyAvalanche
}

// TargetByStrategy is the sentinel target meaning "follow the strategy order";
// any other target value names a specific debt to attack first.
const TargetByStrategy = "strategy"

// Debt is a single liability as supplied by the data source. Name doubles as
// the debt's identifier and must be unique within a debt set. MinimumPayment
// is fixed for the life of a simulation even as the balance shrinks.
type Debt struct {
	Name           string          `yaml:"name" json:"name"`
	Balance        decimal.Decimal `yaml:"balance" json:"balance"`
	APR            decimal.Decimal `yaml:"apr" json:"apr"` // percent, e.g. 24.99
	MinimumPayment decimal.Decimal `yaml:"minimum_payment" json:"minimum_payment"`
}

// MonthlyInterest returns one month of simple interest on the current balance.
func (d *Debt) MonthlyInterest() decimal.Decimal {
	return d.Balance.Mul(d.APR.Div(decimal.NewFromInt(100))).Div(decimal.NewFromInt(12))
}

// OneTimePayment is a single extra ("snowflake") payment applied in a specific
// simulation month. Month 1 is the first simulated month.
type OneTimePayment struct {
	Month  int             `yaml:"month" json:"month"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// Scenario bundles the payment policy for one what-if run. The zero value of
// TargetDebt is normalized to TargetByStrategy by the engine.
type Scenario struct {
	Name                string           `yaml:"name" json:"name"`
	Strategy            Strategy         `yaml:"strategy" json:"strategy"`
	ExtraMonthlyPayment decimal.Decimal  `yaml:"extra_monthly_payment" json:"extra_monthly_payment"`
	OneTimePayments     []OneTimePayment `yaml:"one_time_payments,omitempty" json:"one_time_payments,omitempty"`
	TargetDebt          string           `yaml:"target_debt,omitempty" json:"target_debt,omitempty"`
}

// GrowthSettings configures the investment growth projection.
type GrowthSettings struct {
	StartingAmount      decimal.Decimal `yaml:"starting_amount" json:"starting_amount"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnPercent decimal.Decimal `yaml:"annual_return_percent" json:"annual_return_percent"`
	Years               int             `yaml:"years" json:"years"`
}

// Configuration is the top-level input document: the debt set plus the
// scenarios to compare against the strategy-only baseline.
type Configuration struct {
	Debts     []Debt          `yaml:"debts" json:"debts"`
	Scenarios []Scenario      `yaml:"scenarios" json:"scenarios"`
	Growth    *GrowthSettings `yaml:"growth,omitempty" json:"growth,omitempty"`
}

// TotalBalance sums the starting balances of all debts.
func (c *Configuration) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Debts {
		total = total.Add(c.Debts[i].Balance)
	}
	return total
}

// TotalMinimumPayments sums the fixed minimum payments of all debts.
func (c *Configuration) TotalMinimumPayments() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Debts {
		total = total.Add(c.Debts[i].MinimumPayment)
	}
	return total
}
