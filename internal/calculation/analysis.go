package calculation

import (
	"fmt"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
)

// generateAssumptions describes the inputs and model behind a comparison so
// reports can state what the numbers assume.
func (ce *CalculationEngine) generateAssumptions(config *domain.Configuration, baselineStrategy domain.Strategy) []string {
	assumptions := []string{
		fmt.Sprintf("%d debts totaling $%s with combined minimum payments of $%s/month",
			len(config.Debts), config.TotalBalance().StringFixed(2), config.TotalMinimumPayments().StringFixed(2)),
		fmt.Sprintf("Baseline pays minimums only in %s order", baselineStrategy),
		"Interest compounds monthly on the pre-payment balance (APR/12)",
		"Minimum payments stay fixed for the life of each debt; freed-up minimums roll onto the next debt",
	}
	for i := range config.Debts {
		d := &config.Debts[i]
		if d.Balance.IsPositive() && d.MinimumPayment.LessThan(d.MonthlyInterest()) {
			assumptions = append(assumptions, fmt.Sprintf(
				"%s: minimum payment $%s does not cover first-month interest $%s; the balance grows until extra payments close the gap",
				d.Name, d.MinimumPayment.StringFixed(2), d.MonthlyInterest().StringFixed(2)))
		}
	}
	return assumptions
}
