package calculation

import (
	"fmt"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates payoff simulations and scenario comparisons.
type CalculationEngine struct {
	Simulator *PayoffSimulator
	Logger    Logger
}

// NewCalculationEngine creates a new calculation engine.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Simulator: NewPayoffSimulator(),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine and its simulator. If nil is
// provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Simulator.Logger = l
}

// RunScenario runs one what-if scenario and its strategy-only baseline
// (same debts and strategy, no extra or one-time payments, no target) and
// reports the months and interest the scenario saves.
func (ce *CalculationEngine) RunScenario(config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if !scenario.Strategy.IsValid() {
		return nil, fmt.Errorf("scenario %q: unknown strategy %q", scenario.Name, scenario.Strategy)
	}
	target := scenario.TargetDebt
	if target == "" {
		target = domain.TargetByStrategy
	}
	if target != domain.TargetByStrategy && !hasDebt(config.Debts, target) {
		return nil, fmt.Errorf("scenario %q: target debt %q not found", scenario.Name, target)
	}

	baseline := ce.Simulator.Simulate(config.Debts, scenario.Strategy, decimal.Zero, nil, domain.TargetByStrategy)
	result := ce.Simulator.Simulate(config.Debts, scenario.Strategy, scenario.ExtraMonthlyPayment, scenario.OneTimePayments, target)

	ce.Logger.Debugf("scenario %q: baseline %d months, scenario %d months", scenario.Name, baseline.Months, result.Months)

	return &domain.ScenarioSummary{
		Name:          scenario.Name,
		Strategy:      scenario.Strategy,
		Months:        result.Months,
		TotalInterest: result.TotalInterest,
		MonthsSaved:   baseline.Months - result.Months,
		InterestSaved: baseline.TotalInterest.Sub(result.TotalInterest),
		Result:        result,
	}, nil
}

// RunScenarios runs every configured scenario and assembles the comparison
// consumed by the report formatters. The comparison baseline follows the first
// scenario's strategy (snowball when no scenarios are configured) with minimum
// payments only.
func (ce *CalculationEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	baselineStrategy := domain.StrategySnowball
	if len(config.Scenarios) > 0 && config.Scenarios[0].Strategy.IsValid() {
		baselineStrategy = config.Scenarios[0].Strategy
	}
	baseline := ce.Simulator.Simulate(config.Debts, baselineStrategy, decimal.Zero, nil, domain.TargetByStrategy)

	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i := range config.Scenarios {
		summary, err := ce.RunScenario(config, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		scenarios[i] = *summary
	}

	comparison := &domain.ScenarioComparison{
		BaselineMonths:        baseline.Months,
		BaselineTotalInterest: baseline.TotalInterest,
		Baseline:              baseline,
		Scenarios:             scenarios,
		Assumptions:           ce.generateAssumptions(config, baselineStrategy),
	}

	if config.Growth != nil {
		comparison.Growth = ProjectInvestmentGrowth(*config.Growth)
	}

	return comparison, nil
}

func hasDebt(debts []domain.Debt, name string) bool {
	for i := range debts {
		if debts[i].Name == name {
			return true
		}
	}
	return false
}
