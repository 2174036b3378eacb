package config

import (
	"fmt"
	"os"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files. The parser owns
// all input validation; the simulation engine deliberately accepts whatever
// it is handed, so anything loaded through here is safe to simulate.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. An empty debt
// list is allowed (the engine returns a zero-value result for it); malformed
// numbers, duplicate names, and dangling references are not.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	seen := make(map[string]bool, len(config.Debts))
	for i := range config.Debts {
		if err := ip.validateDebt(&config.Debts[i]); err != nil {
			return fmt.Errorf("debt %d validation failed: %w", i, err)
		}
		if seen[config.Debts[i].Name] {
			return fmt.Errorf("duplicate debt name %q", config.Debts[i].Name)
		}
		seen[config.Debts[i].Name] = true
	}

	for i := range config.Scenarios {
		if err := ip.validateScenario(&config.Scenarios[i], seen); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	if config.Growth != nil {
		if err := ip.validateGrowth(config.Growth); err != nil {
			return fmt.Errorf("growth validation failed: %w", err)
		}
	}

	return nil
}

// validateDebt validates a single debt record.
func (ip *InputParser) validateDebt(debt *domain.Debt) error {
	if debt.Name == "" {
		return fmt.Errorf("debt name is required")
	}
	if debt.Balance.LessThan(decimal.Zero) {
		return fmt.Errorf("balance cannot be negative")
	}
	if debt.APR.LessThan(decimal.Zero) {
		return fmt.Errorf("APR cannot be negative")
	}
	if debt.MinimumPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("minimum payment cannot be negative")
	}
	return nil
}

// validateScenario validates a single what-if scenario against the debt set.
func (ip *InputParser) validateScenario(scenario *domain.Scenario, debts map[string]bool) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if !scenario.Strategy.IsValid() {
		return fmt.Errorf("strategy must be %q or %q, got %q", domain.StrategySnowball, domain.StrategyAvalanche, scenario.Strategy)
	}
	if scenario.ExtraMonthlyPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("extra monthly payment cannot be negative")
	}
	for i, otp := range scenario.OneTimePayments {
		if otp.Month < 1 {
			return fmt.Errorf("one-time payment %d: month must be 1 or later", i)
		}
		if otp.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("one-time payment %d: amount must be positive", i)
		}
	}
	if scenario.TargetDebt != "" && scenario.TargetDebt != domain.TargetByStrategy && !debts[scenario.TargetDebt] {
		return fmt.Errorf("target debt %q not found in debt list", scenario.TargetDebt)
	}
	return nil
}

// validateGrowth validates the optional investment growth settings.
func (ip *InputParser) validateGrowth(growth *domain.GrowthSettings) error {
	if growth.StartingAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("starting amount cannot be negative")
	}
	if growth.MonthlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if growth.AnnualReturnPercent.LessThan(decimal.NewFromInt(-100)) {
		return fmt.Errorf("annual return cannot be less than -100%%")
	}
	if growth.Years < 0 || growth.Years > 100 {
		return fmt.Errorf("years must be between 0 and 100")
	}
	return nil
}

// CreateExampleConfiguration creates a starter configuration with a typical
// three-debt household and two what-if scenarios.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Debts: []domain.Debt{
			{
				Name:           "Rewards Visa",
				Balance:        decimal.NewFromInt(4800),
				APR:            decimal.NewFromFloat(24.99),
				MinimumPayment: decimal.NewFromInt(120),
			},
			{
				Name:           "Car Loan",
				Balance:        decimal.NewFromInt(13500),
				APR:            decimal.NewFromFloat(6.49),
				MinimumPayment: decimal.NewFromInt(315),
			},
			{
				Name:           "Student Loan",
				Balance:        decimal.NewFromInt(22000),
				APR:            decimal.NewFromFloat(4.99),
				MinimumPayment: decimal.NewFromInt(240),
			},
		},
		Scenarios: []domain.Scenario{
			{
				Name:                "Extra 200 avalanche",
				Strategy:            domain.StrategyAvalanche,
				ExtraMonthlyPayment: decimal.NewFromInt(200),
			},
			{
				Name:                "Tax refund snowball",
				Strategy:            domain.StrategySnowball,
				ExtraMonthlyPayment: decimal.NewFromInt(100),
				OneTimePayments: []domain.OneTimePayment{
					{Month: 3, Amount: decimal.NewFromInt(1500)},
				},
			},
		},
		Growth: &domain.GrowthSettings{
			StartingAmount:      decimal.NewFromInt(5000),
			MonthlyContribution: decimal.NewFromInt(500),
			AnnualReturnPercent: decimal.NewFromInt(7),
			Years:               20,
		},
	}
}

// WriteExampleConfiguration writes the example configuration as YAML.
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
