package config

import (
	"os"
	"testing"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yaml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "debts:\n" +
		"  - name: \"Rewards Visa\"\n" +
		"    balance: 4800\n" +
		"    apr: 24.99\n" +
		"    minimum_payment: 120\n" +
		"  - name: \"Car Loan\"\n" +
		"    balance: 13500\n" +
		"    apr: 6.49\n" +
		"    minimum_payment: 315\n\n" +
		"scenarios:\n" +
		"  - name: \"Extra 200\"\n" +
		"    strategy: \"avalanche\"\n" +
		"    extra_monthly_payment: 200\n" +
		"  - name: \"Refund\"\n" +
		"    strategy: \"snowball\"\n" +
		"    extra_monthly_payment: 0\n" +
		"    one_time_payments:\n" +
		"      - month: 3\n" +
		"        amount: 1500\n" +
		"    target_debt: \"Car Loan\"\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, testConfig))
	require.NoError(t, err)

	require.Len(t, config.Debts, 2)
	assert.Equal(t, "Rewards Visa", config.Debts[0].Name)
	assert.True(t, config.Debts[0].Balance.Equal(decimal.NewFromInt(4800)))
	assert.True(t, config.Debts[0].APR.Equal(decimal.NewFromFloat(24.99)))

	require.Len(t, config.Scenarios, 2)
	assert.Equal(t, domain.StrategyAvalanche, config.Scenarios[0].Strategy)
	require.Len(t, config.Scenarios[1].OneTimePayments, 1)
	assert.Equal(t, 3, config.Scenarios[1].OneTimePayments[0].Month)
	assert.Equal(t, "Car Loan", config.Scenarios[1].TargetDebt)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTempConfig(t, "debts: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	base := func() *domain.Configuration {
		return &domain.Configuration{
			Debts: []domain.Debt{
				{Name: "Visa", Balance: decimal.NewFromInt(1000), APR: decimal.NewFromInt(20), MinimumPayment: decimal.NewFromInt(25)},
			},
			Scenarios: []domain.Scenario{
				{Name: "Plain", Strategy: domain.StrategySnowball},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{"valid", func(c *domain.Configuration) {}, ""},
		{"empty debts allowed", func(c *domain.Configuration) { c.Debts = nil }, ""},
		{"no scenarios allowed", func(c *domain.Configuration) { c.Scenarios = nil }, ""},
		{"missing debt name", func(c *domain.Configuration) { c.Debts[0].Name = "" }, "debt name is required"},
		{"negative balance", func(c *domain.Configuration) { c.Debts[0].Balance = decimal.NewFromInt(-1) }, "balance cannot be negative"},
		{"negative apr", func(c *domain.Configuration) { c.Debts[0].APR = decimal.NewFromInt(-5) }, "APR cannot be negative"},
		{"negative minimum", func(c *domain.Configuration) { c.Debts[0].MinimumPayment = decimal.NewFromInt(-5) }, "minimum payment cannot be negative"},
		{"duplicate names", func(c *domain.Configuration) { c.Debts = append(c.Debts, c.Debts[0]) }, "duplicate debt name"},
		{"missing scenario name", func(c *domain.Configuration) { c.Scenarios[0].Name = "" }, "scenario name is required"},
		{"bad strategy", func(c *domain.Configuration) { c.Scenarios[0].Strategy = "blizzard" }, "strategy must be"},
		{"negative extra", func(c *domain.Configuration) {
			c.Scenarios[0].ExtraMonthlyPayment = decimal.NewFromInt(-10)
		}, "extra monthly payment cannot be negative"},
		{"one-time month zero", func(c *domain.Configuration) {
			c.Scenarios[0].OneTimePayments = []domain.OneTimePayment{{Month: 0, Amount: decimal.NewFromInt(100)}}
		}, "month must be 1 or later"},
		{"one-time amount zero", func(c *domain.Configuration) {
			c.Scenarios[0].OneTimePayments = []domain.OneTimePayment{{Month: 2, Amount: decimal.Zero}}
		}, "amount must be positive"},
		{"dangling target", func(c *domain.Configuration) { c.Scenarios[0].TargetDebt = "Yacht" }, "target debt"},
		{"sentinel target ok", func(c *domain.Configuration) { c.Scenarios[0].TargetDebt = domain.TargetByStrategy }, ""},
		{"named target ok", func(c *domain.Configuration) { c.Scenarios[0].TargetDebt = "Visa" }, ""},
		{"growth negative years", func(c *domain.Configuration) {
			c.Growth = &domain.GrowthSettings{Years: -2}
		}, "years must be between"},
		{"growth negative contribution", func(c *domain.Configuration) {
			c.Growth = &domain.GrowthSettings{Years: 5, MonthlyContribution: decimal.NewFromInt(-1)}
		}, "monthly contribution cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := base()
			tt.mutate(config)
			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidateConfiguration(config), "the example must validate")
	assert.NotEmpty(t, config.Debts)
	assert.NotEmpty(t, config.Scenarios)
	assert.NotNil(t, config.Growth)
}

func TestWriteExampleConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := writeTempConfig(t, "")
	require.NoError(t, parser.WriteExampleConfiguration(path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, len(parser.CreateExampleConfiguration().Debts), len(loaded.Debts))
	assert.True(t, loaded.Debts[0].APR.Equal(decimal.NewFromFloat(24.99)))
}
