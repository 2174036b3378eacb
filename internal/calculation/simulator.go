package calculation

import (
	"sort"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxSimulationMonths is the hard cap on simulated months (100 years). It
// guarantees termination when minimum payments never cover accrued interest
// and the balances grow instead of shrink.
const MaxSimulationMonths = 1200

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// PayoffSimulator runs the month-by-month debt amortization simulation. It is
// stateless between calls: every invocation copies its inputs and returns an
// independently owned result, so concurrent runs are safe.
type PayoffSimulator struct {
	Logger Logger
}

// NewPayoffSimulator creates a simulator with a no-op logger.
func NewPayoffSimulator() *PayoffSimulator {
	return &PayoffSimulator{Logger: NopLogger{}}
}

// workingDebt is the simulator's private mutable copy of one debt.
type workingDebt struct {
	name         string
	balance      decimal.Decimal
	apr          decimal.Decimal
	minPayment   decimal.Decimal
	interestPaid decimal.Decimal
	accrued      decimal.Decimal // interest accrued in the current month
	rows         []domain.AmortizationRow
}

// Simulate evolves the debt set month by month until every balance reaches
// zero or the safety cap is hit. extraMonthly below zero is clamped to zero,
// as are negative one-time amounts; when several one-time payments name the
// same month only the first entry in the slice applies. The caller's slices
// are never mutated.
func (ps *PayoffSimulator) Simulate(debts []domain.Debt, strategy domain.Strategy, extraMonthly decimal.Decimal, oneTimePayments []domain.OneTimePayment, targetDebt string) domain.PayoffResult {
	if len(debts) == 0 {
		return domain.PayoffResult{
			History:       []domain.MonthSnapshot{},
			TotalInterest: decimal.Zero,
			Amortization:  []domain.DebtSchedule{},
			PayoffMonth:   map[string]int{},
		}
	}

	if extraMonthly.IsNegative() {
		extraMonthly = decimal.Zero
	}
	if targetDebt == "" {
		targetDebt = domain.TargetByStrategy
	}

	working := make([]*workingDebt, len(debts))
	fixedMinimums := decimal.Zero
	for i := range debts {
		working[i] = &workingDebt{
			name:         debts[i].Name,
			balance:      debts[i].Balance,
			apr:          debts[i].APR,
			minPayment:   debts[i].MinimumPayment,
			interestPaid: decimal.Zero,
		}
		// Minimums are captured once: a paid-off debt's minimum keeps feeding
		// the pool, which is what rolls payments onto the next debt.
		fixedMinimums = fixedMinimums.Add(debts[i].MinimumPayment)
	}

	history := []domain.MonthSnapshot{snapshot(0, working)}
	payoffMonth := map[string]int{}
	totalInterest := decimal.Zero
	month := 0

	for anyPositive(working) && month < MaxSimulationMonths {
		month++

		pool := fixedMinimums.Add(extraMonthly)
		for _, otp := range oneTimePayments {
			if otp.Month == month {
				if otp.Amount.IsPositive() {
					pool = pool.Add(otp.Amount)
				}
				break
			}
		}

		// Interest accrues on every open balance before any payment lands.
		for _, wd := range working {
			wd.accrued = decimal.Zero
			if wd.balance.IsPositive() {
				interest := wd.balance.Mul(wd.apr.Div(hundred)).Div(twelve)
				wd.balance = wd.balance.Add(interest)
				wd.interestPaid = wd.interestPaid.Add(interest)
				wd.accrued = interest
				totalInterest = totalInterest.Add(interest)
			}
		}

		// Minimum payments go out unconditionally, in input order, each capped
		// by its own balance.
		for _, wd := range working {
			if !wd.balance.IsPositive() {
				continue
			}
			payment := decimal.Min(wd.balance, wd.minPayment)
			wd.balance = wd.balance.Sub(payment)
			pool = pool.Sub(payment)
			wd.rows = append(wd.rows, domain.AmortizationRow{
				Month:     month,
				Payment:   payment,
				Interest:  wd.accrued,
				Principal: payment.Sub(wd.accrued),
				Balance:   wd.balance,
			})
		}

		// Whatever is left in the pool sweeps debts in strategy order, with a
		// positive-balance target debt jumping the queue.
		for _, wd := range ps.extraPaymentOrder(working, strategy, targetDebt) {
			if !pool.IsPositive() {
				break
			}
			if !wd.balance.IsPositive() {
				continue
			}
			extra := decimal.Min(pool, wd.balance)
			wd.balance = wd.balance.Sub(extra)
			pool = pool.Sub(extra)
			if n := len(wd.rows); n > 0 && wd.rows[n-1].Month == month {
				row := &wd.rows[n-1]
				row.Payment = row.Payment.Add(extra)
				row.Principal = row.Principal.Add(extra)
				row.Balance = wd.balance
			} else {
				wd.rows = append(wd.rows, domain.AmortizationRow{
					Month:     month,
					Payment:   extra,
					Interest:  decimal.Zero,
					Principal: extra,
					Balance:   wd.balance,
				})
			}
		}

		for _, wd := range working {
			if wd.balance.IsNegative() {
				wd.balance = decimal.Zero
			}
			if !wd.balance.IsPositive() {
				if _, done := payoffMonth[wd.name]; !done {
					payoffMonth[wd.name] = month
				}
			}
		}

		history = append(history, snapshot(month, working))
	}

	truncated := anyPositive(working)
	if truncated {
		ps.Logger.Warnf("simulation stopped at the %d-month cap with open balances; minimum payments likely do not cover interest", MaxSimulationMonths)
	}

	amortization := make([]domain.DebtSchedule, len(working))
	for i, wd := range working {
		amortization[i] = domain.DebtSchedule{
			Name:         wd.name,
			InterestPaid: wd.interestPaid,
			Rows:         wd.rows,
		}
	}

	return domain.PayoffResult{
		History:       history,
		Months:        month,
		TotalInterest: totalInterest,
		Amortization:  amortization,
		PayoffMonth:   payoffMonth,
		Truncated:     truncated,
	}
}

// extraPaymentOrder sorts open debts for the extra-payment sweep. Avalanche
// orders by APR descending with smaller balance breaking ties; snowball (and
// any unknown strategy) orders by balance ascending with higher APR breaking
// ties. The tie-breaks keep the order deterministic for identical inputs.
func (ps *PayoffSimulator) extraPaymentOrder(working []*workingDebt, strategy domain.Strategy, targetDebt string) []*workingDebt {
	order := make([]*workingDebt, len(working))
	copy(order, working)

	if strategy == domain.StrategyAvalanche {
		sort.SliceStable(order, func(i, j int) bool {
			if !order[i].apr.Equal(order[j].apr) {
				return order[i].apr.GreaterThan(order[j].apr)
			}
			return order[i].balance.LessThan(order[j].balance)
		})
	} else {
		sort.SliceStable(order, func(i, j int) bool {
			if !order[i].balance.Equal(order[j].balance) {
				return order[i].balance.LessThan(order[j].balance)
			}
			return order[i].apr.GreaterThan(order[j].apr)
		})
	}

	if targetDebt == domain.TargetByStrategy {
		return order
	}
	for i, wd := range order {
		if wd.name == targetDebt && wd.balance.IsPositive() {
			reordered := make([]*workingDebt, 0, len(order))
			reordered = append(reordered, wd)
			reordered = append(reordered, order[:i]...)
			reordered = append(reordered, order[i+1:]...)
			return reordered
		}
	}
	return order
}

func anyPositive(working []*workingDebt) bool {
	for _, wd := range working {
		if wd.balance.IsPositive() {
			return true
		}
	}
	return false
}

func snapshot(month int, working []*workingDebt) domain.MonthSnapshot {
	balances := make(map[string]decimal.Decimal, len(working))
	total := decimal.Zero
	for _, wd := range working {
		b := wd.balance
		if b.IsNegative() {
			b = decimal.Zero
		}
		balances[wd.name] = b
		total = total.Add(b)
	}
	return domain.MonthSnapshot{Month: month, TotalBalance: total, Balances: balances}
}
