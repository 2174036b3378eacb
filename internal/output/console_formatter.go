package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
)

// ConsoleFormatter renders a concise text summary of the payoff comparison.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "DEBT PAYOFF SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Baseline (minimums only): debt-free in %s, %s interest\n",
		FormatMonths(results.BaselineMonths), FormatCurrency(results.BaselineTotalInterest))
	if results.Baseline.Truncated {
		fmt.Fprintln(&buf, "  WARNING: baseline never converges; minimum payments do not cover interest")
	}
	fmt.Fprintln(&buf)

	for _, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "%s (%s): debt-free in %s, %s interest\n",
			sc.Name, sc.Strategy, FormatMonths(sc.Months), FormatCurrency(sc.TotalInterest))
		fmt.Fprintf(&buf, "  Saves %s and %s vs. baseline\n",
			FormatMonths(sc.MonthsSaved), FormatCurrency(sc.InterestSaved))
		if sc.Result.Truncated {
			fmt.Fprintln(&buf, "  WARNING: stopped at the simulation cap with open balances")
		}

		names := make([]string, 0, len(sc.Result.PayoffMonth))
		for name := range sc.Result.PayoffMonth {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if sc.Result.PayoffMonth[names[i]] != sc.Result.PayoffMonth[names[j]] {
				return sc.Result.PayoffMonth[names[i]] < sc.Result.PayoffMonth[names[j]]
			}
			return names[i] < names[j]
		})
		for _, name := range names {
			fmt.Fprintf(&buf, "  %s paid off at month %d\n", name, sc.Result.PayoffMonth[name])
		}
		fmt.Fprintln(&buf)
	}

	if rec := AnalyzeScenarios(results); rec.ScenarioName != "" {
		fmt.Fprintf(&buf, "Recommended: %s (saves %s / %s)\n",
			rec.ScenarioName, FormatCurrency(rec.InterestSaved), FormatMonths(rec.MonthsSaved))
	}

	if len(results.Growth) > 0 {
		final := results.Growth[len(results.Growth)-1]
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Investment growth projection: %s after %d years\n",
			FormatCurrency(final.Value), final.Year)
	}

	if len(results.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Assumptions:")
		for _, a := range results.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}

	return buf.Bytes(), nil
}
