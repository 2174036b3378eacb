package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Strategy", "Months", "TotalInterest", "MonthsSaved", "InterestSaved", "Truncated"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	baseline := []string{
		"Baseline",
		"",
		intToString(results.BaselineMonths),
		results.BaselineTotalInterest.StringFixed(2),
		"0",
		"0.00",
		strconv.FormatBool(results.Baseline.Truncated),
	}
	if err := w.Write(baseline); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		row := []string{
			sc.Name,
			string(sc.Strategy),
			intToString(sc.Months),
			sc.TotalInterest.StringFixed(2),
			intToString(sc.MonthsSaved),
			sc.InterestSaved.StringFixed(2),
			strconv.FormatBool(sc.Result.Truncated),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
