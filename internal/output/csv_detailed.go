package output

import (
	"bytes"
	"encoding/csv"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
)

// CSVDetailedExporter exports the full amortization schedules: one row per
// debt per simulated month, for the baseline and every scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Debt", "Month", "Payment", "Interest", "Principal", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := writeSchedules(w, "Baseline", &results.Baseline); err != nil {
		return nil, err
	}
	for i := range results.Scenarios {
		sc := &results.Scenarios[i]
		if err := writeSchedules(w, sc.Name, &sc.Result); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeSchedules(w *csv.Writer, scenario string, result *domain.PayoffResult) error {
	for _, schedule := range result.Amortization {
		for _, row := range schedule.Rows {
			record := []string{
				scenario,
				schedule.Name,
				intToString(row.Month),
				row.Payment.StringFixed(2),
				row.Interest.StringFixed(2),
				row.Principal.StringFixed(2),
				row.Balance.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}
	return nil
}
