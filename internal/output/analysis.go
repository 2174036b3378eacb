package output

import (
	"sort"

	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName  string
	MonthsSaved   int
	InterestSaved decimal.Decimal
}

// AnalyzeScenarios determines the scenario that saves the most interest over
// its baseline, breaking ties by months saved. Extracted from embedded
// console logic for testability.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranked := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].InterestSaved.Equal(ranked[j].InterestSaved) {
			return ranked[i].InterestSaved.GreaterThan(ranked[j].InterestSaved)
		}
		return ranked[i].MonthsSaved > ranked[j].MonthsSaved
	})
	best := ranked[0]
	return Recommendation{
		ScenarioName:  best.Name,
		MonthsSaved:   best.MonthsSaved,
		InterestSaved: best.InterestSaved,
	}
}
