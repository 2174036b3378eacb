package calculation

import (
	"github.com/TheAugDev/smart-steps-to-wealth/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectInvestmentGrowth compounds a starting principal with fixed monthly
// contributions at settings.AnnualReturnPercent/12 per month, emitting one
// point per year including year 0. Contributions are added before each month's
// growth is applied.
func ProjectInvestmentGrowth(settings domain.GrowthSettings) []domain.GrowthPoint {
	if settings.Years < 0 {
		return []domain.GrowthPoint{}
	}

	monthlyRate := settings.AnnualReturnPercent.Div(hundred).Div(twelve)
	growthFactor := decimal.NewFromInt(1).Add(monthlyRate)

	points := make([]domain.GrowthPoint, 0, settings.Years+1)
	value := settings.StartingAmount
	for year := 0; year <= settings.Years; year++ {
		points = append(points, domain.GrowthPoint{Year: year, Value: value})
		if year < settings.Years {
			for month := 1; month <= 12; month++ {
				value = value.Add(settings.MonthlyContribution).Mul(growthFactor)
			}
		}
	}
	return points
}
