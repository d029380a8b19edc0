package report

import (
	"github.com/shopspring/decimal"

	"renomester/internal/model"
)

// Totals holds the aggregated financials of a project. Forint amounts are
// integer-denominated; decimals keep repeated sums exact.
type Totals struct {
	MaterialTotal decimal.Decimal `json:"material_total"`
	CostTotal     decimal.Decimal `json:"cost_total"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// ComputeTotals sums material line totals and cost amounts. Empty inputs
// yield zero totals. Each material contributes exactly its LineTotal, the
// same value the composed report displays for that row.
func ComputeTotals(materials []model.Material, costs []model.Cost) Totals {
	materialTotal := decimal.Zero
	for i := range materials {
		materialTotal = materialTotal.Add(materials[i].LineTotal())
	}

	costTotal := decimal.Zero
	for i := range costs {
		costTotal = costTotal.Add(costs[i].Amount)
	}

	return Totals{
		MaterialTotal: materialTotal,
		CostTotal:     costTotal,
		GrandTotal:    materialTotal.Add(costTotal),
	}
}
