package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"renomester/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeTotals(t *testing.T) {
	t.Run("empty input yields zero totals", func(t *testing.T) {
		totals := ComputeTotals(nil, nil)
		assert.True(t, totals.MaterialTotal.IsZero())
		assert.True(t, totals.CostTotal.IsZero())
		assert.True(t, totals.GrandTotal.IsZero())
	})

	t.Run("materials and costs sum into the grand total", func(t *testing.T) {
		materials := []model.Material{
			{Name: "Csempe", Quantity: dec("3"), Unit: "m2", UnitPrice: dec("1000")},
			{Name: "Fugázó", Quantity: dec("2"), Unit: "csomag", UnitPrice: dec("500")},
		}
		costs := []model.Cost{
			{Type: model.CostTypeLabor, Description: "Burkolás", Amount: dec("2000")},
		}

		totals := ComputeTotals(materials, costs)
		assert.Equal(t, "4000", totals.MaterialTotal.String())
		assert.Equal(t, "2000", totals.CostTotal.String())
		assert.Equal(t, "6000", totals.GrandTotal.String())
	})

	t.Run("grand total equals the sum of the two subtotals", func(t *testing.T) {
		materials := []model.Material{
			{Quantity: dec("1.5"), UnitPrice: dec("333")},
			{Quantity: dec("0.25"), UnitPrice: dec("1999")},
		}
		costs := []model.Cost{
			{Amount: dec("1234.56")},
			{Amount: dec("0.44")},
		}

		totals := ComputeTotals(materials, costs)
		assert.True(t, totals.GrandTotal.Equal(totals.MaterialTotal.Add(totals.CostTotal)))
	})

	t.Run("line totals match quantity times unit price", func(t *testing.T) {
		m := model.Material{Quantity: dec("2.5"), UnitPrice: dec("1200")}
		assert.Equal(t, "3000", m.LineTotal().String())

		totals := ComputeTotals([]model.Material{m}, nil)
		assert.True(t, totals.MaterialTotal.Equal(m.LineTotal()))
	})
}

func TestFormatForint(t *testing.T) {
	// the Hungarian locale groups digits with a non-breaking space
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0 Ft"},
		{"6000", "6 000 Ft"},
		{"1234567", "1 234 567 Ft"},
		{"2000.4", "2 000 Ft"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatForint(dec(tt.amount)))
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Felmérés", StatusLabel("felmeres"))
	assert.Equal(t, "Kész", TaskStatusLabel("done"))
	assert.Equal(t, "Munkadíj", CostTypeLabel("munkadij"))

	// unknown values render verbatim, never as an error
	assert.Equal(t, "garancialis-javitas", StatusLabel("garancialis-javitas"))
	assert.Equal(t, "paused", TaskStatusLabel("paused"))
	assert.Equal(t, "rezsi", CostTypeLabel("rezsi"))
}
