package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaterialUnits is the fixed list of accepted quantity units
// (piece, meter, m², m³, kilogram, tonne, running meter, package).
var MaterialUnits = []string{"db", "m", "m2", "m3", "kg", "t", "fm", "csomag"}

// ValidUnit reports whether unit is in MaterialUnits.
func ValidUnit(unit string) bool {
	for _, u := range MaterialUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// Material is a priced material line of a project. The line total is always
// derived as quantity × unit price and never stored.
type Material struct {
	ID        string          `json:"id" gorm:"size:36;primaryKey"`
	ProjectID string          `json:"project_id" gorm:"size:36;not null;index"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Quantity  decimal.Decimal `json:"quantity" gorm:"type:decimal(20,3);not null"`
	Unit      string          `json:"unit" gorm:"size:20;not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(20,2);not null"`
	Supplier  string          `json:"supplier" gorm:"size:255"`
	Note      string          `json:"note" gorm:"type:text"`
}

// LineTotal returns quantity × unit price. This exact value feeds both the
// rendered row and the material total sum.
func (m *Material) LineTotal() decimal.Decimal {
	return m.Quantity.Mul(m.UnitPrice)
}

// BeforeCreate mints an id before creating the record.
func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
