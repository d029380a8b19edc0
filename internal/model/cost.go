package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cost types (material, labor, other).
const (
	CostTypeMaterial = "anyag"
	CostTypeLabor    = "munkadij"
	CostTypeOther    = "egyeb"
)

// ValidCostType reports whether t is one of the three cost types.
func ValidCostType(t string) bool {
	return t == CostTypeMaterial || t == CostTypeLabor || t == CostTypeOther
}

// Cost is a flat-amount expense of a project, entered directly rather than
// derived from a quantity.
type Cost struct {
	ID          string          `json:"id" gorm:"size:36;primaryKey"`
	ProjectID   string          `json:"project_id" gorm:"size:36;not null;index"`
	Type        string          `json:"type" gorm:"size:20;not null"`
	Description string          `json:"description" gorm:"size:255;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
}

// BeforeCreate mints an id before creating the record.
func (c *Cost) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
