package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a renovation/construction project.
//
// CreatedByID is set at creation and never changes. A legacy row without it
// keeps the empty string, which acts as a sentinel that matches no real user
// id, so such projects are visible to admins only. AssignedUsers holds the
// ids of users granted visibility beyond the creator.
type Project struct {
	ID            string     `json:"id" gorm:"size:36;primaryKey"`
	Name          string     `json:"name" gorm:"size:255;not null"`
	Description   string     `json:"description" gorm:"type:text"`
	Status        string     `json:"status" gorm:"size:50;index"`
	CustomerName  string     `json:"customer_name" gorm:"size:255"`
	CustomerEmail string     `json:"customer_email" gorm:"size:255"`
	CustomerPhone string     `json:"customer_phone" gorm:"size:50"`
	Location      string     `json:"location" gorm:"size:255"`
	StartDate     string     `json:"start_date" gorm:"size:10"`
	EndDate       string     `json:"end_date" gorm:"size:10"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CreatedBy     string     `json:"created_by" gorm:"size:255"`
	CreatedByID   string     `json:"created_by_id" gorm:"size:36;index"`
	AssignedUsers StringList `json:"assigned_users" gorm:"type:text"`
}

// BeforeCreate mints an id before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Normalize repairs fields a legacy record may be missing.
func (p *Project) Normalize() {
	if p.AssignedUsers == nil {
		p.AssignedUsers = StringList{}
	}
}
