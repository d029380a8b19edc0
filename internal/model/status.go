package model

import "time"

// DefaultStatuses seeds the custom status registry. The registry is open:
// admins append new values and nothing ever removes one.
var DefaultStatuses = []string{"felmeres", "arajanlat", "kivitelezes", "kesz"}

// CustomStatus is an allowed value for Project.Status.
type CustomStatus struct {
	Value     string    `json:"value" gorm:"size:50;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the registry in its own compact table.
func (CustomStatus) TableName() string {
	return "custom_statuses"
}
