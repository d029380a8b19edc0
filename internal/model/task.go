package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task statuses.
const (
	TaskStatusOpen       = "open"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// ValidTaskStatus reports whether s is one of the three task statuses.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusOpen || s == TaskStatusInProgress || s == TaskStatusDone
}

// Task is a unit of work inside a project. Order is a dense per-project
// integer 0..N-1 defining display sequence; reordering swaps two values and
// never renumbers the rest.
type Task struct {
	ID          string `json:"id" gorm:"size:36;primaryKey"`
	ProjectID   string `json:"project_id" gorm:"size:36;not null;index"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	Status      string `json:"status" gorm:"size:20;not null;default:'open'"`
	StartDate   string `json:"start_date" gorm:"size:10"`
	DueDate     string `json:"due_date" gorm:"size:10"`
	Order       int    `json:"order" gorm:"column:sort_order;not null"`
	CreatedBy   string `json:"created_by" gorm:"size:255"`
}

// BeforeCreate mints an id before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
