package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppFile is an uploaded attachment. FilePath is an opaque locator returned
// by the storage collaborator; nothing in the system ever parses it. TaskID
// is optional and ties the file to one task of the owning project.
type AppFile struct {
	ID         string    `json:"id" gorm:"size:36;primaryKey"`
	Filename   string    `json:"filename" gorm:"size:255;not null"`
	FilePath   string    `json:"file_path" gorm:"size:512;not null"`
	FileType   string    `json:"file_type" gorm:"size:100"`
	UploadedBy string    `json:"uploaded_by" gorm:"size:255"`
	ProjectID  string    `json:"project_id" gorm:"size:36;not null;index"`
	TaskID     string    `json:"task_id,omitempty" gorm:"size:36;index"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate mints an id before creating the record.
func (f *AppFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
