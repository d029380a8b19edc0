package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"renomester/internal/model"
	"renomester/internal/repository"
	"renomester/internal/storage"
)

// Upload is one binary payload handed to the file service.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// FileService handles project attachments: payloads on disk, records in the
// store. The locator written into each record is opaque to every consumer.
type FileService interface {
	ListByProject(ctx context.Context, actor *model.User, projectID string) ([]model.AppFile, error)
	Upload(ctx context.Context, actor *model.User, projectID, taskID string, uploads []Upload) ([]model.AppFile, error)
	Delete(ctx context.Context, actor *model.User, id string) error
}

type fileService struct {
	files    repository.FileRepository
	projects repository.ProjectRepository
	disk     *storage.Disk
}

// NewFileService creates a new file service.
func NewFileService(files repository.FileRepository, projects repository.ProjectRepository, disk *storage.Disk) FileService {
	return &fileService{files: files, projects: projects, disk: disk}
}

func (s *fileService) ListByProject(ctx context.Context, actor *model.User, projectID string) ([]model.AppFile, error) {
	if _, err := ensureProjectAccess(ctx, s.projects, actor, projectID); err != nil {
		return nil, err
	}
	return s.files.ListByProject(ctx, projectID)
}

// Upload stores a batch of payloads and creates one record per payload.
func (s *fileService) Upload(ctx context.Context, actor *model.User, projectID, taskID string, uploads []Upload) ([]model.AppFile, error) {
	if _, err := ensureProjectAccess(ctx, s.projects, actor, projectID); err != nil {
		return nil, err
	}

	records := make([]model.AppFile, 0, len(uploads))
	for _, up := range uploads {
		stored, err := s.disk.Save(up.Filename, up.Data)
		if err != nil {
			return records, fmt.Errorf("store %s: %w", up.Filename, err)
		}

		contentType := up.ContentType
		if contentType == "" {
			contentType = http.DetectContentType(up.Data)
		}

		record := model.AppFile{
			Filename:   up.Filename,
			FilePath:   "/files/" + stored,
			FileType:   contentType,
			UploadedBy: actor.Name,
			ProjectID:  projectID,
			TaskID:     taskID,
			CreatedAt:  time.Now(),
		}
		if err := s.files.Upsert(ctx, &record); err != nil {
			return records, fmt.Errorf("save file record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Delete removes a file record and its stored payload. A missing id is a
// no-op; a missing payload is ignored, the two are deleted independently.
func (s *fileService) Delete(ctx context.Context, actor *model.User, id string) error {
	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	if _, err := ensureProjectAccess(ctx, s.projects, actor, file.ProjectID); err != nil {
		return err
	}

	if s.disk != nil {
		_ = s.disk.Delete(file.FilePath)
	}
	return s.files.DeleteByID(ctx, id)
}
