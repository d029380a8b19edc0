package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"renomester/internal/errors"
	"renomester/internal/model"
	"renomester/internal/repository"
)

// MaterialService handles the priced material lines of a project.
type MaterialService interface {
	ListByProject(ctx context.Context, actor *model.User, projectID string) ([]model.Material, error)
	Save(ctx context.Context, actor *model.User, material *model.Material) (*model.Material, error)
	Delete(ctx context.Context, actor *model.User, id string) error
}

type materialService struct {
	materials repository.MaterialRepository
	projects  repository.ProjectRepository
}

// NewMaterialService creates a new material service.
func NewMaterialService(materials repository.MaterialRepository, projects repository.ProjectRepository) MaterialService {
	return &materialService{materials: materials, projects: projects}
}

func (s *materialService) ListByProject(ctx context.Context, actor *model.User, projectID string) ([]model.Material, error) {
	if _, err := ensureProjectAccess(ctx, s.projects, actor, projectID); err != nil {
		return nil, err
	}
	return s.materials.ListByProject(ctx, projectID)
}

// Save upserts a material line after validating its unit.
func (s *materialService) Save(ctx context.Context, actor *model.User, material *model.Material) (*model.Material, error) {
	if _, err := ensureProjectAccess(ctx, s.projects, actor, material.ProjectID); err != nil {
		return nil, err
	}
	if !model.ValidUnit(material.Unit) {
		return nil, errors.ErrInvalidUnit
	}

	if err := s.materials.Upsert(ctx, material); err != nil {
		return nil, fmt.Errorf("save material: %w", err)
	}
	return material, nil
}

// Delete removes a material line; a missing id is a no-op.
func (s *materialService) Delete(ctx context.Context, actor *model.User, id string) error {
	material, err := s.materials.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	if _, err := ensureProjectAccess(ctx, s.projects, actor, material.ProjectID); err != nil {
		return err
	}
	return s.materials.DeleteByID(ctx, id)
}
