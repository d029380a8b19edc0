package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"renomester/internal/errors"
	"renomester/internal/model"
	"renomester/internal/repository"
)

// CostService handles the flat-amount expenses of a project.
type CostService interface {
	ListByProject(ctx context.Context, actor *model.User, projectID string) ([]model.Cost, error)
	Save(ctx context.Context, actor *model.User, cost *model.Cost) (*model.Cost, error)
	Delete(ctx context.Context, actor *model.User, id string) error
}

type costService struct {
	costs    repository.CostRepository
	projects repository.ProjectRepository
}

// NewCostService creates a new cost service.
func NewCostService(costs repository.CostRepository, projects repository.ProjectRepository) CostService {
	return &costService{costs: costs, projects: projects}
}

func (s *costService) ListByProject(ctx context.Context, actor *model.User, projectID string) ([]model.Cost, error) {
	if _, err := ensureProjectAccess(ctx, s.projects, actor, projectID); err != nil {
		return nil, err
	}
	return s.costs.ListByProject(ctx, projectID)
}

// Save upserts a cost line after validating its type.
func (s *costService) Save(ctx context.Context, actor *model.User, cost *model.Cost) (*model.Cost, error) {
	if _, err := ensureProjectAccess(ctx, s.projects, actor, cost.ProjectID); err != nil {
		return nil, err
	}
	if !model.ValidCostType(cost.Type) {
		return nil, errors.ErrInvalidCostType
	}

	if err := s.costs.Upsert(ctx, cost); err != nil {
		return nil, fmt.Errorf("save cost: %w", err)
	}
	return cost, nil
}

// Delete removes a cost line; a missing id is a no-op.
func (s *costService) Delete(ctx context.Context, actor *model.User, id string) error {
	cost, err := s.costs.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	if _, err := ensureProjectAccess(ctx, s.projects, actor, cost.ProjectID); err != nil {
		return err
	}
	return s.costs.DeleteByID(ctx, id)
}
