package service

import (
	"context"
	"fmt"
	"time"

	"renomester/internal/model"
	"renomester/internal/report"
	"renomester/internal/repository"
)

// ReportService produces the printable project data sheet.
type ReportService interface {
	Generate(ctx context.Context, actor *model.User, projectID string) (filename string, pdf []byte, err error)
}

type reportService struct {
	projects  repository.ProjectRepository
	tasks     repository.TaskRepository
	materials repository.MaterialRepository
	costs     repository.CostRepository
	now       func() time.Time
}

// NewReportService creates a new report service.
func NewReportService(
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	materials repository.MaterialRepository,
	costs repository.CostRepository,
) ReportService {
	return &reportService{
		projects:  projects,
		tasks:     tasks,
		materials: materials,
		costs:     costs,
		now:       time.Now,
	}
}

// Generate loads one consistent snapshot of the project and its children,
// aggregates the financials and composes the PDF.
func (s *reportService) Generate(ctx context.Context, actor *model.User, projectID string) (string, []byte, error) {
	project, err := ensureProjectAccess(ctx, s.projects, actor, projectID)
	if err != nil {
		return "", nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return "", nil, fmt.Errorf("load tasks: %w", err)
	}
	materials, err := s.materials.ListByProject(ctx, projectID)
	if err != nil {
		return "", nil, fmt.Errorf("load materials: %w", err)
	}
	costs, err := s.costs.ListByProject(ctx, projectID)
	if err != nil {
		return "", nil, fmt.Errorf("load costs: %w", err)
	}

	pdf, err := report.Compose(project, tasks, materials, costs, s.now())
	if err != nil {
		return "", nil, err
	}
	return report.Filename(project.Name), pdf, nil
}
