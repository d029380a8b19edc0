package service

import (
	"context"
	"strings"

	"renomester/internal/errors"
	"renomester/internal/model"
	"renomester/internal/repository"
)

// StatusService manages the open set of project statuses. Values can only
// be appended, never removed.
type StatusService interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, actor *model.User, value string) error
	SeedDefaults(ctx context.Context) error
}

type statusService struct {
	statuses repository.StatusRepository
}

// NewStatusService creates a new status service.
func NewStatusService(statuses repository.StatusRepository) StatusService {
	return &statusService{statuses: statuses}
}

func (s *statusService) List(ctx context.Context) ([]string, error) {
	return s.statuses.List(ctx)
}

// Add appends a status value to the registry. Admin only; duplicates are
// silently ignored.
func (s *statusService) Add(ctx context.Context, actor *model.User, value string) error {
	if !actor.IsAdmin() {
		return errors.ErrAdminOnly
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.ErrUnknownStatus
	}
	return s.statuses.Add(ctx, value)
}

// SeedDefaults fills an empty registry with the four default statuses.
func (s *statusService) SeedDefaults(ctx context.Context) error {
	count, err := s.statuses.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, v := range model.DefaultStatuses {
		if err := s.statuses.Add(ctx, v); err != nil {
			return err
		}
	}
	return nil
}
