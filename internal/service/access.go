package service

import (
	"context"

	"gorm.io/gorm"

	"renomester/internal/errors"
	"renomester/internal/model"
	"renomester/internal/repository"
)

// VisibleProjects narrows a project collection to what one user may see.
// Admins see everything, order preserved as stored. Everyone else sees the
// projects they created or are assigned to. Pure function, never errors:
// empty input yields empty output.
func VisibleProjects(user *model.User, projects []model.Project) []model.Project {
	if user.IsAdmin() {
		return projects
	}
	visible := make([]model.Project, 0, len(projects))
	for i := range projects {
		if CanAccessProject(user, &projects[i]) {
			visible = append(visible, projects[i])
		}
	}
	return visible
}

// CanAccessProject reports whether the user may see the project. A missing
// created_by_id (legacy record) matches no user id, so such projects never
// leak to non-admins; a missing assigned_users list counts as empty.
func CanAccessProject(user *model.User, project *model.Project) bool {
	if user.IsAdmin() {
		return true
	}
	if project.CreatedByID != "" && project.CreatedByID == user.ID {
		return true
	}
	return project.AssignedUsers.Contains(user.ID)
}

// ensureProjectAccess loads a project and checks the actor may see it.
// Every child-entity mutation path goes through this instead of trusting
// the caller.
func ensureProjectAccess(ctx context.Context, projects repository.ProjectRepository, actor *model.User, projectID string) (*model.Project, error) {
	project, err := projects.FindByID(ctx, projectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, err
	}
	if !CanAccessProject(actor, project) {
		return nil, errors.ErrProjectAccessDenied
	}
	return project, nil
}
