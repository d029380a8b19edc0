package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"renomester/internal/model"
)

func admin() *model.User {
	return &model.User{ID: "u1", Name: "Kovács Admin János", Role: model.RoleAdmin}
}

func regular() *model.User {
	return &model.User{ID: "u2", Name: "Szabó Péter", Role: model.RoleUser}
}

func TestVisibleProjects(t *testing.T) {
	projects := []model.Project{
		{ID: "pA", Name: "A", CreatedByID: "u2"},
		{ID: "pB", Name: "B", CreatedByID: "u1", AssignedUsers: model.StringList{"u2"}},
		{ID: "pC", Name: "C", CreatedByID: "u1"},
		{ID: "pLegacy", Name: "Legacy"}, // no creator recorded
	}

	t.Run("admin sees everything", func(t *testing.T) {
		visible := VisibleProjects(admin(), projects)
		assert.Len(t, visible, len(projects))
	})

	t.Run("user sees created and assigned only", func(t *testing.T) {
		visible := VisibleProjects(regular(), projects)
		assert.Len(t, visible, 2)
		assert.Equal(t, "pA", visible[0].ID)
		assert.Equal(t, "pB", visible[1].ID)
	})

	t.Run("every visible project passes the predicate", func(t *testing.T) {
		user := regular()
		for _, p := range VisibleProjects(user, projects) {
			assert.True(t, CanAccessProject(user, &p))
		}
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Empty(t, VisibleProjects(regular(), nil))
	})
}

func TestCanAccessProject(t *testing.T) {
	tests := []struct {
		name    string
		user    *model.User
		project model.Project
		want    bool
	}{
		{"admin always", admin(), model.Project{ID: "p1"}, true},
		{"creator", regular(), model.Project{ID: "p1", CreatedByID: "u2"}, true},
		{"assignee", regular(), model.Project{ID: "p1", CreatedByID: "u1", AssignedUsers: model.StringList{"u2"}}, true},
		{"stranger", regular(), model.Project{ID: "p1", CreatedByID: "u1"}, false},
		// a record with no creator must never match a real user id
		{"legacy record hidden from users", regular(), model.Project{ID: "p1"}, false},
		{"legacy record visible to admin", admin(), model.Project{ID: "p1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessProject(tt.user, &tt.project))
		})
	}
}
