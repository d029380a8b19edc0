package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"renomester/internal/model"
)

func sampleProject() *model.Project {
	return &model.Project{
		ID:            "p1",
		Name:          "Belvárosi Lakásfelújítás",
		Description:   "A teljes elektromos hálózat és vízhálózat cseréje, valamint burkolás.",
		Status:        "kivitelezes",
		CustomerName:  "Nagy Erzsébet",
		CustomerEmail: "nagy.erzsi@example.com",
		CustomerPhone: "+36 30 123 4567",
		Location:      "1051 Budapest, Sas utca 4.",
		StartDate:     "2024-03-01",
		EndDate:       "2024-05-15",
	}
}

func sampleChildren() ([]model.Task, []model.Material, []model.Cost) {
	tasks := []model.Task{
		{ID: "t0", Title: "Bontás", Status: model.TaskStatusDone, DueDate: "2024-03-10", Order: 0},
		{ID: "t1", Title: "Villanyszerelés", Status: model.TaskStatusInProgress, DueDate: "2024-04-01", Order: 1},
	}
	materials := []model.Material{
		{ID: "m0", Name: "Csempe", Quantity: dec("12"), Unit: "m2", UnitPrice: dec("4500")},
	}
	costs := []model.Cost{
		{ID: "c0", Type: model.CostTypeLabor, Description: "Burkolás", Amount: dec("150000")},
	}
	return tasks, materials, costs
}

func TestCompose(t *testing.T) {
	generatedAt := time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC)

	t.Run("produces a PDF document", func(t *testing.T) {
		tasks, materials, costs := sampleChildren()
		pdf, err := Compose(sampleProject(), tasks, materials, costs, generatedAt)

		assert.NoError(t, err)
		assert.True(t, len(pdf) > 0)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})

	t.Run("same input yields byte-identical output", func(t *testing.T) {
		tasks, materials, costs := sampleChildren()
		first, err := Compose(sampleProject(), tasks, materials, costs, generatedAt)
		assert.NoError(t, err)

		second, err := Compose(sampleProject(), tasks, materials, costs, generatedAt)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("empty project renders placeholders without error", func(t *testing.T) {
		project := &model.Project{ID: "p2", Name: "Üres Projekt"}
		pdf, err := Compose(project, nil, nil, nil, generatedAt)

		assert.NoError(t, err)
		assert.True(t, len(pdf) > 0)
	})

	t.Run("unknown status does not break rendering", func(t *testing.T) {
		project := sampleProject()
		project.Status = "garancialis-javitas"
		pdf, err := Compose(project, nil, nil, nil, generatedAt)

		assert.NoError(t, err)
		assert.True(t, len(pdf) > 0)
	})
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Belvárosi Lakásfelújítás", "Belvárosi_Lakásfelújítás_adatlap.pdf"},
		{"Tető  javítás", "Tető_javítás_adatlap.pdf"},
		{"Egyszavas", "Egyszavas_adatlap.pdf"},
		{"Tab\tés sortörés\nnév", "Tab_és_sortörés_név_adatlap.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.name))
		})
	}
}
