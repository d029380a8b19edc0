package report

import "renomester/internal/model"

// Display labels for the seeded project statuses. The status set is open:
// anything not listed here renders verbatim, never as an error.
var statusLabels = map[string]string{
	"felmeres":    "Felmérés",
	"arajanlat":   "Árajánlat",
	"kivitelezes": "Kivitelezés",
	"kesz":        "Kész",
}

var taskStatusLabels = map[string]string{
	model.TaskStatusOpen:       "Nyitott",
	model.TaskStatusInProgress: "Folyamatban",
	model.TaskStatusDone:       "Kész",
}

var costTypeLabels = map[string]string{
	model.CostTypeMaterial: "Anyag",
	model.CostTypeLabor:    "Munkadíj",
	model.CostTypeOther:    "Egyéb",
}

// StatusLabel resolves a project status to its human label, falling back to
// the raw string.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// TaskStatusLabel resolves a task status to its human label.
func TaskStatusLabel(status string) string {
	if label, ok := taskStatusLabels[status]; ok {
		return label
	}
	return status
}

// CostTypeLabel resolves a cost type to its human label.
func CostTypeLabel(costType string) string {
	if label, ok := costTypeLabels[costType]; ok {
		return label
	}
	return costType
}
