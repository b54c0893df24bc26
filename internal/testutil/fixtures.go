package testutil

import (
	"fmt"

	"github.com/markjessn/mini-pms/internal/domain/models"
)

// SampleOrganization returns a ready-made organization for stubbing.
func SampleOrganization() models.Organization {
	return models.Organization{
		ID:           "org-acme",
		Name:         "Acme",
		Slug:         "acme",
		ContactEmail: "hello@acme.test",
		CreatedAt:    "2026-01-10T09:00:00Z",
		ProjectCount: 2,
	}
}

// SampleProject returns a project in the sample organization.
func SampleProject(id string) models.Project {
	org := SampleOrganization()
	return models.Project{
		ID:             id,
		Name:           "Website Redesign",
		Description:    "Refresh the marketing site",
		Status:         models.ProjectActive,
		DueDate:        "2026-06-30",
		CreatedAt:      "2026-02-01T12:00:00Z",
		Organization:   &org,
		TaskCount:      3,
		CompletedTasks: 1,
		CompletionRate: 33.3,
	}
}

// SampleTask returns a task with the given status.
func SampleTask(id, status string) models.Task {
	return models.Task{
		ID:            id,
		Title:         fmt.Sprintf("Task %s", id),
		Description:   "Do the thing",
		Status:        status,
		AssigneeEmail: "member@acme.test",
		CreatedAt:     "2026-02-02T08:30:00Z",
	}
}

// SampleComment returns a task comment.
func SampleComment(id string) models.TaskComment {
	return models.TaskComment{
		ID:          id,
		Content:     "Looks good to me",
		AuthorEmail: "admin@acme.test",
		CreatedAt:   "2026-02-03T10:15:00Z",
	}
}

// OKStatus is the success half of a mutation payload, for composing stubs.
func OKStatus() map[string]any {
	return map[string]any{"success": true, "errors": []string{}}
}

// FailStatus is a failed mutation payload with the given messages.
func FailStatus(messages ...string) map[string]any {
	return map[string]any{"success": false, "errors": messages}
}
