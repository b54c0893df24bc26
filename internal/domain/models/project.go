// internal/domain/models/project.go
package models

// Project statuses, exactly the set the remote API accepts.
const (
	ProjectActive    = "ACTIVE"
	ProjectOnHold    = "ON_HOLD"
	ProjectCompleted = "COMPLETED"
)

// ProjectStatuses lists the valid project status values.
var ProjectStatuses = []string{ProjectActive, ProjectOnHold, ProjectCompleted}

// Project belongs to one organization. TaskCount, CompletedTasks, and
// CompletionRate are computed server-side; the client renders them verbatim
// and never recomputes them from a task list.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`

	Organization *Organization `json:"organization,omitempty"`

	TaskCount      int     `json:"taskCount"`
	CompletedTasks int     `json:"completedTasks"`
	CompletionRate float64 `json:"completionRate"`

	// Tasks is the nested task summary list, present on the singular query.
	Tasks []Task `json:"tasks,omitempty"`
}

// ProjectInput carries the fields of a create/update project mutation.
type ProjectInput struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Status         string `json:"status,omitempty"`
	DueDate        string `json:"dueDate,omitempty"`
	OrganizationID string `json:"organizationId,omitempty"`
}

// ProjectFilters narrows a project collection query. Zero values mean
// "no filter".
type ProjectFilters struct {
	Status string
	Search string
}

// ProjectStatistics is the organization-wide aggregate the dashboard shows.
// Entirely server-computed.
type ProjectStatistics struct {
	TotalProjects         int     `json:"totalProjects"`
	ActiveProjects        int     `json:"activeProjects"`
	CompletedProjects     int     `json:"completedProjects"`
	OnHoldProjects        int     `json:"onHoldProjects"`
	TotalTasks            int     `json:"totalTasks"`
	CompletedTasks        int     `json:"completedTasks"`
	OverallCompletionRate float64 `json:"overallCompletionRate"`
}
