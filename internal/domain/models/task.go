// internal/domain/models/task.go
package models

// Task statuses. A task is always in exactly one of these; there are no
// intermediate states.
const (
	TaskTodo       = "TODO"
	TaskInProgress = "IN_PROGRESS"
	TaskDone       = "DONE"
)

// TaskStatuses lists the valid task status values in board-column order.
var TaskStatuses = []string{TaskTodo, TaskInProgress, TaskDone}

// Task belongs to one project. AssigneeEmail is free text and is not checked
// against organization membership.
type Task struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	AssigneeEmail string `json:"assigneeEmail,omitempty"`
	DueDate       string `json:"dueDate,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`

	Project *Project `json:"project,omitempty"`

	// Comments ordered by creation, present on the singular query.
	Comments []TaskComment `json:"comments,omitempty"`
}

// Input returns the full mutation payload for this task. The update contract
// requires the complete field set, not a partial patch, so status changes are
// expressed as "everything as-is plus the new status".
func (t Task) Input(projectID string) TaskInput {
	return TaskInput{
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		AssigneeEmail: t.AssigneeEmail,
		DueDate:       t.DueDate,
		ProjectID:     projectID,
	}
}

// TaskInput carries the fields of a create/update task mutation.
type TaskInput struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status,omitempty"`
	AssigneeEmail string `json:"assigneeEmail,omitempty"`
	DueDate       string `json:"dueDate,omitempty"`
	ProjectID     string `json:"projectId,omitempty"`
}

// TaskFilters narrows a task collection query. Zero values mean "no filter".
type TaskFilters struct {
	Status        string
	Search        string
	AssigneeEmail string
}
