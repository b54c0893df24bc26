// internal/domain/models/comment.go
package models

// TaskComment is an immutable note on a task: members add and delete
// comments, never edit them.
type TaskComment struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	AuthorEmail string `json:"authorEmail"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// TaskCommentInput carries the fields of an addTaskComment mutation.
type TaskCommentInput struct {
	Content     string `json:"content"`
	AuthorEmail string `json:"authorEmail"`
	TaskID      string `json:"taskId"`
}
