// internal/app/features/projectdetail/types.go
package projectdetail

import (
	"html/template"

	"github.com/markjessn/mini-pms/internal/app/system/board"
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
)

// ugc sanitizes user-authored text (descriptions, comments) before it is
// rendered as HTML.
var ugc = bluemonday.UGCPolicy()

// taskCard is one card on the board.
type taskCard struct {
	models.Task
	DescriptionHTML template.HTML
}

// boardColumn is one rendered column with its cards.
type boardColumn struct {
	Status string
	Title  string
	Accent string
	Tasks  []taskCard
}

// boardView is everything the board fragment needs to render and to report
// drops back: org slug and project id anchor the endpoint URLs.
type boardView struct {
	OrgSlug   string
	ProjectID string
	Columns   []boardColumn
}

// boardRefresh is the fragment payload after a task mutation: the refreshed
// board plus the project's server-owned derived counts.
type boardRefresh struct {
	Project models.Project
	Board   boardView
	Errors  []string
}

// detailData is the view model for the full project page.
type detailData struct {
	viewdata.BaseVM

	Org     models.Organization
	Project models.Project
	Board   boardView

	FilterStatus string
	Search       string
	Assignee     string
	TaskStatuses []string
}

// modalData is the view model for the task modal fragment.
type modalData struct {
	OrgSlug      string
	ProjectID    string
	Task         models.Task
	Comments     []commentView
	TaskStatuses []string
	FieldErrors  map[string]string
	Errors       []string
}

// commentView pairs a comment with its sanitized content.
type commentView struct {
	models.TaskComment
	ContentHTML template.HTML
}

// buildBoard groups tasks into the fixed columns and sanitizes the
// user-authored description of each card.
func buildBoard(orgSlug, projectID string, tasks []models.Task) boardView {
	groups := board.TasksByStatus(tasks)

	view := boardView{OrgSlug: orgSlug, ProjectID: projectID}
	for _, def := range board.Columns() {
		col := boardColumn{Status: def.Status, Title: def.Title, Accent: def.Accent}
		for _, t := range groups[def.Status] {
			col.Tasks = append(col.Tasks, taskCard{
				Task:            t,
				DescriptionHTML: template.HTML(ugc.Sanitize(t.Description)),
			})
		}
		view.Columns = append(view.Columns, col)
	}
	return view
}

// buildModal assembles the task modal payload with sanitized comments.
func buildModal(orgSlug, projectID string, task models.Task) modalData {
	data := modalData{
		OrgSlug:      orgSlug,
		ProjectID:    projectID,
		Task:         task,
		TaskStatuses: models.TaskStatuses,
	}
	for _, c := range task.Comments {
		data.Comments = append(data.Comments, commentView{
			TaskComment: c,
			ContentHTML: template.HTML(ugc.Sanitize(c.Content)),
		})
	}
	return data
}
