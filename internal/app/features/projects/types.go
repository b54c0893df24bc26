// internal/app/features/projects/types.go
package projects

import (
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"github.com/markjessn/mini-pms/internal/domain/models"
)

// listData is the view model for the projects list page.
type listData struct {
	viewdata.BaseVM

	Org      models.Organization
	Projects []models.Project

	// Active filters, echoed back into the filter form.
	FilterStatus string
	Search       string

	Statuses []string
}

// formData is the view model for the new/edit project form.
type formData struct {
	viewdata.BaseVM

	// ProjectID is empty on the new form.
	ProjectID   string
	Name        string
	Description string
	Status      string
	DueDate     string

	Statuses    []string
	FieldErrors map[string]string
}
