// internal/app/api/graphql/queries.go
package graphql

import (
	"context"

	"github.com/markjessn/mini-pms/internal/domain/models"
)

// Singular queries return a nil entity (with nil error) when the server
// reports no match; screens turn that into a not-found view instead of
// dereferencing missing fields.

// Organizations lists all organization summaries.
func (c *Client) Organizations(ctx context.Context) ([]models.Organization, []string, error) {
	var out struct {
		Organizations []models.Organization `json:"organizations"`
	}
	errs, err := c.Do(ctx, "GetOrganizations", queryOrganizations, nil, &out)
	return out.Organizations, errs, err
}

// Organization fetches one organization by slug.
func (c *Client) Organization(ctx context.Context, slug string) (*models.Organization, []string, error) {
	var out struct {
		Organization *models.Organization `json:"organization"`
	}
	errs, err := c.Do(ctx, "GetOrganization", queryOrganization, map[string]any{"slug": slug}, &out)
	return out.Organization, errs, err
}

// Projects lists an organization's projects with optional status/search
// filters. Derived stats ride along from the server.
func (c *Client) Projects(ctx context.Context, orgSlug string, f models.ProjectFilters) ([]models.Project, []string, error) {
	vars := map[string]any{"organizationSlug": orgSlug}
	if f.Status != "" {
		vars["status"] = f.Status
	}
	if f.Search != "" {
		vars["search"] = f.Search
	}

	var out struct {
		Projects []models.Project `json:"projects"`
	}
	errs, err := c.Do(ctx, "GetProjects", queryProjects, vars, &out)
	return out.Projects, errs, err
}

// Project fetches one project by id, including its nested task summaries.
func (c *Client) Project(ctx context.Context, id string) (*models.Project, []string, error) {
	var out struct {
		Project *models.Project `json:"project"`
	}
	errs, err := c.Do(ctx, "GetProject", queryProject, map[string]any{"id": id}, &out)
	return out.Project, errs, err
}

// ProjectStatistics fetches the organization-wide aggregates.
func (c *Client) ProjectStatistics(ctx context.Context, orgSlug string) (*models.ProjectStatistics, []string, error) {
	var out struct {
		ProjectStatistics *models.ProjectStatistics `json:"projectStatistics"`
	}
	errs, err := c.Do(ctx, "GetProjectStatistics", queryProjectStatistics,
		map[string]any{"organizationSlug": orgSlug}, &out)
	return out.ProjectStatistics, errs, err
}

// Tasks lists a project's tasks with optional filters.
func (c *Client) Tasks(ctx context.Context, projectID string, f models.TaskFilters) ([]models.Task, []string, error) {
	vars := map[string]any{"projectId": projectID}
	if f.Status != "" {
		vars["status"] = f.Status
	}
	if f.Search != "" {
		vars["search"] = f.Search
	}
	if f.AssigneeEmail != "" {
		vars["assigneeEmail"] = f.AssigneeEmail
	}

	var out struct {
		Tasks []models.Task `json:"tasks"`
	}
	errs, err := c.Do(ctx, "GetTasks", queryTasks, vars, &out)
	return out.Tasks, errs, err
}

// Task fetches one task by id, including its comments in creation order.
func (c *Client) Task(ctx context.Context, id string) (*models.Task, []string, error) {
	var out struct {
		Task *models.Task `json:"task"`
	}
	errs, err := c.Do(ctx, "GetTask", queryTask, map[string]any{"id": id}, &out)
	return out.Task, errs, err
}

// OrgMembers lists the users of one organization.
func (c *Client) OrgMembers(ctx context.Context, organizationID string) ([]models.User, []string, error) {
	var out struct {
		OrgMembers []models.User `json:"orgMembers"`
	}
	errs, err := c.Do(ctx, "GetOrgMembers", queryOrgMembers,
		map[string]any{"organizationId": organizationID}, &out)
	return out.OrgMembers, errs, err
}

// Me resolves the current user by the persisted identity email. A nil user
// means the stored identity is stale and the session must fall back to
// anonymous.
func (c *Client) Me(ctx context.Context, email string) (*models.User, []string, error) {
	var out struct {
		Me *models.User `json:"me"`
	}
	errs, err := c.Do(ctx, "GetMe", queryMe, map[string]any{"email": email}, &out)
	return out.Me, errs, err
}
