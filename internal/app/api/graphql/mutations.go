// internal/app/api/graphql/mutations.go
package graphql

import (
	"context"

	"github.com/markjessn/mini-pms/internal/domain/models"
)

// Status is the common mutation outcome: Success mirrors the server flag and
// Errors carries one message per violated rule. Screens join Errors for
// display and leave the user's form values untouched when Success is false.
type Status struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// Failed reports whether the mutation did not take effect, folding transport
// failure into the same renderable shape.
func (s Status) Failed(err error) bool {
	return err != nil || !s.Success
}

// Display returns the messages a failed mutation should show.
func (s Status) Display(err error) []string {
	return Messages(s.Errors, err)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Organizations                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type organizationPayload struct {
	Organization *models.Organization `json:"organization"`
	Status
}

func (c *Client) CreateOrganization(ctx context.Context, name, slug, contactEmail string) (*models.Organization, Status, error) {
	var out struct {
		CreateOrganization organizationPayload `json:"createOrganization"`
	}
	_, err := c.Do(ctx, "CreateOrganization", mutationCreateOrganization, map[string]any{
		"input": map[string]any{"name": name, "slug": slug, "contactEmail": contactEmail},
	}, &out)
	return out.CreateOrganization.Organization, out.CreateOrganization.Status, err
}

func (c *Client) UpdateOrganization(ctx context.Context, id, name, slug, contactEmail string) (*models.Organization, Status, error) {
	var out struct {
		UpdateOrganization organizationPayload `json:"updateOrganization"`
	}
	_, err := c.Do(ctx, "UpdateOrganization", mutationUpdateOrganization, map[string]any{
		"id":    id,
		"input": map[string]any{"name": name, "slug": slug, "contactEmail": contactEmail},
	}, &out)
	return out.UpdateOrganization.Organization, out.UpdateOrganization.Status, err
}

/*─────────────────────────────────────────────────────────────────────────────*
| Projects                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

type projectPayload struct {
	Project *models.Project `json:"project"`
	Status
}

func (c *Client) CreateProject(ctx context.Context, input models.ProjectInput) (*models.Project, Status, error) {
	var out struct {
		CreateProject projectPayload `json:"createProject"`
	}
	_, err := c.Do(ctx, "CreateProject", mutationCreateProject,
		map[string]any{"input": input}, &out)
	return out.CreateProject.Project, out.CreateProject.Status, err
}

func (c *Client) UpdateProject(ctx context.Context, id string, input models.ProjectInput) (*models.Project, Status, error) {
	var out struct {
		UpdateProject projectPayload `json:"updateProject"`
	}
	_, err := c.Do(ctx, "UpdateProject", mutationUpdateProject,
		map[string]any{"id": id, "input": input}, &out)
	return out.UpdateProject.Project, out.UpdateProject.Status, err
}

// DeleteProject cascades server-side: the project's tasks and their comments
// are gone with it. The client never renders leftovers.
func (c *Client) DeleteProject(ctx context.Context, id string) (Status, error) {
	var out struct {
		DeleteProject Status `json:"deleteProject"`
	}
	_, err := c.Do(ctx, "DeleteProject", mutationDeleteProject, map[string]any{"id": id}, &out)
	return out.DeleteProject, err
}

/*─────────────────────────────────────────────────────────────────────────────*
| Tasks                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

type taskPayload struct {
	Task *models.Task `json:"task"`
	Status
}

func (c *Client) CreateTask(ctx context.Context, input models.TaskInput) (*models.Task, Status, error) {
	var out struct {
		CreateTask taskPayload `json:"createTask"`
	}
	_, err := c.Do(ctx, "CreateTask", mutationCreateTask, map[string]any{"input": input}, &out)
	return out.CreateTask.Task, out.CreateTask.Status, err
}

// UpdateTask carries the complete task field set; the remote contract is a
// full replace, not a partial patch.
func (c *Client) UpdateTask(ctx context.Context, id string, input models.TaskInput) (*models.Task, Status, error) {
	var out struct {
		UpdateTask taskPayload `json:"updateTask"`
	}
	_, err := c.Do(ctx, "UpdateTask", mutationUpdateTask,
		map[string]any{"id": id, "input": input}, &out)
	return out.UpdateTask.Task, out.UpdateTask.Status, err
}

func (c *Client) DeleteTask(ctx context.Context, id string) (Status, error) {
	var out struct {
		DeleteTask Status `json:"deleteTask"`
	}
	_, err := c.Do(ctx, "DeleteTask", mutationDeleteTask, map[string]any{"id": id}, &out)
	return out.DeleteTask, err
}

/*─────────────────────────────────────────────────────────────────────────────*
| Comments                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

type commentPayload struct {
	Comment *models.TaskComment `json:"comment"`
	Status
}

func (c *Client) AddTaskComment(ctx context.Context, input models.TaskCommentInput) (*models.TaskComment, Status, error) {
	var out struct {
		AddTaskComment commentPayload `json:"addTaskComment"`
	}
	_, err := c.Do(ctx, "AddTaskComment", mutationAddTaskComment,
		map[string]any{"input": input}, &out)
	return out.AddTaskComment.Comment, out.AddTaskComment.Status, err
}

func (c *Client) DeleteTaskComment(ctx context.Context, id string) (Status, error) {
	var out struct {
		DeleteTaskComment Status `json:"deleteTaskComment"`
	}
	_, err := c.Do(ctx, "DeleteTaskComment", mutationDeleteTaskComment, map[string]any{"id": id}, &out)
	return out.DeleteTaskComment, err
}

/*─────────────────────────────────────────────────────────────────────────────*
| Members & auth                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

type memberPayload struct {
	User *models.User `json:"user"`
	Status
}

func (c *Client) CreateOrgMember(ctx context.Context, organizationID, name, email, password string) (*models.User, Status, error) {
	var out struct {
		CreateOrgMember memberPayload `json:"createOrgMember"`
	}
	_, err := c.Do(ctx, "CreateOrgMember", mutationCreateOrgMember, map[string]any{
		"organizationId": organizationID,
		"input":          map[string]any{"name": name, "email": email, "password": password},
	}, &out)
	return out.CreateOrgMember.User, out.CreateOrgMember.Status, err
}

func (c *Client) DeleteOrgMember(ctx context.Context, id string) (Status, error) {
	var out struct {
		DeleteOrgMember Status `json:"deleteOrgMember"`
	}
	_, err := c.Do(ctx, "DeleteOrgMember", mutationDeleteOrgMember, map[string]any{"id": id}, &out)
	return out.DeleteOrgMember, err
}

// AuthResult is the outcome of login and register: the authenticated user
// and, for register, the freshly created organization.
type AuthResult struct {
	User         *models.User         `json:"user"`
	Organization *models.Organization `json:"organization"`
	Status
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var out struct {
		Login AuthResult `json:"login"`
	}
	_, err := c.Do(ctx, "Login", mutationLogin,
		map[string]any{"email": email, "password": password}, &out)
	return out.Login, err
}

// RegisterInput carries the combined new-organization + admin-user fields.
type RegisterInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	OrganizationName string `json:"organizationName"`
	OrganizationSlug string `json:"organizationSlug"`
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	var out struct {
		Register AuthResult `json:"register"`
	}
	_, err := c.Do(ctx, "Register", mutationRegister, map[string]any{"input": input}, &out)
	return out.Register, err
}
