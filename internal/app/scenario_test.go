// End-to-end flow against the scripted fake API: register a new
// organization, create a project, add a task, drag it to Done, and watch the
// server-computed completion stats come back through the refetch.
package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/features/projectdetail"
	"github.com/markjessn/mini-pms/internal/app/features/projects"
	"github.com/markjessn/mini-pms/internal/app/features/register"
	"github.com/markjessn/mini-pms/internal/app/system/session"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/markjessn/mini-pms/internal/testutil"
	"go.uber.org/zap"
)

const boardLayout = `[
	{"status":"TODO","rect":{"left":0,"top":0,"width":200,"height":600}},
	{"status":"IN_PROGRESS","rect":{"left":200,"top":0,"width":200,"height":600}},
	{"status":"DONE","rect":{"left":400,"top":0,"width":200,"height":600}}
]`

// post runs a form post through the session middleware, so the handler sees
// the user the same way it would in production: resolved from the cookie.
func post(t *testing.T, sm *session.Manager, handler http.HandlerFunc, target string, form url.Values, cookies []*http.Cookie, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	for k, v := range params {
		req = testutil.WithChiURLParam(req, k, v)
	}

	rec := httptest.NewRecorder()
	sm.LoadSessionUser(handler).ServeHTTP(rec, req)
	return rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d (body: %.200s)", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != want {
		t.Fatalf("redirect = %q, want %q", got, want)
	}
}

func TestRegisterToDoneBoardFlow(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)

	sm, err := session.NewManager("0123456789abcdef0123456789abcdef", "e2e-session", "", false, api.Client(), logger)
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}

	org := models.Organization{ID: "org-acme", Name: "Acme", Slug: "acme"}
	admin := models.User{ID: "u1", Name: "Ada", Email: "ada@acme.test", IsOrgAdmin: true, Organization: &org}

	// Step 1: register. The new admin is signed in and lands on the
	// organization dashboard.
	api.Stub("Register", map[string]any{"register": map[string]any{
		"user": admin, "organization": org, "success": true, "errors": []string{},
	}})

	regHandler := register.NewHandler(api.Client(), sm, errLog, logger)
	regForm := url.Values{
		"name":             {"Ada"},
		"email":            {"ada@acme.test"},
		"password":         {"secret1"},
		"confirmPassword":  {"secret1"},
		"organizationName": {"Acme"},
		"organizationSlug": {"acme"},
	}
	rec := post(t, sm, regHandler.HandleRegisterPost, "/register", regForm, nil, nil)
	assertRedirect(t, rec, "/acme")

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("registration did not set a session cookie")
	}

	// Every later request resolves the cookie identity against the API.
	api.Stub("GetMe", map[string]any{"me": admin})

	// Step 2: create a project.
	project := models.Project{ID: "p1", Name: "Launch", Status: models.ProjectActive, Organization: &org}
	api.Stub("GetOrganization", map[string]any{"organization": org})
	api.Stub("CreateProject", map[string]any{"createProject": map[string]any{
		"project": project, "success": true, "errors": []string{},
	}})
	api.Stub("GetProjects", map[string]any{"projects": []models.Project{project}})

	projHandler := projects.NewHandler(api.Client(), errLog, logger)
	rec = post(t, sm, projHandler.HandleCreate, "/acme/projects",
		url.Values{"name": {"Launch"}, "status": {models.ProjectActive}},
		cookies, map[string]string{"orgSlug": "acme"})
	assertRedirect(t, rec, "/acme/projects")

	// Step 3: add a task. The post-create refetch sees one open task.
	task := models.Task{ID: "t1", Title: "Ship it", Status: models.TaskTodo}
	project.TaskCount, project.CompletedTasks, project.CompletionRate = 1, 0, 0

	api.Stub("CreateTask", map[string]any{"createTask": map[string]any{
		"task": task, "success": true, "errors": []string{},
	}})
	api.Stub("GetProject", map[string]any{"project": project})
	api.Stub("GetTasks", map[string]any{"tasks": []models.Task{task}})

	detailHandler := projectdetail.NewHandler(api.Client(), errLog, logger)
	detailParams := map[string]string{"orgSlug": "acme", "projectID": "p1"}
	rec = post(t, sm, detailHandler.HandleTaskCreate, "/acme/projects/p1/tasks",
		url.Values{"title": {"Ship it"}}, cookies, detailParams)
	assertRedirect(t, rec, "/acme/projects/p1")

	// Step 4: drag the card into Done. The server recomputes the stats and
	// the post-move refetch brings them back.
	done := task
	done.Status = models.TaskDone
	project.CompletedTasks, project.CompletionRate = 1, 100

	api.Stub("GetTask", map[string]any{"task": task})
	api.Stub("UpdateTask", map[string]any{"updateTask": map[string]any{
		"task": done, "success": true, "errors": []string{},
	}})
	api.Stub("GetProject", map[string]any{"project": project})
	api.Stub("GetTasks", map[string]any{"tasks": []models.Task{done}})

	moveParams := map[string]string{"orgSlug": "acme", "projectID": "p1", "taskID": "t1"}
	rec = post(t, sm, detailHandler.HandleTaskMove, "/acme/projects/p1/tasks/t1/move",
		url.Values{"x": {"450"}, "y": {"100"}, "layout": {boardLayout}},
		cookies, moveParams)
	assertRedirect(t, rec, "/acme/projects/p1")

	// The move sent the complete field set with the new status.
	var updateInput map[string]any
	for _, c := range api.Calls() {
		if c.Operation == "UpdateTask" {
			updateInput, _ = c.Variables["input"].(map[string]any)
		}
	}
	if updateInput == nil {
		t.Fatal("UpdateTask was not called")
	}
	if updateInput["status"] != models.TaskDone || updateInput["title"] != "Ship it" {
		t.Errorf("update input = %+v", updateInput)
	}

	// What the next screen load would show: 1/1 done, 100%.
	got, _, err := api.Client().Project(context.Background(), "p1")
	if err != nil {
		t.Fatalf("final project fetch: %v", err)
	}
	if got.TaskCount != 1 || got.CompletedTasks != 1 || got.CompletionRate != 100 {
		t.Errorf("final stats = %d/%d (%.0f%%), want 1/1 (100%%)",
			got.CompletedTasks, got.TaskCount, got.CompletionRate)
	}
}
