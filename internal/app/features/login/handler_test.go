package login_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/features/login"
	"github.com/markjessn/mini-pms/internal/app/system/session"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/markjessn/mini-pms/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, api *testutil.FakeAPI) *login.Handler {
	t.Helper()
	logger := zap.NewNop()
	client := api.Client()
	sm, err := session.NewManager(strings.Repeat("k", 32), "test-session", "", false, client, logger)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return login.NewHandler(client, sm, uierrors.NewErrorLogger(logger), logger)
}

func authStub(user models.User, org models.Organization) map[string]any {
	user.Organization = &org
	payload := map[string]any{"user": user, "organization": org}
	for k, v := range testutil.OKStatus() {
		payload[k] = v
	}
	return map[string]any{"login": payload}
}

func TestHandleLoginPost_Success(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	org := testutil.SampleOrganization()
	api.Stub("Login", authStub(models.User{
		ID:    "u1",
		Name:  "Ada Lovelace",
		Email: "ada@acme.test",
	}, org))
	handler := newTestHandler(t, api)

	form := url.Values{
		"email":    {"ada@acme.test"},
		"password": {"secret1"},
	}
	req := testutil.NewFormRequest("/login", form)
	rec := testutil.NewRecorder()
	handler.HandleLoginPost(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/acme")

	// Should have set a session cookie
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			found = true
		}
	}
	if !found {
		t.Error("expected session cookie to be set")
	}
}

func TestHandleLoginPost_WithReturnURL(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Stub("Login", authStub(models.User{
		ID:    "u1",
		Name:  "Ada Lovelace",
		Email: "ada@acme.test",
	}, testutil.SampleOrganization()))
	handler := newTestHandler(t, api)

	form := url.Values{
		"email":    {"ada@acme.test"},
		"password": {"secret1"},
		"return":   {"/acme/projects"},
	}
	rec := testutil.NewRecorder()
	handler.HandleLoginPost(rec.ResponseRecorder, testutil.NewFormRequest("/login", form))

	rec.AssertRedirect(t, "/acme/projects")
}

func TestHandleLoginPost_RejectedCredentials(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Stub("Login", map[string]any{"login": testutil.FailStatus("Invalid email or password.")})
	handler := newTestHandler(t, api)

	form := url.Values{
		"email":    {"ada@acme.test"},
		"password": {"wrong"},
	}
	rec := testutil.NewRecorder()

	// Handler renders the form, which panics without a booted template engine.
	func() {
		defer func() { recover() }()
		handler.HandleLoginPost(rec.ResponseRecorder, testutil.NewFormRequest("/login", form))
	}()

	// No session cookie on rejection.
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			t.Error("session cookie set on rejected login")
		}
	}
}

func TestHandleLoginPost_LocalValidationSkipsAPI(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	handler := newTestHandler(t, api)

	form := url.Values{
		"email":    {"not-an-email"},
		"password": {"secret1"},
	}
	rec := testutil.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleLoginPost(rec.ResponseRecorder, testutil.NewFormRequest("/login", form))
	}()

	if n := api.CallCount("Login"); n != 0 {
		t.Errorf("Login called %d times for locally invalid form, want 0", n)
	}
}

func TestServeLoginPage_SignedInRedirects(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	handler := newTestHandler(t, api)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/login", testutil.MemberUser())
	rec := testutil.NewRecorder()
	handler.ServeLoginPage(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/acme")
}
