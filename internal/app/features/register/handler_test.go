package register_test

import (
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/features/register"
	"github.com/markjessn/mini-pms/internal/app/system/session"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/markjessn/mini-pms/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, api *testutil.FakeAPI) *register.Handler {
	t.Helper()
	logger := zap.NewNop()
	client := api.Client()
	sm, err := session.NewManager(strings.Repeat("k", 32), "test-session", "", false, client, logger)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return register.NewHandler(client, sm, uierrors.NewErrorLogger(logger), logger)
}

func validForm() url.Values {
	return url.Values{
		"name":             {"Ada Lovelace"},
		"email":            {"a@acme.com"},
		"password":         {"secret1"},
		"confirmPassword":  {"secret1"},
		"organizationName": {"Acme"},
		"organizationSlug": {"acme"},
	}
}

func TestHandleRegisterPost_Success(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	org := models.Organization{ID: "org1", Name: "Acme", Slug: "acme"}
	payload := map[string]any{
		"user":         models.User{ID: "u1", Name: "Ada Lovelace", Email: "a@acme.com", IsOrgAdmin: true},
		"organization": org,
	}
	for k, v := range testutil.OKStatus() {
		payload[k] = v
	}
	api.Stub("Register", map[string]any{"register": payload})
	handler := newTestHandler(t, api)

	rec := testutil.NewRecorder()
	handler.HandleRegisterPost(rec.ResponseRecorder, testutil.NewFormRequest("/register", validForm()))

	rec.AssertRedirect(t, "/acme")

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			found = true
		}
	}
	if !found {
		t.Error("expected session cookie after registration")
	}
}

func TestHandleRegisterPost_SlugTaken(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Stub("Register", map[string]any{"register": testutil.FailStatus("Slug is already taken")})
	handler := newTestHandler(t, api)

	rec := testutil.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleRegisterPost(rec.ResponseRecorder, testutil.NewFormRequest("/register", validForm()))
	}()

	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			t.Error("session cookie set on failed registration")
		}
	}
}

func TestHandleRegisterPost_InvalidFormSkipsAPI(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	handler := newTestHandler(t, api)

	form := validForm()
	form.Set("organizationSlug", "My Company") // not a slug
	form.Set("confirmPassword", "different")

	rec := testutil.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleRegisterPost(rec.ResponseRecorder, testutil.NewFormRequest("/register", form))
	}()

	if n := api.CallCount("Register"); n != 0 {
		t.Errorf("Register called %d times for invalid form, want 0", n)
	}
}
