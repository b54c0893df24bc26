package members_test

import (
	"net/http"
	"net/url"
	"testing"

	uierrors "github.com/markjessn/mini-pms/internal/app/features/errors"
	"github.com/markjessn/mini-pms/internal/app/features/members"
	"github.com/markjessn/mini-pms/internal/domain/models"
	"github.com/markjessn/mini-pms/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, api *testutil.FakeAPI) *members.Handler {
	t.Helper()
	logger := zap.NewNop()
	return members.NewHandler(api.Client(), uierrors.NewErrorLogger(logger), logger)
}

func stubRoster(api *testutil.FakeAPI) {
	api.Stub("GetOrganization", map[string]any{"organization": testutil.SampleOrganization()})
	api.Stub("GetOrgMembers", map[string]any{"orgMembers": []models.User{
		{ID: "user-admin", Name: "Test Admin", Email: "admin@acme.test", IsOrgAdmin: true},
		{ID: "user-member", Name: "Test Member", Email: "member@acme.test"},
	}})
}

func rosterRequest(method, target string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = testutil.NewFormRequest(target, form)
	} else {
		req = testutil.NewRequest(method, target)
	}
	req = testutil.WithUser(req, testutil.AdminUser())
	return testutil.WithChiURLParam(req, "orgSlug", "acme")
}

func TestServeList_FetchesRosterByOrgID(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	stubRoster(api)
	handler := newTestHandler(t, api)

	req := rosterRequest(http.MethodGet, "/acme/members", nil)

	rec := testutil.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.ServeList(rec.ResponseRecorder, req)
	}()

	var memberCall *testutil.Call
	for _, c := range api.Calls() {
		if c.Operation == "GetOrgMembers" {
			cc := c
			memberCall = &cc
		}
	}
	if memberCall == nil {
		t.Fatal("GetOrgMembers was not called")
	}
	if memberCall.Variables["organizationId"] != "org-acme" {
		t.Errorf("organizationId = %v, want org-acme", memberCall.Variables["organizationId"])
	}
}

func TestHandleInvite_RedirectsToRoster(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	stubRoster(api)

	payload := map[string]any{"user": models.User{ID: "user-new", Name: "New Hire", Email: "new@acme.test"}}
	for k, v := range testutil.OKStatus() {
		payload[k] = v
	}
	api.Stub("CreateOrgMember", map[string]any{"createOrgMember": payload})
	handler := newTestHandler(t, api)

	form := url.Values{
		"name":     {"New Hire"},
		"email":    {"new@acme.test"},
		"password": {"secret1"},
	}
	req := rosterRequest(http.MethodPost, "/acme/members", form)

	rec := testutil.NewRecorder()
	handler.HandleInvite(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/acme/members")

	// The redirect's GET renders the fresh roster; the POST itself does not
	// query it.
	if n := api.CallCount("CreateOrgMember"); n != 1 {
		t.Errorf("CreateOrgMember called %d times, want 1", n)
	}
	if n := api.CallCount("GetOrgMembers"); n != 0 {
		t.Errorf("GetOrgMembers called %d times during invite, want 0", n)
	}
}

func TestHandleInvite_InvalidFormSkipsMutation(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	stubRoster(api)
	handler := newTestHandler(t, api)

	// Password below the minimum length.
	form := url.Values{
		"name":     {"New Hire"},
		"email":    {"new@acme.test"},
		"password": {"short"},
	}
	req := rosterRequest(http.MethodPost, "/acme/members", form)

	rec := testutil.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleInvite(rec.ResponseRecorder, req)
	}()

	if n := api.CallCount("CreateOrgMember"); n != 0 {
		t.Errorf("CreateOrgMember called %d times for an invalid form, want 0", n)
	}
}

func TestHandleInvite_ServerRejectionRendersErrors(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	stubRoster(api)
	api.Stub("CreateOrgMember", map[string]any{"createOrgMember": testutil.FailStatus("Email already in use")})
	handler := newTestHandler(t, api)

	form := url.Values{
		"name":     {"New Hire"},
		"email":    {"taken@acme.test"},
		"password": {"secret1"},
	}
	req := rosterRequest(http.MethodPost, "/acme/members", form)

	rec := testutil.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleInvite(rec.ResponseRecorder, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Error("rejected invite redirected")
	}
}

func TestHandleDelete_RedirectsToRoster(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Stub("DeleteOrgMember", map[string]any{"deleteOrgMember": testutil.OKStatus()})
	handler := newTestHandler(t, api)

	req := rosterRequest(http.MethodPost, "/acme/members/user-member/delete", url.Values{})
	req = testutil.WithChiURLParam(req, "memberID", "user-member")

	rec := testutil.NewRecorder()
	handler.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/acme/members")

	var delCall *testutil.Call
	for _, c := range api.Calls() {
		if c.Operation == "DeleteOrgMember" {
			cc := c
			delCall = &cc
		}
	}
	if delCall == nil {
		t.Fatal("DeleteOrgMember was not called")
	}
	if delCall.Variables["id"] != "user-member" {
		t.Errorf("deleted id = %v", delCall.Variables["id"])
	}
	if n := api.CallCount("GetOrgMembers"); n != 0 {
		t.Errorf("GetOrgMembers called %d times during delete, want 0", n)
	}
}

func TestHandleDelete_SelfRemovalIsRefused(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	handler := newTestHandler(t, api)

	req := rosterRequest(http.MethodPost, "/acme/members/user-admin/delete", url.Values{})
	req = testutil.WithChiURLParam(req, "memberID", "user-admin")

	rec := testutil.NewRecorder()
	handler.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/acme/members")
	if n := len(api.Calls()); n != 0 {
		t.Errorf("API received %d calls for a self-removal attempt, want 0", n)
	}
}
