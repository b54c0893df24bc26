package logout_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/markjessn/mini-pms/internal/app/features/logout"
	"github.com/markjessn/mini-pms/internal/app/system/session"
	"github.com/markjessn/mini-pms/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *logout.Handler {
	t.Helper()
	logger := zap.NewNop()
	api := testutil.NewFakeAPI(t)
	sm, err := session.NewManager(strings.Repeat("k", 32), "test-session", "", false, api.Client(), logger)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return logout.NewHandler(sm, logger)
}

func TestServeLogout_ClearsCookieAndRedirects(t *testing.T) {
	handler := newTestHandler(t)

	rec := testutil.NewRecorder()
	handler.ServeLogout(rec.ResponseRecorder, testutil.NewRequest(http.MethodPost, "/logout"))

	rec.AssertRedirect(t, "/")

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected deletion cookie before redirect")
	}
}

func TestServeLogout_HTMXGetsClientRedirect(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.NewRequest(http.MethodPost, "/logout")
	req.Header.Set("HX-Request", "true")
	rec := testutil.NewRecorder()
	handler.ServeLogout(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	if rec.Header().Get("HX-Redirect") != "/" {
		t.Errorf("HX-Redirect = %q, want /", rec.Header().Get("HX-Redirect"))
	}
}
