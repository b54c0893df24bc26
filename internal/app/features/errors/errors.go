// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// It just renders templates; no API calls.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the catch-all "page not found" view.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "page", "/")
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Access denied", "/"),
		Message: "You don't have permission to view this page.",
	}
	templates.Render(w, r, "error_page", data)
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Sign in required", "/login"),
		Message: "You need to sign in to view this page.",
	}
	w.WriteHeader(http.StatusUnauthorized)
	templates.Render(w, r, "error_page", data)
}

// RenderNotFound shows the shared not-found view for a missing entity.
// what names the thing that was missing ("project", "task", "organization").
func RenderNotFound(w http.ResponseWriter, r *http.Request, what, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Not found", backURL),
		Message: "That " + what + " could not be found. It may have been deleted.",
	}
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_notfound", data)
}
