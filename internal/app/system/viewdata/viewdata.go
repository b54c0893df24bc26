// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/markjessn/mini-pms/internal/app/system/session"
)

// SiteName is the product name shown in the chrome of every page.
const SiteName = "Mini PMS"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// User context (from session middleware)
	IsLoggedIn bool
	UserName   string
	UserEmail  string
	IsOrgAdmin bool
	OrgSlug    string
	OrgName    string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Errors holds page-level messages from failed API calls, rendered as a
	// banner above the content.
	Errors []string
}

// NewBaseVM creates a fully populated BaseVM for a page.
// This is the preferred way to create a BaseVM for embedding in view models.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    SiteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}

	if user := session.CurrentUser(r); user != nil {
		vm.IsLoggedIn = true
		vm.UserName = user.Name
		vm.UserEmail = user.Email
		vm.IsOrgAdmin = user.IsOrgAdmin
		vm.OrgSlug = user.OrgSlug
		vm.OrgName = user.OrgName
	}
	return vm
}
