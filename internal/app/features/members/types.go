// internal/app/features/members/types.go
package members

import (
	"github.com/markjessn/mini-pms/internal/app/system/viewdata"
	"github.com/markjessn/mini-pms/internal/domain/models"
)

// listData is the view model for the roster page. The invite form renders on
// the same page, so its echoed values and errors live here too.
type listData struct {
	viewdata.BaseVM

	Org     models.Organization
	Members []models.User

	// Invite form echo.
	InviteName  string
	InviteEmail string
	FieldErrors map[string]string
}
