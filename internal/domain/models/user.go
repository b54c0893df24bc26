// internal/domain/models/user.go
package models

// User is an authenticated member of exactly one organization. There is no
// cross-organization membership in this model.
type User struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	IsOrgAdmin   bool          `json:"isOrgAdmin"`
	Organization *Organization `json:"organization,omitempty"`
}

// OrgSlug returns the slug of the user's organization, or "" when the
// organization was not selected by the query that produced this user.
func (u User) OrgSlug() string {
	if u.Organization == nil {
		return ""
	}
	return u.Organization.Slug
}
