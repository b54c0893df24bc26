// internal/domain/models/organization.go
package models

// Organization is the tenant boundary. The slug is URL-safe, unique, and
// immutable once created; it is the routing key for every nested screen.
//
// All entities in this package are transient copies of what the remote API
// returns. Timestamps stay ISO-8601 strings because the client only ever
// displays them; it never does time arithmetic.
type Organization struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ContactEmail string `json:"contactEmail"`
	CreatedAt    string `json:"createdAt"`

	// ProjectCount is derived server-side and only present on list queries.
	ProjectCount int `json:"projectCount"`
}
