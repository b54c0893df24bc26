// Package inputval holds the client-side field validation rules.
//
// Everything here is pure: a validator takes a raw string value (and a field
// label for the message) and returns a human-readable message, or "" when the
// value passes. Composite form validators collect per-field messages into a
// Result. Validation runs before any mutation is submitted; the remote API
// re-validates server-side and its errors are surfaced separately.
package inputval

import (
	"fmt"
	"regexp"
	"strings"
)

// Field length bounds, matching what the remote API enforces.
const (
	NameMinLen  = 2
	NameMaxLen  = 100
	TitleMaxLen = 200

	PasswordMinLen = 6
)

var (
	// emailRe requires something before the @, a dot in the domain part, and
	// no whitespace anywhere. Deliberately a shape check, not RFC 5322.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// slugRe admits lowercase alphanumeric runs joined by single hyphens.
	// Edge hyphens and doubled hyphens are both rejected.
	slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Required rejects nil-ish values: empty or whitespace-only strings.
func Required(value, label string) string {
	if strings.TrimSpace(value) == "" {
		return label + " is required."
	}
	return ""
}

// MinLength compares the trimmed length against an inclusive lower bound.
// Empty values pass; pair with Required when the field is mandatory.
func MinLength(value string, min int, label string) string {
	if value != "" && len(strings.TrimSpace(value)) < min {
		return fmt.Sprintf("%s must be at least %d characters.", label, min)
	}
	return ""
}

// MaxLength compares length against an inclusive upper bound.
func MaxLength(value string, max int, label string) string {
	if value != "" && len(value) > max {
		return fmt.Sprintf("%s must be no more than %d characters.", label, max)
	}
	return ""
}

// Email checks the local@domain.tld shape. Empty values pass.
func Email(value, label string) string {
	if value != "" && !emailRe.MatchString(value) {
		return label + " format is invalid."
	}
	return ""
}

// Slug checks the URL-safe organization slug shape. Empty values pass.
func Slug(value, label string) string {
	if value != "" && !slugRe.MatchString(value) {
		return label + " must contain only lowercase letters, numbers, and hyphens."
	}
	return ""
}

// Status checks enum membership against the allowed literal set. Any other
// value is an error, never a silent coercion. Empty values pass.
func Status(value string, allowed []string, label string) string {
	if value == "" {
		return ""
	}
	for _, a := range allowed {
		if value == a {
			return ""
		}
	}
	return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(allowed, ", "))
}

// Result is the outcome of validating a whole form. Errors maps field key to
// message; a field failing never touches another field's entry.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

func newResult() Result {
	return Result{IsValid: true, Errors: map[string]string{}}
}

// fail records the first error for a field. Later rules for the same field do
// not overwrite it, mirroring the required-then-shape rule ordering.
func (r *Result) fail(field, msg string) {
	if msg == "" {
		return
	}
	if _, dup := r.Errors[field]; dup {
		return
	}
	r.Errors[field] = msg
	r.IsValid = false
}
