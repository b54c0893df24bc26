// internal/app/system/inputval/touched.go
package inputval

// Touched tracks which fields of a form the user has interacted with. The
// flag is monotonic: once a field is touched it stays touched for the life of
// the form, so its validation message keeps re-rendering on every edit.
type Touched map[string]bool

// Mark flags a field as touched.
func (t Touched) Mark(field string) { t[field] = true }

// MarkAll flags every field of a submitted form, so a failed submit shows
// all outstanding errors at once.
func (t Touched) MarkAll(fields ...string) {
	for _, f := range fields {
		t[f] = true
	}
}

// Visible filters a validation result down to the errors the user should see:
// only touched fields surface messages.
func (t Touched) Visible(res Result) map[string]string {
	out := map[string]string{}
	for field, msg := range res.Errors {
		if t[field] {
			out[field] = msg
		}
	}
	return out
}
