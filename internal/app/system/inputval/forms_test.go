package inputval

import "testing"

func TestOrganizationForm_Valid(t *testing.T) {
	res := OrganizationForm{
		Name:         "Acme Corp",
		Slug:         "acme-corp",
		ContactEmail: "hello@acme.com",
	}.Validate()

	if !res.IsValid {
		t.Fatalf("expected valid, got errors %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("expected empty error map, got %v", res.Errors)
	}
}

func TestOrganizationForm_MissingField(t *testing.T) {
	res := OrganizationForm{
		Name:         "Acme Corp",
		ContactEmail: "hello@acme.com",
	}.Validate()

	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if _, ok := res.Errors["slug"]; !ok {
		t.Error("expected slug error")
	}
	// One field failing must not bleed into the others.
	if _, ok := res.Errors["name"]; ok {
		t.Error("name should not have an error")
	}
	if _, ok := res.Errors["contactEmail"]; ok {
		t.Error("contactEmail should not have an error")
	}
}

func TestOrganizationForm_RequiredBeforeShape(t *testing.T) {
	res := OrganizationForm{Slug: "ok-slug", ContactEmail: "a@b.co"}.Validate()
	if got := res.Errors["name"]; got != "Name is required." {
		t.Errorf("required message should win for empty field, got %q", got)
	}
}

func TestProjectForm(t *testing.T) {
	tests := []struct {
		name    string
		form    ProjectForm
		wantErr string // field expected to fail, "" = valid
	}{
		{"valid", ProjectForm{Name: "Launch", Status: "ACTIVE"}, ""},
		{"valid no status", ProjectForm{Name: "Launch"}, ""},
		{"name too short", ProjectForm{Name: "L"}, "name"},
		{"name missing", ProjectForm{Status: "ACTIVE"}, "name"},
		{"bad status", ProjectForm{Name: "Launch", Status: "RUNNING"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.form.Validate()
			if tt.wantErr == "" {
				if !res.IsValid {
					t.Fatalf("expected valid, got %v", res.Errors)
				}
				return
			}
			if res.IsValid {
				t.Fatal("expected invalid")
			}
			if _, ok := res.Errors[tt.wantErr]; !ok {
				t.Errorf("expected error on %q, got %v", tt.wantErr, res.Errors)
			}
		})
	}
}

func TestTaskForm(t *testing.T) {
	tests := []struct {
		name    string
		form    TaskForm
		wantErr string
	}{
		{"valid", TaskForm{Title: "Write copy", Status: "TODO"}, ""},
		{"valid with assignee", TaskForm{Title: "Write copy", AssigneeEmail: "a@b.co"}, ""},
		{"title missing", TaskForm{Status: "TODO"}, "title"},
		{"bad status", TaskForm{Title: "Write copy", Status: "WAITING"}, "status"},
		{"bad assignee", TaskForm{Title: "Write copy", AssigneeEmail: "not-an-email"}, "assigneeEmail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.form.Validate()
			if tt.wantErr == "" {
				if !res.IsValid {
					t.Fatalf("expected valid, got %v", res.Errors)
				}
				return
			}
			if _, ok := res.Errors[tt.wantErr]; !ok {
				t.Errorf("expected error on %q, got %v", tt.wantErr, res.Errors)
			}
		})
	}
}

func TestCommentForm(t *testing.T) {
	res := CommentForm{Content: "Looks good", AuthorEmail: "a@b.co"}.Validate()
	if !res.IsValid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}

	res = CommentForm{AuthorEmail: "bad"}.Validate()
	if res.IsValid {
		t.Fatal("expected invalid")
	}
	if _, ok := res.Errors["content"]; !ok {
		t.Error("expected content error")
	}
	if _, ok := res.Errors["authorEmail"]; !ok {
		t.Error("expected authorEmail error")
	}
}

func TestRegisterForm(t *testing.T) {
	valid := RegisterForm{
		Name:            "Ada",
		Email:           "a@acme.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		OrgName:         "Acme",
		OrgSlug:         "acme",
	}

	if res := valid.Validate(); !res.IsValid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}

	mismatch := valid
	mismatch.ConfirmPassword = "secret2"
	if res := mismatch.Validate(); res.IsValid || res.Errors["confirmPassword"] == "" {
		t.Error("expected confirmPassword error on mismatch")
	}

	short := valid
	short.Password, short.ConfirmPassword = "abc", "abc"
	if res := short.Validate(); res.IsValid || res.Errors["password"] == "" {
		t.Error("expected password length error")
	}

	badSlug := valid
	badSlug.OrgSlug = "Acme Inc"
	if res := badSlug.Validate(); res.IsValid || res.Errors["organizationSlug"] == "" {
		t.Error("expected organizationSlug error")
	}
}

func TestMemberForm(t *testing.T) {
	if res := (MemberForm{Name: "Bo", Email: "bo@x.co", Password: "secret1"}).Validate(); !res.IsValid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
	res := MemberForm{Name: "B", Email: "bad", Password: "ab"}.Validate()
	for _, field := range []string{"name", "email", "password"} {
		if res.Errors[field] == "" {
			t.Errorf("expected %s error", field)
		}
	}
}
