// internal/app/system/inputval/forms.go
package inputval

import "github.com/markjessn/mini-pms/internal/domain/models"

// OrganizationForm validates the organization create/update fields.
type OrganizationForm struct {
	Name         string
	Slug         string
	ContactEmail string
}

func (f OrganizationForm) Validate() Result {
	res := newResult()

	if msg := Required(f.Name, "Name"); msg != "" {
		res.fail("name", msg)
	} else {
		res.fail("name", MinLength(f.Name, NameMinLen, "Name"))
		res.fail("name", MaxLength(f.Name, NameMaxLen, "Name"))
	}

	if msg := Required(f.Slug, "Slug"); msg != "" {
		res.fail("slug", msg)
	} else {
		res.fail("slug", Slug(f.Slug, "Slug"))
	}

	if msg := Required(f.ContactEmail, "Contact email"); msg != "" {
		res.fail("contactEmail", msg)
	} else {
		res.fail("contactEmail", Email(f.ContactEmail, "Contact email"))
	}

	return res
}

// ProjectForm validates the project create/update fields.
type ProjectForm struct {
	Name   string
	Status string
}

func (f ProjectForm) Validate() Result {
	res := newResult()

	if msg := Required(f.Name, "Name"); msg != "" {
		res.fail("name", msg)
	} else {
		res.fail("name", MinLength(f.Name, NameMinLen, "Name"))
		res.fail("name", MaxLength(f.Name, TitleMaxLen, "Name"))
	}

	res.fail("status", Status(f.Status, models.ProjectStatuses, "Status"))

	return res
}

// TaskForm validates the task create/update fields.
type TaskForm struct {
	Title         string
	Status        string
	AssigneeEmail string
}

func (f TaskForm) Validate() Result {
	res := newResult()

	if msg := Required(f.Title, "Title"); msg != "" {
		res.fail("title", msg)
	} else {
		res.fail("title", MinLength(f.Title, NameMinLen, "Title"))
		res.fail("title", MaxLength(f.Title, TitleMaxLen, "Title"))
	}

	res.fail("status", Status(f.Status, models.TaskStatuses, "Status"))
	res.fail("assigneeEmail", Email(f.AssigneeEmail, "Assignee email"))

	return res
}

// CommentForm validates the add-comment fields.
type CommentForm struct {
	Content     string
	AuthorEmail string
}

func (f CommentForm) Validate() Result {
	res := newResult()

	res.fail("content", Required(f.Content, "Content"))

	if msg := Required(f.AuthorEmail, "Author email"); msg != "" {
		res.fail("authorEmail", msg)
	} else {
		res.fail("authorEmail", Email(f.AuthorEmail, "Author email"))
	}

	return res
}

// RegisterForm validates the combined new-organization + admin-user form.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	OrgName         string
	OrgSlug         string
}

func (f RegisterForm) Validate() Result {
	res := newResult()

	if msg := Required(f.Name, "Name"); msg != "" {
		res.fail("name", msg)
	} else {
		res.fail("name", MinLength(f.Name, NameMinLen, "Name"))
	}

	if msg := Required(f.Email, "Email"); msg != "" {
		res.fail("email", msg)
	} else {
		res.fail("email", Email(f.Email, "Email"))
	}

	if msg := Required(f.Password, "Password"); msg != "" {
		res.fail("password", msg)
	} else {
		res.fail("password", MinLength(f.Password, PasswordMinLen, "Password"))
	}
	if f.Password != f.ConfirmPassword {
		res.fail("confirmPassword", "Passwords do not match.")
	}

	if msg := Required(f.OrgName, "Organization name"); msg != "" {
		res.fail("organizationName", msg)
	} else {
		res.fail("organizationName", MinLength(f.OrgName, NameMinLen, "Organization name"))
		res.fail("organizationName", MaxLength(f.OrgName, NameMaxLen, "Organization name"))
	}

	if msg := Required(f.OrgSlug, "Organization slug"); msg != "" {
		res.fail("organizationSlug", msg)
	} else {
		res.fail("organizationSlug", Slug(f.OrgSlug, "Organization slug"))
	}

	return res
}

// MemberForm validates the invite-member form.
type MemberForm struct {
	Name     string
	Email    string
	Password string
}

func (f MemberForm) Validate() Result {
	res := newResult()

	if msg := Required(f.Name, "Name"); msg != "" {
		res.fail("name", msg)
	} else {
		res.fail("name", MinLength(f.Name, NameMinLen, "Name"))
	}

	if msg := Required(f.Email, "Email"); msg != "" {
		res.fail("email", msg)
	} else {
		res.fail("email", Email(f.Email, "Email"))
	}

	if msg := Required(f.Password, "Password"); msg != "" {
		res.fail("password", msg)
	} else {
		res.fail("password", MinLength(f.Password, PasswordMinLen, "Password"))
	}

	return res
}
