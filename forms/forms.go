// Package forms holds the input shapes the site accepts and their
// validation. Each form is a plain struct with a Validate method returning
// field-level errors; nothing here touches the database.
package forms

import (
	"net/mail"
	"net/url"
	"strings"
)

// Errors maps a field name to a message. An empty map means the form is
// valid.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

func (e Errors) Has(field string) bool { return e[field] != "" }

func (e Errors) Get(field string) string { return e[field] }

type Post struct {
	Title    string
	Subtitle string
	ImgURL   string
	Body     string
}

func (f Post) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "Title is required."
	}
	if strings.TrimSpace(f.Subtitle) == "" {
		errs["subtitle"] = "Subtitle is required."
	}
	if strings.TrimSpace(f.ImgURL) == "" {
		errs["img_url"] = "Image URL is required."
	} else if !validURL(f.ImgURL) {
		errs["img_url"] = "Image URL must be a valid URL."
	}
	if strings.TrimSpace(f.Body) == "" {
		errs["body"] = "Content is required."
	}
	return errs
}

type Register struct {
	Name     string
	Email    string
	Password string
}

func (f Register) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required."
	}
	validateCredentials(f.Email, f.Password, errs)
	return errs
}

type Login struct {
	Email    string
	Password string
}

func (f Login) Validate() Errors {
	errs := Errors{}
	validateCredentials(f.Email, f.Password, errs)
	return errs
}

type Comment struct {
	Body string
}

func (f Comment) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Body) == "" {
		errs["body"] = "Comment is required."
	}
	return errs
}

func validateCredentials(email, password string, errs Errors) {
	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required."
	} else if !validEmail(email) {
		errs["email"] = "Email must be a valid email address."
	}
	if password == "" {
		errs["password"] = "Password is required."
	}
}

// validEmail accepts a bare address like alice@example.com. Addresses with
// display names ("Alice <alice@example.com>") are rejected since a login
// form shouldn't see them.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
