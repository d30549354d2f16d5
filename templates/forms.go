package templates

import (
	"fmt"

	"inkwell/forms"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func fieldError(errs forms.Errors, field string) g.Node {
	return g.If(errs.Has(field),
		P(Class("field-error"), Small(g.Text(errs.Get(field)))),
	)
}

func Register(props PageProps, form forms.Register, errs forms.Errors) g.Node {
	return Layout(props,
		H1(g.Text("Register")),
		Form(Method("post"), Action("/register"),
			Label(For("name"), g.Text("Your Name")),
			Input(Type("text"), ID("name"), Name("name"), Value(form.Name)),
			fieldError(errs, "name"),

			Label(For("email"), g.Text("Your Email")),
			Input(Type("email"), ID("email"), Name("email"), Value(form.Email)),
			fieldError(errs, "email"),

			Label(For("password"), g.Text("Your Password")),
			Input(Type("password"), ID("password"), Name("password")),
			fieldError(errs, "password"),

			Button(Type("submit"), g.Text("Sign Me Up!")),
		),
	)
}

func Login(props PageProps, form forms.Login, errs forms.Errors) g.Node {
	return Layout(props,
		H1(g.Text("Login")),
		Form(Method("post"), Action("/login"),
			Label(For("email"), g.Text("Your Email")),
			Input(Type("email"), ID("email"), Name("email"), Value(form.Email)),
			fieldError(errs, "email"),

			Label(For("password"), g.Text("Your Password")),
			Input(Type("password"), ID("password"), Name("password")),
			fieldError(errs, "password"),

			Button(Type("submit"), g.Text("Login")),
		),
	)
}

// MakePost serves both the new-post and edit-post pages; the edit variant
// posts back to its own URL so the handler knows which row to overwrite.
func MakePost(props PageProps, form forms.Post, errs forms.Errors, isEdit bool, postID uint) g.Node {
	action := "/new-post"
	submitLabel := "Submit Post"
	if isEdit {
		action = fmt.Sprintf("/edit_post/%d", postID)
		submitLabel = "Edit Post"
	}

	return Layout(props,
		H1(g.Text(props.Title)),
		Form(Method("post"), Action(action),
			Label(For("title"), g.Text("Blog Post Title")),
			Input(Type("text"), ID("title"), Name("title"), Value(form.Title)),
			fieldError(errs, "title"),

			Label(For("subtitle"), g.Text("Subtitle")),
			Input(Type("text"), ID("subtitle"), Name("subtitle"), Value(form.Subtitle)),
			fieldError(errs, "subtitle"),

			Label(For("img_url"), g.Text("Blog Image URL")),
			Input(Type("text"), ID("img_url"), Name("img_url"), Value(form.ImgURL)),
			fieldError(errs, "img_url"),

			Label(For("body"), g.Text("Blog Content")),
			Textarea(ID("body"), Name("body"), Rows("12"), g.Text(form.Body)),
			fieldError(errs, "body"),

			Button(Type("submit"), g.Text(submitLabel)),
		),
	)
}
