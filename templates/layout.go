// Package templates renders every page as gomponents nodes. Handlers pass a
// PageProps plus whatever page data they have; no html/template files exist.
package templates

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type PageProps struct {
	Title    string
	SiteName string
	UserName string
	LoggedIn bool
	IsAdmin  bool
	Flash    string
}

func NavbarComponent(props PageProps) g.Node {
	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text(props.SiteName))),
			A(Href("/about"), g.Text("About")),
			A(Href("/contact"), g.Text("Contact")),
		),
		Div(Class("nav-links nav-right"),
			g.If(!props.LoggedIn,
				Div(
					A(Href("/login"), g.Text("Login")),
					A(Href("/register"), g.Text("Register")),
				),
			),
			g.If(props.LoggedIn,
				Div(Class("row"),
					g.If(props.IsAdmin,
						Div(Class("col"), A(Href("/new-post"), g.Text("New Post"))),
					),
					Div(Class("col"), g.Textf("Logged in as %s", props.UserName)),
					Div(Class("col"), A(Href("/logout"), g.Text("Logout"))),
				)),
		),
	)
}

func FlashComponent(props PageProps) g.Node {
	return g.If(props.Flash != "",
		Div(Class("flash-notice"), g.Text(props.Flash)),
	)
}

func FooterComponent(props PageProps) g.Node {
	return Footer(Class("footer"),
		P(Class("with-love"),
			Small(g.Textf("%s — a place for words.", props.SiteName)),
		),
	)
}

func Layout(props PageProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),

				Link(Rel("stylesheet"), Href("https://unpkg.com/chota@latest/dist/chota.min.css")),
				Link(Rel("stylesheet"), Href("/assets/css/main.css")),

				TitleEl(g.Text(props.Title)),
			),
			Body(
				Div(Class("container"), Style("margin-top: 1.5em;"),
					NavbarComponent(props),
					FlashComponent(props),
					Main(
						g.Group(children),
					),
				),
				FooterComponent(props),
			),
		),
	)
}
