package templates

import (
	"fmt"

	"inkwell/database"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func postPath(id uint) string {
	return fmt.Sprintf("/post/%d", id)
}

func Index(props PageProps, posts []database.BlogPost) g.Node {
	return Layout(props,
		H1(g.Text(props.SiteName)),
		g.If(len(posts) == 0,
			P(g.Text("Nothing here yet. Check back soon!")),
		),
		g.Group(g.Map(posts, func(post database.BlogPost) g.Node {
			return Div(Class("post-preview card"),
				A(Href(postPath(post.ID)),
					H2(g.Text(post.Title)),
					H3(Class("subtitle"), g.Text(post.Subtitle)),
				),
				P(Class("post-meta"),
					g.Textf("Posted by %s on %s", post.Author, post.Date),
				),
			)
		})),
	)
}

func About(props PageProps) g.Node {
	return Layout(props,
		H1(g.Text("About Us")),
		P(g.Text("This is a small blog run by one person who writes and many people who comment.")),
		P(g.Text("Register an account to join the conversation.")),
	)
}

func Contact(props PageProps) g.Node {
	return Layout(props,
		H1(g.Text("Contact Me")),
		P(g.Text("Questions, corrections, or just want to say hi?")),
		P(A(Href("mailto:hello@example.com"), g.Text("hello@example.com"))),
	)
}

func ErrorPage(props PageProps, message string) g.Node {
	return Layout(props,
		H1(g.Text(props.Title)),
		P(g.Text(message)),
		P(A(Href("/"), g.Text("Back to the front page"))),
	)
}
