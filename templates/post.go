package templates

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"inkwell/database"
	"inkwell/forms"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func renderMarkdown(markdownStr string) g.Node {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(markdownStr))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return g.Raw(string(markdown.Render(doc, renderer)))
}

// gravatarURL mirrors the avatar settings the site has always used:
// 100px, rating g, "retro" fallback.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=100&d=retro&r=g", hex.EncodeToString(sum[:]))
}

func commentComponent(comment database.Comment) g.Node {
	return Div(Class("comment row"),
		Div(Class("col-2"),
			Img(Class("avatar"), Src(gravatarURL(comment.User.Email)), Alt(comment.User.Name)),
		),
		Div(Class("col-10"),
			P(Class("comment-author"), Strong(g.Text(comment.User.Name))),
			renderMarkdown(comment.Body),
		),
	)
}

func PostPage(props PageProps, post *database.BlogPost, form forms.Comment, errs forms.Errors) g.Node {
	return Layout(props,
		Div(Class("post-heading"),
			H1(g.Text(post.Title)),
			H3(Class("subtitle"), g.Text(post.Subtitle)),
			P(Class("post-meta"), g.Textf("Posted by %s on %s", post.Author, post.Date)),
			Img(Class("post-image"), Src(post.ImgURL), Alt(post.Title)),
		),
		Article(Class("post-body"),
			renderMarkdown(post.Body),
		),
		g.If(props.IsAdmin,
			P(A(Href(fmt.Sprintf("/edit_post/%d", post.ID)), g.Text("Edit Post"))),
		),
		Hr(),
		H4(g.Textf("Comments (%d)", len(post.Comments))),
		g.Group(g.Map(post.Comments, commentComponent)),
		Form(Method("post"), Action(postPath(post.ID)),
			Label(For("body"), g.Text("Leave a comment")),
			Textarea(ID("body"), Name("body"), Rows("4"), g.Text(form.Body)),
			fieldError(errs, "body"),
			Button(Type("submit"), g.Text("Submit Comment")),
		),
	)
}
