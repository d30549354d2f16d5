package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPostForm() Post {
	return Post{
		Title:    "Hello World",
		Subtitle: "A first post",
		ImgURL:   "https://example.com/cat.jpg",
		Body:     "Some content.",
	}
}

func TestPostValidate(t *testing.T) {
	assert.True(t, validPostForm().Validate().Valid())

	f := validPostForm()
	f.Title = "  "
	errs := f.Validate()
	assert.False(t, errs.Valid())
	assert.True(t, errs.Has("title"))

	f = validPostForm()
	f.ImgURL = "not a url"
	errs = f.Validate()
	assert.True(t, errs.Has("img_url"))

	f = validPostForm()
	f.ImgURL = "ftp://example.com/cat.jpg"
	assert.True(t, f.Validate().Has("img_url"))

	f = validPostForm()
	f.Body = ""
	assert.True(t, f.Validate().Has("body"))

	f = validPostForm()
	f.Subtitle = ""
	assert.True(t, f.Validate().Has("subtitle"))
}

func TestRegisterValidate(t *testing.T) {
	f := Register{Name: "Alice", Email: "alice@example.com", Password: "pw123"}
	assert.True(t, f.Validate().Valid())

	f.Name = ""
	assert.True(t, f.Validate().Has("name"))

	f = Register{Name: "Alice", Email: "not-an-email", Password: "pw123"}
	assert.True(t, f.Validate().Has("email"))

	f = Register{Name: "Alice", Email: "Alice <alice@example.com>", Password: "pw123"}
	assert.True(t, f.Validate().Has("email"))

	f = Register{Name: "Alice", Email: "alice@example.com"}
	assert.True(t, f.Validate().Has("password"))
}

func TestLoginValidate(t *testing.T) {
	f := Login{Email: "alice@example.com", Password: "pw123"}
	assert.True(t, f.Validate().Valid())

	f = Login{Email: "", Password: "pw123"}
	assert.True(t, f.Validate().Has("email"))

	f = Login{Email: "alice@example.com", Password: ""}
	assert.True(t, f.Validate().Has("password"))
}

func TestCommentValidate(t *testing.T) {
	assert.True(t, Comment{Body: "Nice post!"}.Validate().Valid())
	assert.True(t, Comment{Body: "   "}.Validate().Has("body"))
}
