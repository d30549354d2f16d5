package site

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"inkwell/auth"
	"inkwell/database"
	"inkwell/forms"
	"inkwell/templates"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// postDateLayout renders the human-readable stamp posts carry, e.g. "April 05, 2024".
const postDateLayout = "January 02, 2006"

func (s *Site) Index(w http.ResponseWriter, r *http.Request) {
	var posts []database.BlogPost
	result := s.db.Find(&posts)
	if result.Error != nil {
		http.Error(w, "Error fetching posts", http.StatusInternalServerError)
		return
	}

	s.render(w, templates.Index(s.pageProps(w, r, s.cfg.SiteName), posts))
}

func (s *Site) Register(w http.ResponseWriter, r *http.Request) {
	if currentUser(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	switch r.Method {
	case "GET":
		s.render(w, templates.Register(s.pageProps(w, r, "Register"), forms.Register{}, nil))

	case "POST":
		form := forms.Register{
			Name:     r.FormValue("name"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
		if errs := form.Validate(); !errs.Valid() {
			s.render(w, templates.Register(s.pageProps(w, r, "Register"), form, errs))
			return
		}

		existing, err := database.UserByEmail(s.db, form.Email)
		if err != nil {
			http.Error(w, "Error checking existing accounts", http.StatusInternalServerError)
			return
		}
		if existing != nil {
			setFlash(w, "You have already registered. Please login instead.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		passwordHash, err := auth.HashPassword(form.Password)
		if err != nil {
			http.Error(w, "Error creating account", http.StatusInternalServerError)
			return
		}

		token, err := auth.NewSessionToken()
		if err != nil {
			http.Error(w, "Error creating account", http.StatusInternalServerError)
			return
		}

		// User and session land together or not at all.
		err = s.db.Transaction(func(tx *gorm.DB) error {
			newUser := database.User{Name: form.Name, Email: form.Email, PasswordHash: passwordHash}
			if err := tx.Create(&newUser).Error; err != nil {
				return err
			}
			return signIn(tx, newUser.ID, token)
		})
		if err != nil {
			http.Error(w, "Error creating account: "+err.Error(), http.StatusInternalServerError)
			return
		}

		setSessionCookie(w, token)
		http.Redirect(w, r, "/", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) Login(w http.ResponseWriter, r *http.Request) {
	if currentUser(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	switch r.Method {
	case "GET":
		s.render(w, templates.Login(s.pageProps(w, r, "Login"), forms.Login{}, nil))

	case "POST":
		form := forms.Login{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
		if errs := form.Validate(); !errs.Valid() {
			s.render(w, templates.Login(s.pageProps(w, r, "Login"), form, errs))
			return
		}

		user, err := database.UserByEmail(s.db, form.Email)
		if err != nil {
			http.Error(w, "Error looking up account", http.StatusInternalServerError)
			return
		}
		if user == nil {
			setFlash(w, "You have entered an invalid email. Try again, or register as a new user.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ok, err := auth.VerifyPassword(user.PasswordHash, form.Password)
		if err != nil {
			log.Printf("Error verifying password for user %d: %v", user.ID, err)
			http.Error(w, "Error verifying password", http.StatusInternalServerError)
			return
		}
		if !ok {
			setFlash(w, "You have entered an invalid password")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		token, err := auth.NewSessionToken()
		if err != nil {
			http.Error(w, "Error signing in", http.StatusInternalServerError)
			return
		}
		if err := signIn(s.db, user.ID, token); err != nil {
			http.Error(w, "Error signing in", http.StatusInternalServerError)
			return
		}

		setSessionCookie(w, token)
		http.Redirect(w, r, "/", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Logout tears the session down unconditionally; logging out twice is fine.
func (s *Site) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		result := s.db.Where(&database.Session{Token: cookie.Value}).Delete(&database.Session{})
		if result.Error != nil {
			log.Printf("Error deleting session: %v", result.Error)
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) loadPost(w http.ResponseWriter, r *http.Request) *database.BlogPost {
	postID, err := strconv.ParseUint(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		s.renderNotFound(w, r, "That doesn't look like a post.")
		return nil
	}

	post, err := database.PostByID(s.db, uint(postID))
	if err != nil {
		http.Error(w, "Error fetching post", http.StatusInternalServerError)
		return nil
	}
	if post == nil {
		s.renderNotFound(w, r, "This post doesn't exist, or has been deleted.")
		return nil
	}
	return post
}

func (s *Site) ShowPost(w http.ResponseWriter, r *http.Request) {
	post := s.loadPost(w, r)
	if post == nil {
		return
	}

	switch r.Method {
	case "GET":
		s.render(w, templates.PostPage(s.pageProps(w, r, post.Title), post, forms.Comment{}, nil))

	case "POST":
		form := forms.Comment{Body: r.FormValue("body")}
		if errs := form.Validate(); !errs.Valid() {
			s.render(w, templates.PostPage(s.pageProps(w, r, post.Title), post, form, errs))
			return
		}

		user := currentUser(r)
		comment := database.Comment{Body: form.Body, UserID: user.ID, PostID: post.ID}
		if result := s.db.Create(&comment); result.Error != nil {
			http.Error(w, "Error saving comment", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/post/"+strconv.Itoa(int(post.ID)), http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) NewPost(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		s.render(w, templates.MakePost(s.pageProps(w, r, "New Post"), forms.Post{}, nil, false, 0))

	case "POST":
		form := postFormFromRequest(r)
		if errs := form.Validate(); !errs.Valid() {
			s.render(w, templates.MakePost(s.pageProps(w, r, "New Post"), form, errs, false, 0))
			return
		}

		existing, err := database.PostByTitle(s.db, form.Title)
		if err != nil {
			http.Error(w, "Error verifying if post exists: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if existing != nil {
			setFlash(w, "A post with that title already exists.")
			http.Redirect(w, r, "/new-post", http.StatusSeeOther)
			return
		}

		user := currentUser(r)
		newPost := database.BlogPost{
			Title:    form.Title,
			Subtitle: form.Subtitle,
			Date:     time.Now().Format(postDateLayout),
			Author:   user.Name,
			UserID:   &user.ID,
			ImgURL:   form.ImgURL,
			Body:     form.Body,
		}
		if result := s.db.Create(&newPost); result.Error != nil {
			http.Error(w, "Error creating post", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) EditPost(w http.ResponseWriter, r *http.Request) {
	post := s.loadPost(w, r)
	if post == nil {
		return
	}

	switch r.Method {
	case "GET":
		form := forms.Post{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImgURL:   post.ImgURL,
			Body:     post.Body,
		}
		s.render(w, templates.MakePost(s.pageProps(w, r, "Edit Post"), form, nil, true, post.ID))

	case "POST":
		form := postFormFromRequest(r)
		if errs := form.Validate(); !errs.Valid() {
			s.render(w, templates.MakePost(s.pageProps(w, r, "Edit Post"), form, errs, true, post.ID))
			return
		}

		existing, err := database.PostByTitle(s.db, form.Title)
		if err != nil {
			http.Error(w, "Error verifying if post exists: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if existing != nil && existing.ID != post.ID {
			setFlash(w, "A post with that title already exists.")
			http.Redirect(w, r, "/edit_post/"+strconv.Itoa(int(post.ID)), http.StatusSeeOther)
			return
		}

		// Author and date stay as they were when the post was written.
		post.Title = form.Title
		post.Subtitle = form.Subtitle
		post.ImgURL = form.ImgURL
		post.Body = form.Body

		if result := s.db.Save(post); result.Error != nil {
			http.Error(w, "Error updating post", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/post/"+strconv.Itoa(int(post.ID)), http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) DeletePost(w http.ResponseWriter, r *http.Request) {
	post := s.loadPost(w, r)
	if post == nil {
		return
	}

	// Hard delete: a destroyed post must release its title for reuse, and
	// the unique index still sees soft-deleted rows.
	if result := s.db.Unscoped().Delete(post); result.Error != nil {
		http.Error(w, "Error deleting post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Site) About(w http.ResponseWriter, r *http.Request) {
	s.render(w, templates.About(s.pageProps(w, r, "About")))
}

func (s *Site) Contact(w http.ResponseWriter, r *http.Request) {
	s.render(w, templates.Contact(s.pageProps(w, r, "Contact")))
}

func postFormFromRequest(r *http.Request) forms.Post {
	return forms.Post{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImgURL:   r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}
}
