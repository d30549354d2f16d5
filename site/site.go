// Package site is the route controller: it owns the handlers, the session
// middleware and the admin gate. All state lives on the Site struct, which
// main constructs once and hands to the router.
package site

import (
	"context"
	"log"
	"net/http"

	"inkwell/config"
	"inkwell/database"
	"inkwell/templates"

	g "github.com/maragudk/gomponents"
	"gorm.io/gorm"
)

type contextKey string

const currentUserContextKey = contextKey("current_user")

const sessionCookieName = "inkwell_session"

type Site struct {
	db  *gorm.DB
	cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Site {
	return &Site{db: db, cfg: cfg}
}

func currentUser(r *http.Request) *database.User {
	user, _ := r.Context().Value(currentUserContextKey).(*database.User)
	return user
}

func isAdmin(user *database.User) bool {
	return user != nil && user.ID == database.AdminUserID
}

// WithCurrentUser resolves the session cookie to a user and stores it in the
// request context. Anything that doesn't resolve cleanly (no cookie, unknown
// token, user deleted out-of-band) means no identity; a stale cookie gets
// cleared on the way through.
func (s *Site) WithCurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := database.SessionByToken(s.db, cookie.Value)
		if err != nil {
			log.Printf("Error resolving session token: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		var user *database.User
		if session != nil {
			user, err = database.UserByID(s.db, session.UserID)
			if err != nil {
				log.Printf("Error resolving session user: %v", err)
				next.ServeHTTP(w, r)
				return
			}
		}

		if user == nil {
			clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Site) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if currentUser(r) == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminOnly terminates the request with 403 before the wrapped handler runs,
// so a forbidden request can have no side effects.
func (s *Site) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(currentUser(r)) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// signIn mints a session for the user inside tx and returns the token. The
// caller sets the cookie only after the transaction commits.
func signIn(tx *gorm.DB, userID uint, token string) error {
	return tx.Create(&database.Session{Token: token, UserID: userID}).Error
}

func (s *Site) pageProps(w http.ResponseWriter, r *http.Request, title string) templates.PageProps {
	props := templates.PageProps{
		Title:    title,
		SiteName: s.cfg.SiteName,
		Flash:    popFlash(w, r),
	}
	if user := currentUser(r); user != nil {
		props.LoggedIn = true
		props.UserName = user.Name
		props.IsAdmin = isAdmin(user)
	}
	return props
}

func (s *Site) render(w http.ResponseWriter, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		log.Printf("Page render error: %v", err)
	}
}

func (s *Site) renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	props := s.pageProps(w, r, "Not Found")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := templates.ErrorPage(props, message).Render(w); err != nil {
		log.Printf("Page render error: %v", err)
	}
}
