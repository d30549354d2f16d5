package site

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func (s *Site) Routes() *chi.Mux {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(httprate.LimitByIP(100, time.Minute)) // general rate limiter for all routes (shared across all routes)
	r.Use(middleware.Recoverer)
	r.Use(s.WithCurrentUser)

	r.Get("/", s.Index)
	r.Get("/about", s.About)
	r.Get("/contact", s.Contact)

	r.HandleFunc("/register", s.Register)
	r.HandleFunc("/login", s.Login)
	r.Get("/logout", s.Logout)

	r.With(s.RequireLogin).HandleFunc("/post/{postID}", s.ShowPost)

	r.With(s.AdminOnly).HandleFunc("/new-post", s.NewPost)
	r.With(s.AdminOnly).HandleFunc("/edit_post/{postID}", s.EditPost)
	r.With(s.AdminOnly).Get("/delete/{postID}", s.DeletePost)

	fileServer := http.FileServer(http.Dir("./assets"))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	return r
}
