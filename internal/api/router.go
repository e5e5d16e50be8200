package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/wellux/bloglist-backend/internal/api/handlers"
	"github.com/wellux/bloglist-backend/internal/api/httpx"
	"github.com/wellux/bloglist-backend/internal/auth"
	"github.com/wellux/bloglist-backend/internal/config"
	"github.com/wellux/bloglist-backend/internal/metrics"
	"github.com/wellux/bloglist-backend/internal/middleware"
	repo "github.com/wellux/bloglist-backend/internal/repository"
	"github.com/wellux/bloglist-backend/internal/services"
)

// handlerFunc lets handlers return errors; translation to HTTP happens in
// exactly one place (httpx.Error).
type handlerFunc func(http.ResponseWriter, *http.Request) error

func handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			httpx.Error(w, err)
		}
	}
}

func NewRouter(cfg config.Config, tm *auth.TokenManager, users repo.Users, userSvc *services.UserService, blogSvc *services.BlogService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.HTTPMetrics)
	r.Use(middleware.TokenExtractor)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	uh := handlers.NewUsers(userSvc)
	lh := handlers.NewLogin(userSvc)
	bh := handlers.NewBlogs(blogSvc)
	ue := middleware.NewUserExtractor(tm, users)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", handle(uh.Create))
		r.Get("/users", handle(uh.List))

		r.Post("/login", handle(lh.Login))

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", handle(bh.List))
			r.Get("/stats", handle(bh.Stats))
			r.Put("/{id}", handle(bh.Update))

			r.Group(func(r chi.Router) {
				r.Use(ue.Extract)
				r.Post("/", handle(bh.Create))
				r.Delete("/{id}", handle(bh.Delete))
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusNotFound, httpx.ErrorBody{Error: "unknown endpoint"})
	})

	return r
}
