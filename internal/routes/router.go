// Package routes assembles the HTTP API.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/just-nibble/codehost/internal/http/handlers"
	"github.com/just-nibble/codehost/internal/usecases"
	"github.com/just-nibble/codehost/pkg/response"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/just-nibble/codehost/docs"
)

// Dependencies is everything the router needs. A nil Registry gets a
// fresh one, so routers built in tests do not share collectors.
type Dependencies struct {
	Users        usecases.UserUsecase
	Repositories usecases.RepositoryUsecase
	Commits      usecases.CommitUsecase
	Issues       usecases.IssueUsecase
	Stars        usecases.StarUsecase
	Search       usecases.SearchUsecase
	DB           handlers.Pinger

	Log            zerolog.Logger
	AllowedOrigins []string
	Registry       *prometheus.Registry
}

func NewRouter(deps Dependencies) http.Handler {
	reg := deps.Registry
	if reg == nil {
		reg = newRegistry()
	}
	metrics := newHTTPMetrics(reg)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(requestLogger(deps.Log))
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	router.Use(metrics.middleware)
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.ErrorResponse(w, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.ErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	users := handlers.NewUserHandler(deps.Users, deps.Repositories)
	repos := handlers.NewRepositoryHandler(deps.Repositories)
	commits := handlers.NewCommitHandler(deps.Commits)
	issues := handlers.NewIssueHandler(deps.Issues)
	stars := handlers.NewStarHandler(deps.Stars)
	search := handlers.NewSearchHandler(deps.Search)
	health := handlers.NewHealthHandler(deps.DB, deps.Log)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", users.ListUsers)
		r.Post("/", users.CreateUser)
		r.Get("/username/{username}", users.GetUserByUsername)
		r.Get("/{id}", users.GetUser)
		r.Put("/{id}", users.UpdateUser)
		r.Delete("/{id}", users.DeleteUser)
		r.Get("/{id}/repositories", users.ListUserRepositories)

		r.Get("/{id}/stars", stars.ListStarred)
		r.Post("/{id}/stars/{repository_id}", stars.StarRepository)
		r.Delete("/{id}/stars/{repository_id}", stars.UnstarRepository)
		r.Get("/{id}/stars/{repository_id}/check", stars.CheckStarred)
	})

	router.Route("/repositories", func(r chi.Router) {
		r.Get("/", repos.FetchAllRepositories)
		r.Post("/", repos.AddRepository)
		r.Get("/{id}", repos.FetchRepository)
		r.Put("/{id}", repos.UpdateRepository)
		r.Delete("/{id}", repos.DeleteRepository)

		r.Get("/{id}/commits", commits.GetCommitsByRepository)
		r.Post("/{id}/commits", commits.CreateCommit)
		r.Get("/{id}/issues", issues.GetIssuesByRepository)
		r.Post("/{id}/issues", issues.CreateIssue)
		r.Get("/{id}/stars/count", stars.CountStars)
	})

	router.Route("/commits", func(r chi.Router) {
		r.Get("/{id}", commits.GetCommit)
		r.Put("/{id}", commits.UpdateCommit)
		r.Delete("/{id}", commits.DeleteCommit)
	})

	router.Route("/issues", func(r chi.Router) {
		r.Get("/{id}", issues.GetIssue)
		r.Put("/{id}", issues.UpdateIssue)
		r.Delete("/{id}", issues.DeleteIssue)
	})

	router.Get("/search", search.Search)
	router.Get("/healthz", health.Health)
	router.Handle("/metrics", metricsHandler(reg))
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return router
}
