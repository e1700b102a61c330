// Package router assembles the HTTP routes of the service.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sbilibin2017/quizcraft/internal/middlewares"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Handlers are the endpoint handlers mounted under /api.
type Handlers struct {
	Register    http.HandlerFunc
	Login       http.HandlerFunc
	ListQuizzes http.HandlerFunc
	GetQuiz     http.HandlerFunc
	CreateQuiz  http.HandlerFunc
	UpdateQuiz  http.HandlerFunc
	DeleteQuiz  http.HandlerFunc
}

// Options configures the router.
type Options struct {
	Auth           func(http.Handler) http.Handler // required for /api/quizzes
	Tx             func(http.Handler) http.Handler // wraps quiz writes, optional
	StaticDir      string                          // frontend files served at /, empty disables
	SwaggerURL     string                          // doc.json location for the Swagger UI
	AllowedOrigins []string                        // defaults to any origin
	Log            *zap.SugaredLogger
}

// New returns the root handler.
func New(h Handlers, opts Options) http.Handler {
	if opts.Log == nil {
		opts.Log = zap.NewNop().Sugar()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.SwaggerURL == "" {
		opts.SwaggerURL = "/swagger/doc.json"
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middlewares.LoggingMiddleware(opts.Log))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(opts.Auth)
			r.Get("/quizzes", h.ListQuizzes)
			r.Get("/quizzes/{id}", h.GetQuiz)

			r.Group(func(r chi.Router) {
				if opts.Tx != nil {
					r.Use(opts.Tx)
				}
				r.Post("/quizzes", h.CreateQuiz)
				r.Put("/quizzes/{id}", h.UpdateQuiz)
				r.Delete("/quizzes/{id}", h.DeleteQuiz)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(opts.SwaggerURL),
	))

	if opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}

	return r
}
