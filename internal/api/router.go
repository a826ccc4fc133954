package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/exercise-tracker/internal/api/handlers"
	"github.com/baharkarakas/exercise-tracker/internal/config"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/middleware"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

func NewRouter(cfg config.Config, us *services.UserService, es *services.ExerciseService) http.Handler {
	metrics.Init()

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog, middleware.HTTPMetrics, middleware.Recover)
	// cors sits ahead of the limiter: preflights never spend a token and
	// 429s still carry the CORS headers
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))
	r.Use(middleware.RateLimit(cfg.RateRPS))
	r.Use(chimw.GetHead)

	// unmatched paths fall through to public/ before the JSON 404
	r.NotFound(handlers.Static(cfg.PublicDir))
	r.MethodNotAllowed(handlers.NotFound)

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Get("/", handlers.Index(cfg.ViewsDir))

	users := handlers.NewUserHandler(us)
	exercises := handlers.NewExerciseHandler(es)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", users.Create)
		r.Get("/", users.List)
		r.Post("/{"+handlers.UserIDParam+"}/exercises", exercises.Add)
		r.Get("/{"+handlers.UserIDParam+"}/logs", exercises.Log)
	})

	return r
}
