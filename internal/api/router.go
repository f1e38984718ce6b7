package api

import (
	"net/http"
	"time"

	"contest_client/internal/api/handler"
	"contest_client/internal/app/service"
	"contest_client/internal/app/session"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the localhost gateway a UI renders from. It only serves
// the session's current view state; freshness is owned by the workers.
func NewRouter(
	sess *session.Session,
	identityService *service.IdentityService,
	contestService *service.ContestService,
	submitService *service.SubmitService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(v1 chi.Router) {
		sessionHandler := handler.NewSessionHandler(identityService, sess)
		v1.Group(func(sessionRoutes chi.Router) {
			sessionHandler.RegisterRoutes(sessionRoutes)
		})

		contestHandler := handler.NewContestHandler(contestService, sess)
		v1.Route("/contest", contestHandler.RegisterRoutes)

		submissionHandler := handler.NewSubmissionHandler(submitService, sess)
		v1.Route("/submissions", submissionHandler.RegisterRoutes)

		leaderboardHandler := handler.NewLeaderboardHandler(sess)
		v1.Route("/leaderboard", leaderboardHandler.RegisterRoutes)
	})

	return r
}
