package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vncsmyrnk/awards/internal/core/ports"

	_ "github.com/vncsmyrnk/awards/docs"
)

func NewHandler(
	catalogHandler *CatalogHandler,
	sessionHandler *SessionHandler,
	ballotHandler *BallotHandler,
	donationHandler *DonationHandler,
	adminHandler *AdminHandler,
	sessions ports.SessionService,
	metrics http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/categories/{id}/candidates", catalogHandler.ListCategoryCandidates)
		r.Get("/regions", catalogHandler.ListRegions)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.StartSession)
			r.Group(func(r chi.Router) {
				r.Use(RequireSession(sessions))
				r.Post("/login", sessionHandler.Login)
				r.Post("/logout", sessionHandler.Logout)
				r.Delete("/", sessionHandler.EndSession)
			})
		})

		r.Route("/ballot", func(r chi.Router) {
			r.Use(RequireSession(sessions))
			r.Get("/", ballotHandler.GetBallot)
			r.Put("/cursor", ballotHandler.SelectCategory)
			r.Post("/advance", ballotHandler.Advance)
			r.Post("/retreat", ballotHandler.Retreat)
			r.Put("/filter", ballotHandler.SetFilter)
			r.Get("/candidates", ballotHandler.ListCandidates)
			r.Post("/votes", ballotHandler.Vote)
		})

		r.Route("/donations", func(r chi.Router) {
			r.Post("/", donationHandler.Donate)
			r.Get("/pool", donationHandler.GetPool)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/dashboard", adminHandler.GetDashboard)
			r.Post("/voting-lock", adminHandler.ToggleVotingLock)
			r.Post("/results-visibility", adminHandler.ToggleResultsPublic)
			r.Get("/export", adminHandler.ExportResults)
		})
	})

	return r
}
