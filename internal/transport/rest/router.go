// Package rest exposes the catalogue and activity services over JSON HTTP.
package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cinelog/cinelog-backend/internal/config"
	"github.com/cinelog/cinelog-backend/internal/domain"
	"github.com/cinelog/cinelog-backend/internal/transport/middleware"
)

// TokenValidator authenticates bearer tokens for the middleware chain.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

// Handlers groups the REST handlers wired into the router.
type Handlers struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Activity *ActivityHandler
	Health   *HealthHandler
}

// NewRouter builds the HTTP routing table and wraps it in the middleware
// chain: request id, logging, recovery, CORS, then token auth.
func NewRouter(h Handlers, validator TokenValidator, corsCfg config.CORSConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.HandleFunc("GET /movies", h.Catalog.ListMovies)
	mux.HandleFunc("GET /movies/{rank}", h.Catalog.GetMovie)
	mux.HandleFunc("GET /movies/{rank}/reviews", h.Catalog.MovieReviews)
	mux.HandleFunc("GET /genres", h.Catalog.ListGenres)
	mux.HandleFunc("GET /actors", h.Catalog.ActorsByColleagues)
	mux.HandleFunc("GET /stats/most-common/{kind}", h.Catalog.MostCommon)

	mux.HandleFunc("GET /watchlist", h.Activity.Watchlist)
	mux.HandleFunc("POST /watchlist/next", h.Activity.NextInWatchlist)
	mux.HandleFunc("POST /watchlist/{rank}", h.Activity.AddToWatchlist)
	mux.HandleFunc("DELETE /watchlist/{rank}", h.Activity.RemoveFromWatchlist)
	mux.HandleFunc("POST /movies/{rank}/watch", h.Activity.WatchMovie)
	mux.HandleFunc("GET /movies/{rank}/watchers", h.Activity.WatchersOfMovie)
	mux.HandleFunc("POST /reviews", h.Activity.WriteReview)
	mux.HandleFunc("POST /simulations", h.Activity.RunSimulation)
	mux.HandleFunc("GET /simulations", h.Activity.ListSimulations)
	mux.HandleFunc("GET /simulations/{id}", h.Activity.GetSimulation)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsCfg),
		middleware.Auth(validator),
	)
	return chain(mux)
}
