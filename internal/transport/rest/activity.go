package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	watching "github.com/cinelog/cinelog-backend/internal/activity"
	"github.com/cinelog/cinelog-backend/internal/adapter/memory"
	"github.com/cinelog/cinelog-backend/internal/domain"
	"github.com/cinelog/cinelog-backend/internal/service/activity"
	"github.com/cinelog/cinelog-backend/pkg/ctxutil"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	Watchlist(ctx context.Context, userID int) (*domain.WatchList, error)
	AddToWatchlist(ctx context.Context, userID, rank int) (*domain.WatchList, error)
	RemoveFromWatchlist(ctx context.Context, userID, rank int) (*domain.WatchList, error)
	NextInWatchlist(ctx context.Context, userID int) (*domain.Movie, error)
	WatchMovie(ctx context.Context, userID, rank int) (*domain.User, error)
	WatchersOfMovie(ctx context.Context, rank int) ([]*domain.User, error)
	WriteReview(ctx context.Context, userID int, input activity.WriteReviewInput) (*domain.Review, error)
	RunSimulation(ctx context.Context, input activity.RunSimulationInput) (*watching.WatchingSimulation, error)
	GetSimulation(ctx context.Context, id int) (*watching.WatchingSimulation, error)
	ListSimulations(ctx context.Context) []*watching.WatchingSimulation
	SimulationsForMovie(ctx context.Context, rank int) ([]*watching.WatchingSimulation, error)
	SimulationsByUsers(ctx context.Context, userIDs []int) []*watching.WatchingSimulation
	SimulationsWithNoUsers(ctx context.Context) []*watching.WatchingSimulation
}

// ActivityHandler serves watchlist, watch, review, and simulation REST
// endpoints. All user-scoped routes require an authenticated context.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type watchlistResponse struct {
	ID     int             `json:"id"`
	User   string          `json:"user"`
	Movies []movieResponse `json:"movies"`
}

type simulationResponse struct {
	ID      int              `json:"id"`
	Movie   string           `json:"movie"`
	Users   []string         `json:"users"`
	Reviews []reviewResponse `json:"reviews"`
}

type writeReviewRequest struct {
	MovieRank int    `json:"movieRank"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
}

type runSimulationRequest struct {
	MovieRank int   `json:"movieRank"`
	UserIDs   []int `json:"userIds"`
	ReviewIDs []int `json:"reviewIds"`
}

// Watchlist handles GET /watchlist.
func (h *ActivityHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	watchlist, err := h.svc.Watchlist(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWatchlistResponse(watchlist))
}

// AddToWatchlist handles POST /watchlist/{rank}.
func (h *ActivityHandler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	rank, err := strconv.Atoi(r.PathValue("rank"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rank")
		return
	}

	watchlist, err := h.svc.AddToWatchlist(r.Context(), userID, rank)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWatchlistResponse(watchlist))
}

// RemoveFromWatchlist handles DELETE /watchlist/{rank}.
func (h *ActivityHandler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	rank, err := strconv.Atoi(r.PathValue("rank"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rank")
		return
	}

	watchlist, err := h.svc.RemoveFromWatchlist(r.Context(), userID, rank)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWatchlistResponse(watchlist))
}

// NextInWatchlist handles POST /watchlist/next.
func (h *ActivityHandler) NextInWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	movie, err := h.svc.NextInWatchlist(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMovieResponse(movie))
}

// WatchMovie handles POST /movies/{rank}/watch.
func (h *ActivityHandler) WatchMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	rank, err := strconv.Atoi(r.PathValue("rank"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rank")
		return
	}

	user, err := h.svc.WatchMovie(r.Context(), userID, rank)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// WatchersOfMovie handles GET /movies/{rank}/watchers.
func (h *ActivityHandler) WatchersOfMovie(w http.ResponseWriter, r *http.Request) {
	rank, err := strconv.Atoi(r.PathValue("rank"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rank")
		return
	}

	users, err := h.svc.WatchersOfMovie(r.Context(), rank)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

// WriteReview handles POST /reviews.
func (h *ActivityHandler) WriteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req writeReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.svc.WriteReview(r.Context(), userID, activity.WriteReviewInput{
		MovieRank: req.MovieRank,
		Text:      req.Text,
		Rating:    req.Rating,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewResponse(review))
}

// RunSimulation handles POST /simulations.
func (h *ActivityHandler) RunSimulation(w http.ResponseWriter, r *http.Request) {
	var req runSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sim, err := h.svc.RunSimulation(r.Context(), activity.RunSimulationInput{
		MovieRank: req.MovieRank,
		UserIDs:   req.UserIDs,
		ReviewIDs: req.ReviewIDs,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSimulationResponse(sim))
}

// ListSimulations handles GET /simulations. Optional filter query
// parameters are checked in order: movieRank, userIds, empty.
func (h *ActivityHandler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		sims []*watching.WatchingSimulation
		err  error
	)
	switch {
	case q.Get("movieRank") != "":
		rank, convErr := strconv.Atoi(q.Get("movieRank"))
		if convErr != nil {
			writeError(w, http.StatusBadRequest, "invalid movieRank parameter")
			return
		}
		sims, err = h.svc.SimulationsForMovie(ctx, rank)
	case q.Get("userIds") != "":
		ids, convErr := parseIntList(q.Get("userIds"))
		if convErr != nil {
			writeError(w, http.StatusBadRequest, "invalid userIds parameter")
			return
		}
		sims = h.svc.SimulationsByUsers(ctx, ids)
	case q.Get("empty") == "true":
		sims = h.svc.SimulationsWithNoUsers(ctx)
	default:
		sims = h.svc.ListSimulations(ctx)
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]simulationResponse, 0, len(sims))
	for _, sim := range sims {
		out = append(out, toSimulationResponse(sim))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetSimulation handles GET /simulations/{id}.
func (h *ActivityHandler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	sim, err := h.svc.GetSimulation(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSimulationResponse(sim))
}

func (h *ActivityHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, memory.ErrInvariant):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toWatchlistResponse(watchlist *domain.WatchList) watchlistResponse {
	resp := watchlistResponse{
		ID:     watchlist.ID(),
		Movies: toMovieResponses(watchlist.Movies()),
	}
	if watchlist.User() != nil {
		resp.User = watchlist.User().Username()
	}
	return resp
}

func toSimulationResponse(sim *watching.WatchingSimulation) simulationResponse {
	users := make([]string, 0, len(sim.Users()))
	for _, u := range sim.Users() {
		users = append(users, u.Username())
	}

	resp := simulationResponse{
		ID:      sim.ID(),
		Users:   users,
		Reviews: toReviewResponses(sim.Reviews()),
	}
	if sim.Movie() != nil {
		resp.Movie = sim.Movie().Title()
	}
	return resp
}
