package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	ListMovies(ctx context.Context) []*domain.Movie
	GetMovieByRank(ctx context.Context, rank int) (*domain.Movie, error)
	GetMoviesByRank(ctx context.Context, ranks []int) []*domain.Movie
	FilterByYear(ctx context.Context, year int) []*domain.Movie
	FilterByDirector(ctx context.Context, fullName string) []*domain.Movie
	FilterByActors(ctx context.Context, fullNames []string) []*domain.Movie
	FilterByGenres(ctx context.Context, names []string) []*domain.Movie
	ActorsByColleagues(ctx context.Context, fullNames []string) []*domain.Actor
	MovieReviews(ctx context.Context, title string, releaseYear int) ([]*domain.Review, error)
	ListGenres(ctx context.Context) []*domain.Genre
	MostCommonActors(ctx context.Context, quantity int) ([]*domain.Actor, error)
	MostCommonDirectors(ctx context.Context, quantity int) ([]*domain.Director, error)
	MostCommonGenres(ctx context.Context, quantity int) ([]*domain.Genre, error)
}

// CatalogHandler serves catalogue browsing REST endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type movieResponse struct {
	Rank            int      `json:"rank,omitempty"`
	Title           string   `json:"title"`
	ReleaseYear     int      `json:"releaseYear"`
	Description     string   `json:"description,omitempty"`
	Director        string   `json:"director,omitempty"`
	Actors          []string `json:"actors"`
	Genres          []string `json:"genres"`
	RuntimeMinutes  int      `json:"runtimeMinutes,omitempty"`
	ExternalRating  *float64 `json:"externalRating,omitempty"`
	RatingVotes     *int     `json:"ratingVotes,omitempty"`
	RevenueMillions *float64 `json:"revenueMillions,omitempty"`
	Metascore       *int     `json:"metascore,omitempty"`
}

type reviewResponse struct {
	ID     int    `json:"id"`
	Movie  string `json:"movie"`
	User   string `json:"user"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// ListMovies handles GET /movies. At most one filter query parameter is
// honored, checked in order: ranks, year, director, actors, genres.
func (h *CatalogHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var movies []*domain.Movie
	switch {
	case q.Get("ranks") != "":
		ranks, err := parseIntList(q.Get("ranks"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid ranks parameter")
			return
		}
		movies = h.svc.GetMoviesByRank(ctx, ranks)
	case q.Get("year") != "":
		year, err := strconv.Atoi(q.Get("year"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year parameter")
			return
		}
		movies = h.svc.FilterByYear(ctx, year)
	case q.Get("director") != "":
		movies = h.svc.FilterByDirector(ctx, q.Get("director"))
	case q.Get("actors") != "":
		movies = h.svc.FilterByActors(ctx, splitNames(q.Get("actors")))
	case q.Get("genres") != "":
		movies = h.svc.FilterByGenres(ctx, splitNames(q.Get("genres")))
	default:
		movies = h.svc.ListMovies(ctx)
	}

	writeJSON(w, http.StatusOK, toMovieResponses(movies))
}

// GetMovie handles GET /movies/{rank}.
func (h *CatalogHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rank, err := strconv.Atoi(r.PathValue("rank"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rank")
		return
	}

	movie, err := h.svc.GetMovieByRank(r.Context(), rank)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMovieResponse(movie))
}

// MovieReviews handles GET /movies/{rank}/reviews.
func (h *CatalogHandler) MovieReviews(w http.ResponseWriter, r *http.Request) {
	rank, err := strconv.Atoi(r.PathValue("rank"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rank")
		return
	}

	movie, err := h.svc.GetMovieByRank(r.Context(), rank)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	reviews, err := h.svc.MovieReviews(r.Context(), movie.Title(), movie.ReleaseYear())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

// ListGenres handles GET /genres.
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres := h.svc.ListGenres(r.Context())
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name())
	}
	writeJSON(w, http.StatusOK, names)
}

// ActorsByColleagues handles GET /actors?colleagues=a,b.
func (h *CatalogHandler) ActorsByColleagues(w http.ResponseWriter, r *http.Request) {
	names := splitNames(r.URL.Query().Get("colleagues"))
	if len(names) == 0 {
		writeError(w, http.StatusBadRequest, "colleagues parameter required")
		return
	}

	actors := h.svc.ActorsByColleagues(r.Context(), names)
	out := make([]string, 0, len(actors))
	for _, a := range actors {
		out = append(out, a.FullName())
	}
	writeJSON(w, http.StatusOK, out)
}

// MostCommon handles GET /stats/most-common/{kind}?quantity=n for kind one
// of actors, directors, genres.
func (h *CatalogHandler) MostCommon(w http.ResponseWriter, r *http.Request) {
	quantity := 10
	if raw := r.URL.Query().Get("quantity"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid quantity parameter")
			return
		}
		quantity = n
	}

	ctx := r.Context()
	var (
		names []string
		err   error
	)
	switch kind := r.PathValue("kind"); kind {
	case "actors":
		var actors []*domain.Actor
		if actors, err = h.svc.MostCommonActors(ctx, quantity); err == nil {
			for _, a := range actors {
				names = append(names, a.FullName())
			}
		}
	case "directors":
		var directors []*domain.Director
		if directors, err = h.svc.MostCommonDirectors(ctx, quantity); err == nil {
			for _, d := range directors {
				names = append(names, d.FullName())
			}
		}
	case "genres":
		var genres []*domain.Genre
		if genres, err = h.svc.MostCommonGenres(ctx, quantity); err == nil {
			for _, g := range genres {
				names = append(names, g.Name())
			}
		}
	default:
		writeError(w, http.StatusNotFound, "unknown statistic")
		return
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	writeJSON(w, http.StatusOK, names)
}

func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseIntList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func splitNames(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toMovieResponse(m *domain.Movie) movieResponse {
	actors := make([]string, 0, len(m.Actors()))
	for _, a := range m.Actors() {
		actors = append(actors, a.FullName())
	}
	genres := make([]string, 0, len(m.Genres()))
	for _, g := range m.Genres() {
		genres = append(genres, g.Name())
	}

	resp := movieResponse{
		Rank:           m.Rank(),
		Title:          m.Title(),
		ReleaseYear:    m.ReleaseYear(),
		Description:    m.Description(),
		Actors:         actors,
		Genres:         genres,
		RuntimeMinutes: m.RuntimeMinutes(),
	}
	if m.Director().IsValid() {
		resp.Director = m.Director().FullName()
	}
	if rating, ok := m.ExternalRating(); ok {
		resp.ExternalRating = &rating
	}
	if votes, ok := m.RatingVotes(); ok {
		resp.RatingVotes = &votes
	}
	if revenue, ok := m.RevenueMillions(); ok {
		resp.RevenueMillions = &revenue
	}
	if score, ok := m.Metascore(); ok {
		resp.Metascore = &score
	}
	return resp
}

func toMovieResponses(movies []*domain.Movie) []movieResponse {
	out := make([]movieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(m))
	}
	return out
}

func toReviewResponse(review *domain.Review) reviewResponse {
	resp := reviewResponse{
		ID:     review.ID(),
		Text:   review.Text(),
		Rating: review.Rating(),
	}
	if review.Movie() != nil {
		resp.Movie = review.Movie().Title()
	}
	if review.User() != nil {
		resp.User = review.User().Username()
	}
	return resp
}

func toReviewResponses(reviews []*domain.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	return out
}
