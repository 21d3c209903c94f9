package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cinelog/cinelog-backend/internal/adapter/memory"
	jwtauth "github.com/cinelog/cinelog-backend/internal/auth"
	"github.com/cinelog/cinelog-backend/internal/config"
	"github.com/cinelog/cinelog-backend/internal/domain"
	activitysvc "github.com/cinelog/cinelog-backend/internal/service/activity"
	authsvc "github.com/cinelog/cinelog-backend/internal/service/auth"
	catalogsvc "github.com/cinelog/cinelog-backend/internal/service/catalog"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	domain.ResetUserIDs()
	domain.ResetWatchListIDs()
	domain.ResetReviewIDs()

	repo := memory.New()

	moana := domain.NewMovie("Moana", 2016)
	moana.SetRank(1)
	if err := moana.SetRuntimeMinutes(107); err != nil {
		t.Fatalf("set runtime: %v", err)
	}
	if err := repo.AddMovie(moana); err != nil {
		t.Fatalf("add movie: %v", err)
	}

	split := domain.NewMovie("Split", 2016)
	split.SetRank(2)
	if err := split.SetRuntimeMinutes(117); err != nil {
		t.Fatalf("set runtime: %v", err)
	}
	if err := repo.AddMovie(split); err != nil {
		t.Fatalf("add movie: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwt := jwtauth.NewJWTManager("router-test-secret-at-least-32-chars!!", "cinelog-test", 15*time.Minute)
	var mu sync.RWMutex

	authService := authsvc.NewService(logger, repo, jwt, &mu)
	catalogService := catalogsvc.NewService(logger, repo, &mu)
	activityService := activitysvc.NewService(logger, repo, &mu)

	return NewRouter(Handlers{
		Auth:     NewAuthHandler(authService, logger),
		Catalog:  NewCatalogHandler(catalogService, logger),
		Activity: NewActivityHandler(activityService, logger),
		Health:   NewHealthHandler(catalogService, "test"),
	}, authService, config.CORSConfig{AllowedOrigins: "*"}, logger)
}

func doJSON(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/auth/register", "",
		`{"username":"martin","password":"secret1234"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected access token")
	}
	return resp.AccessToken
}

func TestRouter_RegisterLoginMe(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router)

	rec := doJSON(t, router, http.MethodPost, "/auth/login", "",
		`{"username":"Martin","password":"secret1234"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	rec = doJSON(t, router, http.MethodGet, "/auth/me", resp.AccessToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", rec.Code)
	}
	var me userResponse
	if err := json.NewDecoder(rec.Body).Decode(&me); err != nil {
		t.Fatalf("decode me response: %v", err)
	}
	if me.Username != "martin" {
		t.Errorf("expected username martin, got %q", me.Username)
	}
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router)

	rec := doJSON(t, router, http.MethodPost, "/auth/login", "",
		`{"username":"martin","password":"wrong-password"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_ListAndGetMovies(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/movies", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var movies []movieResponse
	if err := json.NewDecoder(rec.Body).Decode(&movies); err != nil {
		t.Fatalf("decode movies: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}

	rec = doJSON(t, router, http.MethodGet, "/movies/2", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var movie movieResponse
	if err := json.NewDecoder(rec.Body).Decode(&movie); err != nil {
		t.Fatalf("decode movie: %v", err)
	}
	if movie.Title != "Split" {
		t.Errorf("expected Split, got %q", movie.Title)
	}

	rec = doJSON(t, router, http.MethodGet, "/movies/99", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_WatchlistRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/watchlist", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_WatchlistAndReviewFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router)

	rec := doJSON(t, router, http.MethodPost, "/watchlist/1", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("add to watchlist: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var watchlist watchlistResponse
	if err := json.NewDecoder(rec.Body).Decode(&watchlist); err != nil {
		t.Fatalf("decode watchlist: %v", err)
	}
	if len(watchlist.Movies) != 1 || watchlist.Movies[0].Title != "Moana" {
		t.Fatalf("unexpected watchlist contents: %+v", watchlist.Movies)
	}

	rec = doJSON(t, router, http.MethodPost, "/movies/1/watch", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("watch: expected 200, got %d", rec.Code)
	}
	var user userResponse
	if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.TimeWatchedMinutes != 107 {
		t.Errorf("expected 107 minutes watched, got %d", user.TimeWatchedMinutes)
	}

	rec = doJSON(t, router, http.MethodPost, "/reviews", token,
		`{"movieRank":1,"text":"Loved it","rating":9}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("review: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/movies/1/reviews", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("movie reviews: expected 200, got %d", rec.Code)
	}
	var reviews []reviewResponse
	if err := json.NewDecoder(rec.Body).Decode(&reviews); err != nil {
		t.Fatalf("decode reviews: %v", err)
	}
	if len(reviews) != 1 || reviews[0].User != "martin" || reviews[0].Rating != 9 {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
}

func TestRouter_SimulationFlow(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router)

	rec := doJSON(t, router, http.MethodPost, "/simulations", "",
		`{"movieRank":2,"userIds":[1]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("run simulation: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var sim simulationResponse
	if err := json.NewDecoder(rec.Body).Decode(&sim); err != nil {
		t.Fatalf("decode simulation: %v", err)
	}
	if sim.Movie != "Split" || len(sim.Users) != 1 {
		t.Fatalf("unexpected simulation: %+v", sim)
	}

	rec = doJSON(t, router, http.MethodGet, "/simulations?userIds=1", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list simulations: expected 200, got %d", rec.Code)
	}
	var sims []simulationResponse
	if err := json.NewDecoder(rec.Body).Decode(&sims); err != nil {
		t.Fatalf("decode simulations: %v", err)
	}
	if len(sims) != 1 || sims[0].ID != sim.ID {
		t.Fatalf("unexpected simulations: %+v", sims)
	}
}

func TestRouter_InvalidBearerToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/movies", "garbage-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
