package domain

var nextWatchListID = 1

// ResetWatchListIDs restarts watchlist id assignment from 1, for isolated
// test runs.
func ResetWatchListIDs() { nextWatchListID = 1 }

// WatchList is an ordered, duplicate-free sequence of movies a user intends
// to watch. Each watchlist is owned by exactly one user; the repository gate
// verifies that the watchlist being committed IS that user's own watchlist
// (pointer identity, not value equality).
type WatchList struct {
	id     int
	user   *User
	movies []*Movie
	cursor int
}

// NewWatchList creates an empty, unowned watchlist with a process-unique
// sequential id. User construction creates and claims one automatically;
// standalone watchlists exist only transiently and never pass the gate.
func NewWatchList() *WatchList {
	w := &WatchList{id: nextWatchListID}
	nextWatchListID++
	return w
}

// ID returns the process-unique watchlist id.
func (w *WatchList) ID() int { return w.id }

// User returns the owning user, nil while unowned.
func (w *WatchList) User() *User { return w.user }

// SetUser claims the watchlist for a user: first writer wins. Nil and
// invalid-identity users are no-ops.
func (w *WatchList) SetUser(user *User) bool {
	if user == nil || !user.IsValid() || w.user != nil {
		return false
	}
	w.user = user
	return true
}

// Movies returns the watchlist content in insertion order.
func (w *WatchList) Movies() []*Movie {
	out := make([]*Movie, len(w.movies))
	copy(out, w.movies)
	return out
}

// AddMovie appends a movie. Nil movies, movies without a title, and movies
// already present are no-ops.
func (w *WatchList) AddMovie(movie *Movie) bool {
	if movie == nil || movie.Title() == "" || w.Contains(movie) {
		return false
	}
	w.movies = append(w.movies, movie)
	return true
}

// RemoveMovie removes a movie; absent movies are a no-op.
func (w *WatchList) RemoveMovie(movie *Movie) bool {
	if movie == nil {
		return false
	}
	for i, m := range w.movies {
		if m.Equal(movie) {
			w.movies = append(w.movies[:i], w.movies[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether a movie with the same identity is present.
func (w *WatchList) Contains(movie *Movie) bool {
	if movie == nil {
		return false
	}
	for _, m := range w.movies {
		if m.Equal(movie) {
			return true
		}
	}
	return false
}

// Select returns the movie at the given position, nil when out of range.
func (w *WatchList) Select(index int) *Movie {
	if index < 0 || index >= len(w.movies) {
		return nil
	}
	return w.movies[index]
}

// Size returns the number of movies in the watchlist.
func (w *WatchList) Size() int { return len(w.movies) }

// First returns the first movie, nil when the watchlist is empty.
func (w *WatchList) First() *Movie {
	if len(w.movies) == 0 {
		return nil
	}
	return w.movies[0]
}

// Next advances the forward-only cursor and returns the next movie. It
// reports false once the cursor passes the end; ResetCursor rewinds it.
func (w *WatchList) Next() (*Movie, bool) {
	if w.cursor >= len(w.movies) {
		return nil, false
	}
	m := w.movies[w.cursor]
	w.cursor++
	return m, true
}

// ResetCursor rewinds the forward-only cursor to the start.
func (w *WatchList) ResetCursor() { w.cursor = 0 }
