package domain

var nextUserID = 1

// ResetUserIDs restarts user id assignment from 1. Used when loading a
// fresh users dataset and between isolated test runs.
func ResetUserIDs() { nextUserID = 1 }

// User is identified by its trimmed, case-folded username. Users with a
// valid identity additionally receive a monotonically assigned numeric id at
// construction, immutable thereafter. A user owns its reviews, its watched
// list with an accumulated watch-time counter, and exactly one watchlist.
type User struct {
	username string
	password string
	id       int

	watchedMovies      []*Movie
	reviews            []*Review
	timeWatchedMinutes int
	watchlist          *WatchList
}

// NewUser creates a User. An empty or all-whitespace username is the
// invalid-identity sentinel: no numeric id is assigned and the repository
// gate rejects the user. The password is stored as an opaque string; hashing
// belongs to the credential layer above.
func NewUser(username, password string) *User {
	u := &User{username: NormalizeUsername(username)}
	if NormalizeName(password) != "" {
		u.password = password
	}
	if u.username != "" {
		u.id = nextUserID
		nextUserID++
	}
	u.watchlist = NewWatchList()
	u.watchlist.SetUser(u)
	return u
}

// Username returns the normalized username, empty for an invalid identity.
func (u *User) Username() string { return u.username }

// Password returns the stored opaque password string.
func (u *User) Password() string { return u.password }

// ID returns the user's numeric id, 0 for an invalid identity.
func (u *User) ID() int { return u.id }

// IsValid reports whether the user has a usable identity.
func (u *User) IsValid() bool { return u.username != "" }

// Equal reports identity equality: same normalized username.
func (u *User) Equal(other *User) bool {
	return other != nil && u.username == other.username
}

// Less orders users by username; an invalid user sorts first.
func (u *User) Less(other *User) bool {
	if other == nil {
		return false
	}
	if u.username == "" {
		return other.username != ""
	}
	if other.username == "" {
		return false
	}
	return u.username < other.username
}

// WatchedMovies returns the watched movies in first-watch order, each
// present exactly once.
func (u *User) WatchedMovies() []*Movie {
	out := make([]*Movie, len(u.watchedMovies))
	copy(out, u.watchedMovies)
	return out
}

// HasWatched reports whether the movie is in the watched list.
func (u *User) HasWatched(movie *Movie) bool {
	if movie == nil {
		return false
	}
	for _, m := range u.watchedMovies {
		if m.Equal(movie) {
			return true
		}
	}
	return false
}

// TimeSpentWatchingMinutes returns the accumulated watch time.
func (u *User) TimeSpentWatchingMinutes() int { return u.timeWatchedMinutes }

// WatchMovie records a watch event. The movie is added to the watched list
// at most once, but its runtime is accumulated on every call: watching the
// same movie twice counts its minutes twice. Movies without a title or a
// runtime are ignored.
func (u *User) WatchMovie(movie *Movie) bool {
	if movie == nil || movie.Title() == "" || movie.RuntimeMinutes() <= 0 {
		return false
	}
	if !u.HasWatched(movie) {
		u.watchedMovies = append(u.watchedMovies, movie)
	}
	u.timeWatchedMinutes += movie.RuntimeMinutes()
	return true
}

// RemoveWatchedMovie removes the movie from the watched list and subtracts
// one viewing's runtime from the counter if it would not go negative.
// Absent movies are a no-op.
func (u *User) RemoveWatchedMovie(movie *Movie) bool {
	if movie == nil {
		return false
	}
	for i, m := range u.watchedMovies {
		if m.Equal(movie) {
			u.watchedMovies = append(u.watchedMovies[:i], u.watchedMovies[i+1:]...)
			if u.timeWatchedMinutes >= movie.RuntimeMinutes() {
				u.timeWatchedMinutes -= movie.RuntimeMinutes()
			}
			return true
		}
	}
	return false
}

// Reviews returns the user's reviews in insertion order.
func (u *User) Reviews() []*Review {
	out := make([]*Review, len(u.reviews))
	copy(out, u.reviews)
	return out
}

// HasReview reports whether this exact review object belongs to the user.
func (u *User) HasReview(review *Review) bool {
	for _, r := range u.reviews {
		if r == review {
			return true
		}
	}
	return false
}

// AddReview claims an unowned review and links it both ways: the review's
// user is set to this user and the review is forwarded to its movie. The
// review must reference a movie, carry a rating, and not yet belong to any
// user; anything else, and duplicates, are no-ops.
func (u *User) AddReview(review *Review) bool {
	if review == nil || u.HasReview(review) {
		return false
	}
	if review.Movie() == nil || !review.HasRating() || review.User() != nil {
		return false
	}
	if !review.SetUser(u) {
		return false
	}
	u.reviews = append(u.reviews, review)
	review.Movie().AddReview(review)
	return true
}

// RemoveReview removes the review and cascades the removal to its movie so
// both sides stay consistent. Absent reviews are a no-op.
func (u *User) RemoveReview(review *Review) bool {
	for i, r := range u.reviews {
		if r == review {
			u.reviews = append(u.reviews[:i], u.reviews[i+1:]...)
			if review.Movie() != nil {
				review.Movie().RemoveReview(review)
			}
			return true
		}
	}
	return false
}

// Watchlist returns the user's single owned watchlist, never nil.
func (u *User) Watchlist() *WatchList { return u.watchlist }

func (u *User) String() string { return "<User " + u.username + ">" }
