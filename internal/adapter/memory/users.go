package memory

import (
	"github.com/cinelog/cinelog-backend/internal/domain"
)

// AddUser commits a user. Users without a valid username are rejected; a
// user with the same username already present is a silent no-op.
func (r *Repository) AddUser(user *domain.User) error {
	if user == nil || !user.IsValid() {
		return invariant("user has no valid username")
	}
	if _, ok := r.usersByName[user.Username()]; ok {
		return nil
	}
	r.users = append(r.users, user)
	r.usersByName[user.Username()] = user
	r.usersByID[user.ID()] = user
	return nil
}

// GetUser returns the user with the given username, nil when absent. The
// lookup folds case the same way User construction does.
func (r *Repository) GetUser(username string) *domain.User {
	return r.usersByName[domain.NormalizeUsername(username)]
}

// GetUserByID returns the user with the given numeric id, nil when absent.
func (r *Repository) GetUserByID(id int) *domain.User {
	return r.usersByID[id]
}

// Users returns all users in insertion order.
func (r *Repository) Users() []*domain.User {
	out := make([]*domain.User, len(r.users))
	copy(out, r.users)
	return out
}

// GetUsersWatchedMovie returns the users whose watched list contains the
// given movie.
func (r *Repository) GetUsersWatchedMovie(movie *domain.Movie) []*domain.User {
	result := []*domain.User{}
	if movie == nil {
		return result
	}
	for _, u := range r.users {
		if u.HasWatched(movie) {
			result = append(result, u)
		}
	}
	return result
}

// AddWatchlist commits a watchlist. The gate requires singleton ownership:
// the watchlist must have an owning user and must be that user's own
// watchlist (pointer identity, not value equality), and every movie it
// holds must already be in the repository. A watchlist with the same id
// already present is a silent no-op.
func (r *Repository) AddWatchlist(watchlist *domain.WatchList) error {
	if watchlist == nil {
		return invariant("watchlist is nil")
	}
	owner := watchlist.User()
	if owner == nil || owner.Watchlist() != watchlist {
		return invariant("watchlist is not owned by a user")
	}
	for _, m := range watchlist.Movies() {
		if _, ok := r.moviesByKey[m.Key()]; !ok {
			return invariant("watchlist movie %q is not in the repository", m.Title())
		}
	}
	if _, ok := r.watchlistsByID[watchlist.ID()]; ok {
		return nil
	}
	r.watchlists = append(r.watchlists, watchlist)
	r.watchlistsByID[watchlist.ID()] = watchlist
	r.watchlistsByUser[owner.ID()] = watchlist
	return nil
}

// GetWatchlist returns the watchlist with the given id, nil when absent.
func (r *Repository) GetWatchlist(id int) *domain.WatchList {
	return r.watchlistsByID[id]
}

// GetWatchlistByUserID returns the watchlist owned by the user with the
// given numeric id, nil when absent.
func (r *Repository) GetWatchlistByUserID(userID int) *domain.WatchList {
	return r.watchlistsByUser[userID]
}
