package ingest

import "github.com/cinelog/cinelog-backend/internal/domain"

// ReadWatchlists reads the watchlist file. Each row fills the owning user's
// own watchlist rather than creating a detached one, so a user keeps a
// single list no matter how many rows mention them. Rows whose user id does
// not resolve are dropped.
func ReadWatchlists(path string, moviesByRank map[int]*domain.Movie, usersByID map[int]*domain.User) ([]*domain.WatchList, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	watchlists := make([]*domain.WatchList, 0, len(rows))
	seen := make(map[int]bool)

	for _, row := range rows {
		id, ok := optInt(row["User ID"])
		if !ok {
			continue
		}
		user, ok := usersByID[id]
		if !ok {
			continue
		}
		watchlist := user.Watchlist()
		for _, field := range splitList(row["Movie Ranks"]) {
			rank, ok := optInt(field)
			if !ok {
				continue
			}
			if movie, ok := moviesByRank[rank]; ok {
				watchlist.AddMovie(movie)
			}
		}
		if !seen[watchlist.ID()] {
			seen[watchlist.ID()] = true
			watchlists = append(watchlists, watchlist)
		}
	}
	return watchlists, nil
}
