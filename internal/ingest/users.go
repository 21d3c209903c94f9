package ingest

import "github.com/cinelog/cinelog-backend/internal/domain"

// ReadUsers reads the user file. Identifiers are assigned by construction
// order, so row order in the file is the id sequence. Watched-movie ranks
// that resolve against the catalogue are replayed through WatchMovie so
// watch history and accumulated watch time are rebuilt.
func ReadUsers(path string, moviesByRank map[int]*domain.Movie) ([]*domain.User, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	domain.ResetUserIDs()
	users := make([]*domain.User, 0, len(rows))
	seen := make(map[string]bool)

	for _, row := range rows {
		user := domain.NewUser(row["Name"], row["Password"])
		for _, field := range splitList(row["Watched Movie Ranks"]) {
			rank, ok := optInt(field)
			if !ok {
				continue
			}
			if movie, ok := moviesByRank[rank]; ok {
				user.WatchMovie(movie)
			}
		}
		if user.IsValid() && !seen[user.Username()] {
			seen[user.Username()] = true
			users = append(users, user)
		}
	}
	return users, nil
}
