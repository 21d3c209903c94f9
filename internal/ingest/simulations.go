package ingest

import (
	"github.com/cinelog/cinelog-backend/internal/activity"
	"github.com/cinelog/cinelog-backend/internal/domain"
)

// ReadSimulations reads the watching-simulation file. Each row names one
// movie, the users that watched it together and the reviews they left. The
// watch itself is replayed once per row before any review is attached, so
// the review gate's has-watched requirement can pass. Rows whose movie does
// not resolve are dropped.
func ReadSimulations(
	path string,
	moviesByRank map[int]*domain.Movie,
	usersByID map[int]*domain.User,
	reviewsByID map[int]*domain.Review,
) ([]*activity.WatchingSimulation, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	activity.ResetSimulationIDs()
	sims := make([]*activity.WatchingSimulation, 0, len(rows))

	for _, row := range rows {
		rank, ok := optInt(row["Movie Rank"])
		if !ok {
			continue
		}
		movie, ok := moviesByRank[rank]
		if !ok {
			continue
		}
		sim := activity.NewWatchingSimulation(movie)

		for _, field := range splitList(row["User IDs"]) {
			id, ok := optInt(field)
			if !ok {
				continue
			}
			if user, ok := usersByID[id]; ok {
				sim.AddUser(user)
			}
		}

		watched := false
		for _, field := range splitList(row["Review IDs"]) {
			id, ok := optInt(field)
			if !ok {
				continue
			}
			if !watched {
				sim.WatchMovie()
				watched = true
			}
			review, ok := reviewsByID[id]
			if !ok {
				continue
			}
			sim.AddUserReview(review.User(), review)
		}

		sims = append(sims, sim)
	}
	return sims, nil
}
