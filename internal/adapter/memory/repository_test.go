package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// fixture is a small populated graph shared by the repository tests:
// three movies with overlapping cast and genres, three users, two linked
// reviews.
type fixture struct {
	repo *Repository

	moana, guardians, split *domain.Movie
	martin, ian, daniel     *domain.User
	moanaReview             *domain.Review
	splitReview             *domain.Review
}

func newMovie(t *testing.T, title string, year, rank, runtime int, director string, actors, genres []string) *domain.Movie {
	t.Helper()
	m := domain.NewMovie(title, year)
	m.SetRank(rank)
	require.NoError(t, m.SetRuntimeMinutes(runtime))
	m.SetDirector(domain.NewDirector(director))
	for _, a := range actors {
		m.AddActor(domain.NewActor(a))
	}
	for _, g := range genres {
		m.AddGenre(domain.NewGenre(g))
	}
	return m
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	domain.ResetUserIDs()
	domain.ResetReviewIDs()
	domain.ResetWatchListIDs()

	f := &fixture{repo: New()}

	f.moana = newMovie(t, "Moana", 2016, 1, 107, "Ron Clements",
		[]string{"Auli'i Cravalho", "Dwayne Johnson"},
		[]string{"Animation", "Adventure"})
	f.guardians = newMovie(t, "Guardians of the Galaxy", 2014, 2, 121, "James Gunn",
		[]string{"Chris Pratt", "Zoe Saldana", "Dwayne Johnson"},
		[]string{"Action", "Adventure", "Sci-Fi"})
	f.split = newMovie(t, "Split", 2016, 3, 117, "M. Night Shyamalan",
		[]string{"James McAvoy", "Anya Taylor-Joy"},
		[]string{"Horror", "Thriller"})

	for _, m := range []*domain.Movie{f.moana, f.guardians, f.split} {
		require.NoError(t, f.repo.AddMovie(m))
		require.NoError(t, f.repo.AddDirector(m.Director()))
		for _, a := range m.Actors() {
			require.NoError(t, f.repo.AddActor(a))
		}
		for _, g := range m.Genres() {
			require.NoError(t, f.repo.AddGenre(g))
		}
	}

	f.martin = domain.NewUser("martin", "pw12345")
	f.ian = domain.NewUser("ian", "pw67890")
	f.daniel = domain.NewUser("daniel", "pw87465")
	for _, u := range []*domain.User{f.martin, f.ian, f.daniel} {
		require.NoError(t, f.repo.AddUser(u))
	}

	f.martin.WatchMovie(f.moana)
	f.martin.WatchMovie(f.split)
	f.ian.WatchMovie(f.moana)

	f.moanaReview = domain.NewReview(f.moana, "A wonderful adventure.", 9)
	require.True(t, f.martin.AddReview(f.moanaReview))
	require.NoError(t, f.repo.AddReview(f.moanaReview))

	f.splitReview = domain.NewReview(f.split, "Unsettling in the best way.", 8)
	require.True(t, f.martin.AddReview(f.splitReview))
	require.NoError(t, f.repo.AddReview(f.splitReview))

	return f
}
