package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-backend/internal/activity"
	"github.com/cinelog/cinelog-backend/internal/domain"
)

// newSim builds a committed-ready simulation on the fixture: moana, watched
// by martin, with his stored review attached.
func newSim(t *testing.T, f *fixture) *activity.WatchingSimulation {
	t.Helper()
	sim := activity.NewWatchingSimulation(f.moana)
	require.True(t, sim.AddUser(f.martin))
	require.True(t, sim.AddUserReview(f.martin, f.moanaReview))
	return sim
}

func TestAddWatchingSim(t *testing.T) {
	activity.ResetSimulationIDs()
	f := newFixture(t)

	sim := newSim(t, f)
	require.NoError(t, f.repo.AddWatchingSim(sim))
	assert.Same(t, sim, f.repo.GetWatchingSim(sim.ID()))

	// Committing it again is a silent no-op.
	require.NoError(t, f.repo.AddWatchingSim(sim))
	assert.Len(t, f.repo.WatchingSims(), 1)

	assert.ErrorIs(t, f.repo.AddWatchingSim(nil), ErrInvariant)
}

func TestAddWatchingSimRequiresCommittedMovie(t *testing.T) {
	activity.ResetSimulationIDs()
	f := newFixture(t)

	assert.ErrorIs(t, f.repo.AddWatchingSim(activity.NewWatchingSimulation(nil)), ErrInvariant)

	stranger := domain.NewMovie("Uncommitted", 2020)
	assert.ErrorIs(t, f.repo.AddWatchingSim(activity.NewWatchingSimulation(stranger)), ErrInvariant)
}

func TestAddWatchingSimRequiresCommittedUsers(t *testing.T) {
	activity.ResetSimulationIDs()
	f := newFixture(t)

	sim := activity.NewWatchingSimulation(f.moana)
	outsider := domain.NewUser("outsider", "pw99999")
	require.True(t, sim.AddUser(outsider))

	assert.ErrorIs(t, f.repo.AddWatchingSim(sim), ErrInvariant)

	require.NoError(t, f.repo.AddUser(outsider))
	require.NoError(t, f.repo.AddWatchingSim(sim))
}

func TestAddWatchingSimRequiresStoredReviewObjects(t *testing.T) {
	activity.ResetSimulationIDs()
	f := newFixture(t)

	sim := activity.NewWatchingSimulation(f.moana)
	require.True(t, sim.AddUser(f.ian))
	sim.WatchMovie()

	// A review that never went through the repository gate disqualifies
	// the simulation.
	fresh := domain.NewReview(f.moana, "not committed", 6)
	require.True(t, sim.AddUserReview(f.ian, fresh))
	assert.ErrorIs(t, f.repo.AddWatchingSim(sim), ErrInvariant)

	require.NoError(t, f.repo.AddReview(fresh))
	require.NoError(t, f.repo.AddWatchingSim(sim))
}

func TestGetWatchingSimsForMovie(t *testing.T) {
	activity.ResetSimulationIDs()
	f := newFixture(t)

	sim := newSim(t, f)
	require.NoError(t, f.repo.AddWatchingSim(sim))

	sims := f.repo.GetWatchingSimsForMovie(domain.NewMovie("Moana", 2016))
	assert.Equal(t, []*activity.WatchingSimulation{sim}, sims)
	assert.Empty(t, f.repo.GetWatchingSimsForMovie(f.split))
	assert.Empty(t, f.repo.GetWatchingSimsForMovie(nil))
}

func TestGetWatchingSimsByUsers(t *testing.T) {
	activity.ResetSimulationIDs()
	f := newFixture(t)

	together := activity.NewWatchingSimulation(f.moana)
	require.True(t, together.AddUser(f.martin))
	require.True(t, together.AddUser(f.ian))
	require.NoError(t, f.repo.AddWatchingSim(together))

	alone := activity.NewWatchingSimulation(f.split)
	require.True(t, alone.AddUser(f.martin))
	require.NoError(t, f.repo.AddWatchingSim(alone))

	sims := f.repo.GetWatchingSimsByUsers([]*domain.User{f.martin})
	assert.Equal(t, []*activity.WatchingSimulation{together, alone}, sims)

	sims = f.repo.GetWatchingSimsByUsers([]*domain.User{f.martin, f.ian})
	assert.Equal(t, []*activity.WatchingSimulation{together}, sims)

	// An unknown user is dropped from the criteria rather than making the
	// conjunction unsatisfiable.
	sims = f.repo.GetWatchingSimsByUsers([]*domain.User{f.ian, domain.NewUser("ghost", "pw")})
	assert.Equal(t, []*activity.WatchingSimulation{together}, sims)

	assert.Empty(t, f.repo.GetWatchingSimsByUsers(nil))
	assert.Empty(t, f.repo.GetWatchingSimsByUsers([]*domain.User{domain.NewUser("ghost", "pw")}))
}

func TestGetWatchingSimsWithNoUsers(t *testing.T) {
	activity.ResetSimulationIDs()
	f := newFixture(t)

	empty := activity.NewWatchingSimulation(f.moana)
	require.NoError(t, f.repo.AddWatchingSim(empty))

	populated := activity.NewWatchingSimulation(f.split)
	require.True(t, populated.AddUser(f.martin))
	require.NoError(t, f.repo.AddWatchingSim(populated))

	sims := f.repo.GetWatchingSimsWithNoUsers()
	assert.Equal(t, []*activity.WatchingSimulation{empty}, sims)
}
