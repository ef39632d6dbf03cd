package mockstore

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/fixtures"
)

// Tests run with zero latency
func newTestStore() *Store {
	s := New(Options{})
	s.SeedFixtures()
	return s
}

func TestAdd_GrowsCollectionWithDistinctIDs(t *testing.T) {
	stores := newTestStore().Stores()
	ctx := context.Background()

	before, err := stores.Hostels.GetAll(ctx)
	require.NoError(t, err)

	first, err := stores.Hostels.Add(ctx, models.Hostel{Name: "Test Hall A"})
	require.NoError(t, err)
	second, err := stores.Hostels.Add(ctx, models.Hostel{Name: "Test Hall B"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ID, "hostels-"), first.ID)
	assert.True(t, strings.HasPrefix(second.ID, "hostels-"), second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	after, err := stores.Hostels.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+2)
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	stores := newTestStore().Stores()
	ctx := context.Background()

	before, err := stores.Events.GetAll(ctx)
	require.NoError(t, err)

	require.NoError(t, stores.Events.Remove(ctx, "events-does-not-exist"))

	after, err := stores.Events.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	stores := newTestStore().Stores()
	name := "Ghost"
	err := stores.Jobs.Update(context.Background(), "jobs-missing", models.JobPatch{Title: &name})
	require.NoError(t, err)
}

func TestGetAll_SnapshotIsolation(t *testing.T) {
	stores := newTestStore().Stores()
	ctx := context.Background()

	snap, err := stores.Hostels.GetAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, snap)

	// Mutating the snapshot must not leak into the store.
	snap[0].Name = "Clobbered"
	snap[0].Images = append(snap[0].Images, "/images/injected.jpg")

	fresh, err := stores.Hostels.GetByID(ctx, snap[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Clobbered", fresh.Name)
	assert.NotContains(t, fresh.Images, "/images/injected.jpg")
}

func TestSet_UpsertsByID(t *testing.T) {
	stores := newTestStore().Stores()
	ctx := context.Background()

	nominee := models.SpotlightNominee{ID: "spotlight-custom-1", Name: "Set Nominee"}
	require.NoError(t, stores.Spotlight.Set(ctx, nominee))

	got, err := stores.Spotlight.GetByID(ctx, nominee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Set Nominee", got.Name)

	nominee.Name = "Replaced Nominee"
	require.NoError(t, stores.Spotlight.Set(ctx, nominee))

	got, err = stores.Spotlight.GetByID(ctx, nominee.ID)
	require.NoError(t, err)
	assert.Equal(t, "Replaced Nominee", got.Name)
}

func TestVote_IncrementsAndReturnsTotal(t *testing.T) {
	stores := newTestStore().Stores()
	ctx := context.Background()

	seeded := fixtures.Spotlight()[0]
	votes, err := stores.Spotlight.Vote(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Votes+1, votes)

	votes, err = stores.Spotlight.Vote(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Votes+2, votes)

	_, err = stores.Spotlight.Vote(ctx, "spotlight-missing")
	require.Error(t, err)
}

func TestDelay_HonorsContextCancellation(t *testing.T) {
	s := New(Options{MinLatency: time.Second, MaxLatency: 2 * time.Second})
	s.SeedFixtures()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Stores().Hostels.GetAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
