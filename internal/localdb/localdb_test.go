package localdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/fixtures"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
)

func tempSlot(t *testing.T) *FileSlot {
	t.Helper()
	return NewFileSlot(filepath.Join(t.TempDir(), "snapshot.db.b64"))
}

func TestOpen_BootstrapsSchemaAndSeed(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, tempSlot(t))
	require.NoError(t, err)
	defer db.Close()

	stores := Stores(db)

	hostels, err := stores.Hostels.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, hostels, len(fixtures.Hostels()))

	news, err := stores.News.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, news, len(fixtures.News()))
}

func TestSnapshot_RoundTripSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	slot := tempSlot(t)

	db, err := Open(ctx, slot)
	require.NoError(t, err)

	stores := Stores(db)
	added, err := stores.Hostels.Add(ctx, models.Hostel{
		Name:      "Round Trip Hall",
		Images:    []string{"/images/a.jpg"},
		Amenities: []models.Amenity{{Name: "Wi-Fi", Icon: "wifi"}},
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// A fresh handle restores the mutated image instead of reseeding.
	db2, err := Open(ctx, slot)
	require.NoError(t, err)
	defer db2.Close()

	stores2 := Stores(db2)
	got, err := stores2.Hostels.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Round Trip Hall", got.Name)
	assert.Equal(t, []string{"/images/a.jpg"}, got.Images)
	require.Len(t, got.Amenities, 1)
	assert.Equal(t, "Wi-Fi", got.Amenities[0].Name)

	hostels, err := stores2.Hostels.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, hostels, len(fixtures.Hostels())+1, "reopen must not duplicate seed data")
}

func TestUpdate_MergesPatchAndPersists(t *testing.T) {
	ctx := context.Background()
	slot := tempSlot(t)

	db, err := Open(ctx, slot)
	require.NoError(t, err)

	stores := Stores(db)
	seeded := fixtures.Hostels()[0]
	rating := 4.9
	require.NoError(t, stores.Hostels.Update(ctx, seeded.ID, models.HostelPatch{Rating: &rating}))

	got, err := stores.Hostels.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.9, got.Rating)
	assert.Equal(t, seeded.Name, got.Name, "unpatched fields stay intact")
	require.NoError(t, db.Close())

	db2, err := Open(ctx, slot)
	require.NoError(t, err)
	defer db2.Close()

	got, err = Stores(db2).Hostels.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.9, got.Rating)
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, tempSlot(t))
	require.NoError(t, err)
	defer db.Close()

	name := "Ghost"
	require.NoError(t, Stores(db).Hostels.Update(ctx, "hostels-missing", models.HostelPatch{Name: &name}))
}

func TestVote_IncrementsAndMapsMissingNominee(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, tempSlot(t))
	require.NoError(t, err)
	defer db.Close()

	stores := Stores(db)
	seeded := fixtures.Spotlight()[0]

	votes, err := stores.Spotlight.Vote(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Votes+1, votes)

	_, err = stores.Spotlight.Vote(ctx, "spotlight-missing")
	assert.ErrorIs(t, err, apperrors.ErrNomineeNotFound)
}

func TestProvider_InitializesOnce(t *testing.T) {
	ctx := context.Background()
	p := NewProvider(tempSlot(t))

	db1, err := p.Get(ctx)
	require.NoError(t, err)
	db2, err := p.Get(ctx)
	require.NoError(t, err)
	assert.Same(t, db1, db2)
	db1.Close()
}

func TestFileSlot_MissingFileLoadsNil(t *testing.T) {
	slot := tempSlot(t)
	data, err := slot.Load()
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, slot.Store([]byte{0x01, 0x02}))
	data, err = slot.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, data)
}
