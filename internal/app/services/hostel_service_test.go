package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/campuslink/internal/app/models"
	"github.com/campuslink/campuslink/internal/mockstore"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
)

// memoryCache records every operation so tests can assert on cache traffic.
type memoryCache struct {
	entries map[string][]byte
	sets    int
	deletes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.deletes++
	return nil
}

func newTestHostelService(t *testing.T) (HostelService, *memoryCache) {
	t.Helper()
	store := mockstore.New(mockstore.Options{})
	store.SeedFixtures()
	c := newMemoryCache()
	return NewHostelService(store.Stores().Hostels, c), c
}

func TestGetHostelsPopulatesCache(t *testing.T) {
	svc, c := newTestHostelService(t)
	ctx := context.Background()

	first, err := svc.GetHostels(ctx, HostelFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, first)
	assert.Equal(t, 1, c.sets)

	// Second read must be served from the cache without another write.
	second, err := svc.GetHostels(ctx, HostelFilter{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.sets)
}

func TestCreateHostelInvalidatesCache(t *testing.T) {
	svc, c := newTestHostelService(t)
	ctx := context.Background()

	before, err := svc.GetHostels(ctx, HostelFilter{})
	require.NoError(t, err)

	created, err := svc.CreateHostel(ctx, models.Hostel{Name: "Unity Hall Annex", Rating: 4.1})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 1, c.deletes)

	after, err := svc.GetHostels(ctx, HostelFilter{})
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
}

func TestGetHostelsFilters(t *testing.T) {
	svc, _ := newTestHostelService(t)
	ctx := context.Background()

	all, err := svc.GetHostels(ctx, HostelFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	byUniversity, err := svc.GetHostels(ctx, HostelFilter{UniversityID: all[0].UniversityID})
	require.NoError(t, err)
	require.NotEmpty(t, byUniversity)
	for _, h := range byUniversity {
		assert.Equal(t, all[0].UniversityID, h.UniversityID)
	}

	recommended := true
	recommendedOnly, err := svc.GetHostels(ctx, HostelFilter{Recommended: &recommended})
	require.NoError(t, err)
	assert.Less(t, len(recommendedOnly), len(all))
	for _, h := range recommendedOnly {
		assert.True(t, h.Recommended)
	}
}

func TestCreateHostelValidation(t *testing.T) {
	svc, _ := newTestHostelService(t)
	ctx := context.Background()

	_, err := svc.CreateHostel(ctx, models.Hostel{Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateHostel(ctx, models.Hostel{Name: "Hilltop Hostel", Rating: 6})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestReplaceHostelRequiresID(t *testing.T) {
	svc, _ := newTestHostelService(t)

	err := svc.ReplaceHostel(context.Background(), models.Hostel{Name: "Hilltop Hostel"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteHostelUnknownIDIsNoop(t *testing.T) {
	svc, c := newTestHostelService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteHostel(ctx, "hostels-0"))
	assert.Equal(t, 1, c.deletes)
}
