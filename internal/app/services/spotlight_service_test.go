package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/campuslink/internal/app/models/dto"
	"github.com/campuslink/campuslink/internal/mockstore"
	"github.com/campuslink/campuslink/internal/pkg/apperrors"
	"github.com/campuslink/campuslink/internal/pkg/imageutil"
	"github.com/campuslink/campuslink/internal/pkg/objectstore"
)

type discardBackend struct{}

func (discardBackend) Put(_ context.Context, _, _ string, r io.Reader, _ int64, _ objectstore.PutOptions) error {
	_, err := io.Copy(io.Discard, r)
	return err
}

func (discardBackend) PublicURL(bucket, objectPath string) (string, error) {
	return "https://cdn.test/" + bucket + "/" + objectPath, nil
}

func (discardBackend) Remove(context.Context, string, string) error { return nil }

func newTestSpotlightService(t *testing.T) SpotlightService {
	t.Helper()
	store := mockstore.New(mockstore.Options{})
	store.SeedFixtures()
	uploads := objectstore.NewService(discardBackend{},
		objectstore.Buckets{Uploads: "uploads", News: "news"}, imageutil.Options{})
	return NewSpotlightService(store.Stores().Spotlight, uploads)
}

func TestNominate_ComposesBioAndInterests(t *testing.T) {
	svc := newTestSpotlightService(t)

	nominee, err := svc.Nominate(context.Background(), dto.NominationRequest{
		Name:         "  Abena Osei ",
		Major:        "Biochemistry",
		About:        "Runs a peer mentoring circle.",
		Activities:   "science club, volunteering , , campus radio",
		UniversityID: "uni-knust",
		Gender:       "female",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Abena Osei", nominee.Name)
	assert.Equal(t, "Runs a peer mentoring circle.\n\nscience club, volunteering , , campus radio", nominee.Bio)
	assert.Equal(t, []string{"science club", "volunteering", "campus radio"}, nominee.Interests)
	assert.Equal(t, 0, nominee.Votes)
	assert.NotEmpty(t, nominee.ID)
}

func TestNominate_EmptyAboutUsesActivitiesAlone(t *testing.T) {
	svc := newTestSpotlightService(t)

	nominee, err := svc.Nominate(context.Background(), dto.NominationRequest{
		Name:       "Kojo",
		Major:      "Law",
		Activities: "moot court",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "moot court", nominee.Bio)
}

func TestNominate_RejectsMissingFields(t *testing.T) {
	svc := newTestSpotlightService(t)

	_, err := svc.Nominate(context.Background(), dto.NominationRequest{Major: "Law"}, nil)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	_, err = svc.Nominate(context.Background(), dto.NominationRequest{Name: "Kojo"}, nil)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestVote_RoundTrip(t *testing.T) {
	svc := newTestSpotlightService(t)

	nominee, err := svc.Nominate(context.Background(), dto.NominationRequest{
		Name:  "Kojo",
		Major: "Law",
	}, nil)
	require.NoError(t, err)

	votes, err := svc.Vote(context.Background(), nominee.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, votes)

	_, err = svc.Vote(context.Background(), "spotlight-missing")
	assert.ErrorIs(t, err, apperrors.ErrNomineeNotFound)
}
