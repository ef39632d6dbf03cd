package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/campuslink/internal/pkg/apperrors"
)

func TestCatalog_ProvidersForKnownPair(t *testing.T) {
	svc := NewCatalogService()
	ctx := context.Background()

	providers, err := svc.GetProviders(ctx, "uni-knust", "food")
	require.NoError(t, err)
	assert.NotEmpty(t, providers)
}

func TestCatalog_ProvidersEmptyButValidPair(t *testing.T) {
	svc := NewCatalogService()

	// Valid university and service with no catalog entries yields an
	// empty list, not an error.
	providers, err := svc.GetProviders(context.Background(), "uni-ashesi", "tutoring")
	require.NoError(t, err)
	assert.Empty(t, providers)
	assert.NotNil(t, providers)
}

func TestCatalog_UnknownUniversityOrService(t *testing.T) {
	svc := NewCatalogService()
	ctx := context.Background()

	_, err := svc.GetProviders(ctx, "uni-nowhere", "food")
	assert.ErrorIs(t, err, apperrors.ErrUniversityNotFound)

	_, err = svc.GetProviders(ctx, "uni-knust", "skydiving")
	assert.ErrorIs(t, err, apperrors.ErrServiceNotFound)
}
