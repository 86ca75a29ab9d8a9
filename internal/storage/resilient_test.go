package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orevault/orevault/internal/domain"
)

var errBackend = errors.New("backend down")

// failingStore errors on every operation
type failingStore struct{}

func (failingStore) IsRewardsEnabled(context.Context, uuid.UUID) (bool, error) {
	return false, errBackend
}

func (failingStore) SetRewardsEnabled(context.Context, uuid.UUID, bool) error {
	return errBackend
}

func (failingStore) RecordStatistic(context.Context, uuid.UUID, domain.Ore, float64) error {
	return errBackend
}

func (failingStore) GetStatistics(context.Context, uuid.UUID) (map[domain.Ore]domain.StatisticEntry, error) {
	return nil, errBackend
}

func TestResilientDefaults(t *testing.T) {
	store := NewResilient(failingStore{})
	ctx := context.Background()
	playerID := uuid.New()

	enabled, err := store.IsRewardsEnabled(ctx, playerID)
	require.NoError(t, err)
	assert.True(t, enabled)

	assert.NoError(t, store.SetRewardsEnabled(ctx, playerID, false))
	assert.NoError(t, store.RecordStatistic(ctx, playerID, domain.OreIron, 1))

	stats, err := store.GetStatistics(ctx, playerID)
	require.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestResilientPassesThroughSuccess(t *testing.T) {
	inner, err := NewFlatFileStore(t.TempDir())
	require.NoError(t, err)

	store := NewResilient(inner)
	ctx := context.Background()
	playerID := uuid.New()

	require.NoError(t, store.SetRewardsEnabled(ctx, playerID, false))
	enabled, err := store.IsRewardsEnabled(ctx, playerID)
	require.NoError(t, err)
	assert.False(t, enabled)
}
