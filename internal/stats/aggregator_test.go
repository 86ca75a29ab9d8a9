package stats

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/orevault/orevault/internal/domain"
)

// MockStore is a mock implementation of storage.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) IsRewardsEnabled(ctx context.Context, playerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, playerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) SetRewardsEnabled(ctx context.Context, playerID uuid.UUID, enabled bool) error {
	args := m.Called(ctx, playerID, enabled)
	return args.Error(0)
}

func (m *MockStore) RecordStatistic(ctx context.Context, playerID uuid.UUID, ore domain.Ore, amount float64) error {
	args := m.Called(ctx, playerID, ore, amount)
	return args.Error(0)
}

func (m *MockStore) GetStatistics(ctx context.Context, playerID uuid.UUID) (map[domain.Ore]domain.StatisticEntry, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(map[domain.Ore]domain.StatisticEntry), args.Error(1)
}

func TestSummaryEmpty(t *testing.T) {
	store := new(MockStore)
	playerID := uuid.New()
	store.On("GetStatistics", mock.Anything, playerID).
		Return(map[domain.Ore]domain.StatisticEntry{}, nil)

	summary, err := New(store).Summary(context.Background(), playerID)

	require.NoError(t, err)
	assert.Zero(t, summary.TotalMined)
	assert.Zero(t, summary.TotalEarned)
	assert.Equal(t, domain.MostMinedNone, summary.MostMinedOre)
}

func TestSummaryAggregates(t *testing.T) {
	store := new(MockStore)
	playerID := uuid.New()
	store.On("GetStatistics", mock.Anything, playerID).
		Return(map[domain.Ore]domain.StatisticEntry{
			domain.OreIron:    {TimesMined: 10, AmountEarned: 100},
			domain.OreDiamond: {TimesMined: 3, AmountEarned: 150},
			domain.OreCoal:    {TimesMined: 7, AmountEarned: 7},
		}, nil)

	summary, err := New(store).Summary(context.Background(), playerID)

	require.NoError(t, err)
	assert.Equal(t, int64(20), summary.TotalMined)
	assert.InDelta(t, 257.0, summary.TotalEarned, 1e-9)
	assert.Equal(t, "IRON_ORE", summary.MostMinedOre)
	assert.Len(t, summary.Ores, 3)
}

func TestSummaryTieBreaksToSmallestName(t *testing.T) {
	store := new(MockStore)
	playerID := uuid.New()
	store.On("GetStatistics", mock.Anything, playerID).
		Return(map[domain.Ore]domain.StatisticEntry{
			domain.OreIron: {TimesMined: 5, AmountEarned: 50},
			domain.OreGold: {TimesMined: 5, AmountEarned: 25},
			domain.OreCoal: {TimesMined: 5, AmountEarned: 5},
		}, nil)

	summary, err := New(store).Summary(context.Background(), playerID)

	require.NoError(t, err)
	assert.Equal(t, "COAL_ORE", summary.MostMinedOre)
}

func TestPerOreAccessorsDefaultZero(t *testing.T) {
	store := new(MockStore)
	playerID := uuid.New()
	store.On("GetStatistics", mock.Anything, playerID).
		Return(map[domain.Ore]domain.StatisticEntry{
			domain.OreIron: {TimesMined: 4, AmountEarned: 40},
		}, nil)

	agg := New(store)

	mined, err := agg.TimesMined(context.Background(), playerID, domain.OreIron)
	require.NoError(t, err)
	assert.Equal(t, int64(4), mined)

	mined, err = agg.TimesMined(context.Background(), playerID, domain.OreGold)
	require.NoError(t, err)
	assert.Zero(t, mined)

	earned, err := agg.AmountEarned(context.Background(), playerID, domain.OreGold)
	require.NoError(t, err)
	assert.Zero(t, earned)
}
