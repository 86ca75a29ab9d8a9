package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/orevault/orevault/internal/domain"
)

// cachedStore keeps a short-lived LRU of rewards-enabled answers so the
// per-break enabled check does not hit storage on every block. Local
// toggles invalidate immediately; writes from other processes converge
// within the TTL.
type cachedStore struct {
	inner    Store
	settings *expirable.LRU[uuid.UUID, bool]
}

// NewCached wraps inner with the rewards-enabled read cache
func NewCached(inner Store, size int, ttl time.Duration) Store {
	return &cachedStore{
		inner:    inner,
		settings: expirable.NewLRU[uuid.UUID, bool](size, nil, ttl),
	}
}

func (s *cachedStore) IsRewardsEnabled(ctx context.Context, playerID uuid.UUID) (bool, error) {
	if enabled, ok := s.settings.Get(playerID); ok {
		return enabled, nil
	}

	enabled, err := s.inner.IsRewardsEnabled(ctx, playerID)
	if err != nil {
		return enabled, err
	}

	s.settings.Add(playerID, enabled)
	return enabled, nil
}

func (s *cachedStore) SetRewardsEnabled(ctx context.Context, playerID uuid.UUID, enabled bool) error {
	s.settings.Remove(playerID)
	if err := s.inner.SetRewardsEnabled(ctx, playerID, enabled); err != nil {
		return err
	}
	s.settings.Add(playerID, enabled)
	return nil
}

func (s *cachedStore) RecordStatistic(ctx context.Context, playerID uuid.UUID, ore domain.Ore, amount float64) error {
	return s.inner.RecordStatistic(ctx, playerID, ore, amount)
}

func (s *cachedStore) GetStatistics(ctx context.Context, playerID uuid.UUID) (map[domain.Ore]domain.StatisticEntry, error) {
	return s.inner.GetStatistics(ctx, playerID)
}
