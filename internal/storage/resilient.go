package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/orevault/orevault/internal/domain"
	"github.com/orevault/orevault/internal/logger"
	"github.com/orevault/orevault/internal/metrics"
)

// resilientStore wraps a backend so that per-operation storage failures
// never propagate to gameplay: each failed call is logged, counted, and
// answered with a safe default (enabled, empty statistics, silent no-op).
type resilientStore struct {
	inner Store
}

// NewResilient wraps inner with the log-and-default failure policy
func NewResilient(inner Store) Store {
	return &resilientStore{inner: inner}
}

func (s *resilientStore) IsRewardsEnabled(ctx context.Context, playerID uuid.UUID) (bool, error) {
	enabled, err := s.inner.IsRewardsEnabled(ctx, playerID)
	if err != nil {
		s.degrade(ctx, "is_rewards_enabled", err)
		return true, nil
	}
	return enabled, nil
}

func (s *resilientStore) SetRewardsEnabled(ctx context.Context, playerID uuid.UUID, enabled bool) error {
	if err := s.inner.SetRewardsEnabled(ctx, playerID, enabled); err != nil {
		s.degrade(ctx, "set_rewards_enabled", err)
	}
	return nil
}

func (s *resilientStore) RecordStatistic(ctx context.Context, playerID uuid.UUID, ore domain.Ore, amount float64) error {
	if err := s.inner.RecordStatistic(ctx, playerID, ore, amount); err != nil {
		s.degrade(ctx, "record_statistic", err)
	}
	return nil
}

func (s *resilientStore) GetStatistics(ctx context.Context, playerID uuid.UUID) (map[domain.Ore]domain.StatisticEntry, error) {
	stats, err := s.inner.GetStatistics(ctx, playerID)
	if err != nil {
		s.degrade(ctx, "get_statistics", err)
		return map[domain.Ore]domain.StatisticEntry{}, nil
	}
	return stats, nil
}

func (s *resilientStore) degrade(ctx context.Context, operation string, err error) {
	logger.FromContext(ctx).Error(LogMsgStoreOperationFailed, "operation", operation, "error", err)
	metrics.StorageOperationErrors.WithLabelValues(operation).Inc()
}
