package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/orevault/orevault/internal/domain"
)

// Store is the durable persistence contract for player settings and
// mining statistics. Two interchangeable implementations exist (Postgres
// and flat-file); the backend is selected once at startup and never
// swapped at runtime. Every operation is individually atomic from the
// caller's perspective.
type Store interface {
	// IsRewardsEnabled reports whether the player receives payouts.
	// Players without a record default to true; the backend may create
	// the default record as a side effect.
	IsRewardsEnabled(ctx context.Context, playerID uuid.UUID) (bool, error)

	// SetRewardsEnabled persists the player's payout preference
	SetRewardsEnabled(ctx context.Context, playerID uuid.UUID, enabled bool) error

	// RecordStatistic increments times-mined by one and amount-earned by
	// amount for the (player, ore) pair, creating the record if absent.
	// Increments for the same pair are linearizable across callers.
	RecordStatistic(ctx context.Context, playerID uuid.UUID, ore domain.Ore, amount float64) error

	// GetStatistics returns all per-ore statistics for the player.
	// Players with no statistics get an empty map.
	GetStatistics(ctx context.Context, playerID uuid.UUID) (map[domain.Ore]domain.StatisticEntry, error)
}

// Backend names the live storage implementation
type Backend string

// Backend identifiers
const (
	BackendPostgres Backend = "postgres"
	BackendFlatFile Backend = "flatfile"
)
