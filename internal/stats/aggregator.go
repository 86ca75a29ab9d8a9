package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/orevault/orevault/internal/domain"
	"github.com/orevault/orevault/internal/storage"
)

// Aggregator answers read-side questions over the statistics store.
// All methods treat an empty result set as zeros; storage failures are
// absorbed by the resilient store decorator before they reach here.
type Aggregator struct {
	store storage.Store
}

// New creates an aggregator over the given store
func New(store storage.Store) *Aggregator {
	return &Aggregator{store: store}
}

// Summary returns the aggregated view of a player's lifetime mining.
// MostMinedOre is the "None" sentinel for players without statistics;
// ties resolve to the lexicographically smallest ore identifier.
func (a *Aggregator) Summary(ctx context.Context, playerID uuid.UUID) (domain.PlayerSummary, error) {
	entries, err := a.store.GetStatistics(ctx, playerID)
	if err != nil {
		return domain.PlayerSummary{}, err
	}

	summary := domain.PlayerSummary{
		MostMinedOre: domain.MostMinedNone,
		Ores:         entries,
	}

	var best int64
	for ore, entry := range entries {
		summary.TotalMined += entry.TimesMined
		summary.TotalEarned += entry.AmountEarned

		switch {
		case entry.TimesMined > best:
			best = entry.TimesMined
			summary.MostMinedOre = ore.String()
		case entry.TimesMined == best && best > 0 && ore.String() < summary.MostMinedOre:
			summary.MostMinedOre = ore.String()
		}
	}

	return summary, nil
}

// TimesMined returns how often the player mined the given ore, 0 when
// no record exists.
func (a *Aggregator) TimesMined(ctx context.Context, playerID uuid.UUID, ore domain.Ore) (int64, error) {
	entries, err := a.store.GetStatistics(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return entries[ore].TimesMined, nil
}

// AmountEarned returns the player's lifetime earnings from the given
// ore, 0 when no record exists.
func (a *Aggregator) AmountEarned(ctx context.Context, playerID uuid.UUID, ore domain.Ore) (float64, error) {
	entries, err := a.store.GetStatistics(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return entries[ore].AmountEarned, nil
}
