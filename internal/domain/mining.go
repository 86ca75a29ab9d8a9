package domain

import (
	"github.com/google/uuid"
)

// StatisticEntry accumulates lifetime mining results for one
// (player, ore) pair. Both fields only ever grow.
type StatisticEntry struct {
	TimesMined   int64   `json:"times_mined"`
	AmountEarned float64 `json:"amount_earned"`
}

// PlayerSettings holds per-player preferences. Records are created lazily
// with RewardsEnabled=true on first read.
type PlayerSettings struct {
	PlayerID       uuid.UUID `json:"player_id"`
	RewardsEnabled bool      `json:"rewards_enabled"`
}

// MiningEvent is the host's notification that a player broke a block.
// Delivered at most once per physical break; vein bursts arrive as a
// sequence of these.
type MiningEvent struct {
	PlayerID    uuid.UUID
	Ore         Ore
	World       string
	Permissions []string
}

// HasPermission reports whether the granted permission set contains perm.
func (e MiningEvent) HasPermission(perm string) bool {
	for _, p := range e.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// PlayerSummary is the aggregated read-side view of a player's mining
// statistics.
type PlayerSummary struct {
	TotalMined   int64                  `json:"total_mined"`
	TotalEarned  float64                `json:"total_earned"`
	MostMinedOre string                 `json:"most_mined_ore"`
	Ores         map[Ore]StatisticEntry `json:"ores"`
}

// MostMinedNone is the sentinel returned when a player has no statistics
const MostMinedNone = "None"
