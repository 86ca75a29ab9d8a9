package reward

import (
	"log/slog"

	"github.com/orevault/orevault/internal/domain"
)

// Table is an immutable ore to base-reward lookup. Reload swaps whole
// tables; a table handed out is never mutated.
type Table struct {
	amounts map[domain.Ore]float64
}

// NewTable builds a table from raw config entries. Unknown ore names and
// non-positive amounts are logged and dropped.
func NewTable(rewards map[string]float64) *Table {
	amounts := make(map[domain.Ore]float64, len(rewards))

	for raw, amount := range rewards {
		ore, err := domain.ParseOre(raw)
		if err != nil {
			slog.Warn(LogMsgTableEntryDropped, "ore", raw, "error", err)
			continue
		}
		if amount <= 0 {
			slog.Warn(LogMsgTableEntryDropped, "ore", raw, "amount", amount)
			continue
		}
		amounts[ore] = amount
	}

	return &Table{amounts: amounts}
}

// Amount returns the base reward for ore, 0 when unconfigured
func (t *Table) Amount(ore domain.Ore) float64 {
	return t.amounts[ore]
}

// Len returns the number of configured entries
func (t *Table) Len() int {
	return len(t.amounts)
}
