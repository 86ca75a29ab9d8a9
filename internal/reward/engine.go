package reward

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/orevault/orevault/internal/config"
	"github.com/orevault/orevault/internal/domain"
	"github.com/orevault/orevault/internal/event"
	"github.com/orevault/orevault/internal/logger"
	"github.com/orevault/orevault/internal/metrics"
	"github.com/orevault/orevault/internal/multiplier"
	"github.com/orevault/orevault/internal/storage"
	"github.com/orevault/orevault/internal/vein"
	"github.com/orevault/orevault/internal/worker"
)

// Engine turns mining events into payouts
type Engine interface {
	// HandleMiningEvent processes one block break and returns the amount
	// paid, 0 when the event did not pay out.
	HandleMiningEvent(ctx context.Context, e domain.MiningEvent) (float64, error)

	// RewardPlayer pays a given base amount through the regular pipeline
	// without vein classification.
	RewardPlayer(ctx context.Context, playerID uuid.UUID, ore domain.Ore, amount float64, world string, permissions []string) (float64, error)

	// Reload rebuilds the reward table and payout thresholds from a fresh
	// config snapshot.
	Reload(cfg *config.Config)
}

type engine struct {
	mu           sync.RWMutex
	table        *Table
	minPayout    float64
	statsEnabled bool
	veinDampen   bool
	veinFactor   float64

	multipliers *multiplier.Engine
	detector    *vein.Detector
	store       storage.Store
	ledger      Ledger
	hooks       *event.Hooks
	pool        *worker.Pool
}

// NewEngine wires the orchestrator from its collaborators and an initial
// config snapshot.
func NewEngine(
	cfg *config.Config,
	multipliers *multiplier.Engine,
	detector *vein.Detector,
	store storage.Store,
	ledger Ledger,
	hooks *event.Hooks,
	pool *worker.Pool,
) Engine {
	e := &engine{
		multipliers: multipliers,
		detector:    detector,
		store:       store,
		ledger:      ledger,
		hooks:       hooks,
		pool:        pool,
	}
	e.Reload(cfg)
	return e
}

// Reload swaps the table and thresholds atomically. Reloading an
// identical config is a no-op in observable behavior.
func (e *engine) Reload(cfg *config.Config) {
	table := NewTable(cfg.Rewards)

	e.mu.Lock()
	e.table = table
	e.minPayout = cfg.MinimumPayout
	e.statsEnabled = cfg.Statistics.Enabled
	e.veinDampen = cfg.VeinMining.EnableMultiplier
	e.veinFactor = cfg.VeinMining.Multiplier
	e.mu.Unlock()

	logger.FromContext(context.Background()).Info(LogMsgTableReloaded, "entries", table.Len())
}

func (e *engine) HandleMiningEvent(ctx context.Context, ev domain.MiningEvent) (float64, error) {
	if !ev.HasPermission(PermissionEarn) {
		metrics.RewardsSkipped.WithLabelValues(metrics.ReasonNoPermission).Inc()
		return 0, nil
	}

	e.mu.RLock()
	base := e.table.Amount(ev.Ore)
	dampen := e.veinDampen
	factor := e.veinFactor
	e.mu.RUnlock()

	enabled, _ := e.store.IsRewardsEnabled(ctx, ev.PlayerID)
	if !enabled {
		metrics.RewardsSkipped.WithLabelValues(metrics.ReasonDisabled).Inc()
		return 0, nil
	}

	if base <= 0 {
		metrics.RewardsSkipped.WithLabelValues(metrics.ReasonUnconfigured).Inc()
		return 0, nil
	}

	continuation := e.detector.IsContinuation(ev.PlayerID, ev.Ore)
	if continuation {
		metrics.VeinContinuations.Inc()
		if dampen {
			base *= factor
		}
	}
	e.detector.Record(ev.PlayerID, ev.Ore)

	return e.pay(ctx, ev.PlayerID, ev.Ore, base, ev.World, ev.Permissions, continuation)
}

func (e *engine) RewardPlayer(ctx context.Context, playerID uuid.UUID, ore domain.Ore, amount float64, world string, permissions []string) (float64, error) {
	enabled, _ := e.store.IsRewardsEnabled(ctx, playerID)
	if !enabled {
		metrics.RewardsSkipped.WithLabelValues(metrics.ReasonDisabled).Inc()
		return 0, nil
	}
	if amount <= 0 {
		metrics.RewardsSkipped.WithLabelValues(metrics.ReasonUnconfigured).Inc()
		return 0, nil
	}
	return e.pay(ctx, playerID, ore, amount, world, permissions, false)
}

// pay runs the shared tail of the pipeline: veto hooks, multiplier,
// minimum-payout floor, deposit, async statistic, notify hooks.
func (e *engine) pay(ctx context.Context, playerID uuid.UUID, ore domain.Ore, base float64, world string, permissions []string, continuation bool) (float64, error) {
	mined := &event.OreMinedEvent{
		PlayerID:         playerID,
		Ore:              ore,
		World:            world,
		VeinContinuation: continuation,
		Reward:           base,
	}
	e.hooks.PublishOreMined(ctx, mined)
	if mined.Cancelled() {
		metrics.RewardsSkipped.WithLabelValues(metrics.ReasonVetoed).Inc()
		return 0, nil
	}

	amount := mined.Reward * e.multipliers.For(playerID, world, permissions)

	e.mu.RLock()
	minPayout := e.minPayout
	statsEnabled := e.statsEnabled
	e.mu.RUnlock()

	if amount < minPayout {
		metrics.RewardsSkipped.WithLabelValues(metrics.ReasonBelowMinimum).Inc()
		return 0, nil
	}

	if err := e.ledger.Deposit(ctx, playerID, amount); err != nil {
		logger.FromContext(ctx).Error(LogMsgDepositFailed, "player_id", playerID, "amount", amount, "error", err)
		metrics.RewardsSkipped.WithLabelValues(metrics.ReasonDepositFailed).Inc()
		return 0, nil
	}

	if statsEnabled {
		job := &statJob{store: e.store, playerID: playerID, ore: ore, amount: amount}
		if !e.pool.TryEnqueue(job) {
			metrics.StatWritesDropped.Inc()
			logger.FromContext(ctx).Warn(LogMsgStatWriteDropped, "player_id", playerID, "ore", ore)
		}
	}

	e.hooks.PublishPlayerRewarded(ctx, event.PlayerRewardedEvent{
		PlayerID: playerID,
		Ore:      ore,
		Amount:   amount,
	})

	metrics.RewardsPaid.WithLabelValues(ore.String()).Inc()
	metrics.RewardAmount.Observe(amount)
	logger.FromContext(ctx).Debug(LogMsgRewardPaid, "player_id", playerID, "ore", ore, "amount", amount)

	return amount, nil
}

// statJob persists one statistic increment on the worker pool
type statJob struct {
	store    storage.Store
	playerID uuid.UUID
	ore      domain.Ore
	amount   float64
}

func (j *statJob) Process(ctx context.Context) error {
	if err := j.store.RecordStatistic(ctx, j.playerID, j.ore, j.amount); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRecordStatistic, err)
	}
	return nil
}
