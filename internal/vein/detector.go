package vein

import (
	"sync"

	"github.com/google/uuid"

	"github.com/orevault/orevault/internal/config"
	"github.com/orevault/orevault/internal/domain"
)

// breakState is the last observed break for a player
type breakState struct {
	ore    domain.Ore
	at     int64
	streak int
}

// Detector classifies consecutive same-ore breaks inside the configured
// window as vein continuations. It is advisory; payout adjustment stays
// with the caller.
type Detector struct {
	source  TimeSource
	timeout int64
	enabled bool

	states sync.Map
	mu     sync.Mutex
}

// NewDetector creates a detector over the given time source. The timeout
// is expressed in the source's unit.
func NewDetector(source TimeSource, timeout int64, enabled bool) *Detector {
	return &Detector{
		source:  source,
		timeout: timeout,
		enabled: enabled,
	}
}

// FromConfig builds a detector from configuration. A non-zero tick
// timeout selects the logical-tick source and the returned TickSource is
// non-nil; otherwise the wall clock is used with the millisecond
// timeout.
func FromConfig(cfg *config.VeinMiningConfig) (*Detector, *TickSource) {
	if cfg.TimeoutTicks > 0 {
		ticks := &TickSource{}
		return NewDetector(ticks, cfg.TimeoutTicks, cfg.DetectionEnabled), ticks
	}
	return NewDetector(WallClock{}, cfg.TimeoutMS, cfg.DetectionEnabled), nil
}

// IsContinuation reports whether a break of ore by the player right now
// would continue an active vein: prior state exists, same ore, and the
// elapsed time since the last break is within the timeout.
func (d *Detector) IsContinuation(playerID uuid.UUID, ore domain.Ore) bool {
	if !d.enabled {
		return false
	}

	v, ok := d.states.Load(playerID)
	if !ok {
		return false
	}

	state := v.(breakState)
	if state.ore != ore {
		return false
	}
	return d.source.Now()-state.at <= d.timeout
}

// Record stores the break and returns the consecutive count, 1 for a
// fresh vein. The read-modify-write is serialized so concurrent breaks
// by the same player cannot lose a streak increment.
func (d *Detector) Record(playerID uuid.UUID, ore domain.Ore) int {
	if !d.enabled {
		return 1
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	streak := 1
	if d.IsContinuation(playerID, ore) {
		v, _ := d.states.Load(playerID)
		streak = v.(breakState).streak + 1
	}

	d.states.Store(playerID, breakState{
		ore:    ore,
		at:     d.source.Now(),
		streak: streak,
	})
	return streak
}

// Evict drops state older than maxAge source units and returns the
// number removed. Absent state is equivalent to an idle player, so
// eviction never changes classification results.
func (d *Detector) Evict(maxAge int64) int {
	cutoff := d.source.Now() - maxAge
	removed := 0

	d.states.Range(func(key, value any) bool {
		if value.(breakState).at < cutoff {
			if d.states.CompareAndDelete(key, value) {
				removed++
			}
		}
		return true
	})

	return removed
}
