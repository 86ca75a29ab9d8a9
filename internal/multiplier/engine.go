package multiplier

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orevault/orevault/internal/config"
	"github.com/orevault/orevault/internal/domain"
)

var permissionRegex = regexp.MustCompile(permissionPattern)

// grant is a temporary multiplier entry. A zero expiresAt means the
// grant never expires.
type grant struct {
	value     float64
	expiresAt int64
}

// Engine resolves the effective payout multiplier for a player by
// combining the permission, temporary and world sources according to
// the configured stacking mode.
type Engine struct {
	cfg    *config.MultiplierConfig
	grants sync.Map

	now func() time.Time
}

// New creates an engine for the given multiplier configuration
func New(cfg *config.MultiplierConfig) *Engine {
	return &Engine{
		cfg: cfg,
		now: time.Now,
	}
}

// For returns the effective multiplier for a player in a world holding
// the given permission nodes. Disabled sources contribute the neutral
// value. When the engine itself is disabled the base multiplier is
// returned unchanged.
func (e *Engine) For(playerID uuid.UUID, world string, permissions []string) float64 {
	if !e.cfg.Enabled {
		return e.cfg.Base
	}

	perm := neutral
	if e.cfg.Permission.Enabled {
		perm = permissionValue(permissions)
	}

	temp := neutral
	if e.cfg.Temporary.Enabled {
		temp = e.temporaryValue(playerID)
	}

	wm := neutral
	if e.cfg.World.Enabled {
		if v, ok := e.cfg.World.Worlds[world]; ok && v > 0 {
			wm = v
		}
	}

	if e.cfg.StackMultiply() {
		return e.cfg.Base * perm * temp * wm
	}
	return e.cfg.Base + (perm - neutral) + (temp - neutral) + (wm - neutral)
}

// Grant gives a player a temporary multiplier. A zero duration makes
// the grant permanent until revoked. Granting replaces any existing
// grant for the player.
func (e *Engine) Grant(playerID uuid.UUID, value float64, duration time.Duration) error {
	if value <= 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidMultiplier, value)
	}

	g := grant{value: value}
	if duration > 0 {
		g.expiresAt = e.now().Add(duration).UnixMilli()
	}

	e.grants.Store(playerID, g)
	return nil
}

// Revoke removes a player's temporary multiplier if present
func (e *Engine) Revoke(playerID uuid.UUID) {
	e.grants.Delete(playerID)
}

// Remaining reports the time left on a player's temporary multiplier.
// It returns Permanent for grants without an expiry and None when the
// player has no active grant.
func (e *Engine) Remaining(playerID uuid.UUID) time.Duration {
	v, ok := e.grants.Load(playerID)
	if !ok {
		return None
	}

	g := v.(grant)
	if g.expiresAt == 0 {
		return Permanent
	}

	left := time.Duration(g.expiresAt-e.now().UnixMilli()) * time.Millisecond
	if left <= 0 {
		return None
	}
	return left
}

// Sweep removes all grants whose expiry has passed and returns the
// number removed. A grant replaced concurrently with the sweep is left
// alone; the compare-and-delete only removes the exact entry observed.
func (e *Engine) Sweep(now time.Time) int {
	cutoff := now.UnixMilli()
	removed := 0

	e.grants.Range(func(key, value any) bool {
		g := value.(grant)
		if g.expiresAt != 0 && g.expiresAt <= cutoff {
			if e.grants.CompareAndDelete(key, value) {
				removed++
			}
		}
		return true
	})

	return removed
}

func (e *Engine) temporaryValue(playerID uuid.UUID) float64 {
	v, ok := e.grants.Load(playerID)
	if !ok {
		return neutral
	}

	g := v.(grant)
	if g.expiresAt != 0 && g.expiresAt <= e.now().UnixMilli() {
		return neutral
	}
	return g.value
}

// permissionValue returns the highest multiplier encoded in the
// player's permission nodes, or neutral when none parse.
func permissionValue(permissions []string) float64 {
	best := neutral
	for _, node := range permissions {
		m := permissionRegex.FindStringSubmatch(node)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if v > best {
			best = v
		}
	}
	return best
}
