package multiplier

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orevault/orevault/internal/config"
	"github.com/orevault/orevault/internal/domain"
)

func enabledConfig(stackType string) *config.MultiplierConfig {
	return &config.MultiplierConfig{
		Enabled:    true,
		Base:       1.0,
		StackType:  stackType,
		Permission: config.PermissionMultiplierConfig{Enabled: true},
		Temporary:  config.TemporaryMultiplierConfig{Enabled: true},
		World: config.WorldMultiplierConfig{
			Enabled: true,
			Worlds:  map[string]float64{"mining_world": 1.5},
		},
	}
}

func TestForAddStacking(t *testing.T) {
	engine := New(enabledConfig(config.StackTypeAdd))
	playerID := uuid.New()

	require.NoError(t, engine.Grant(playerID, 3.0, 0))

	perms := []string{"orevault.earn", "orevault.multiplier.2.5"}
	got := engine.For(playerID, "mining_world", perms)

	// 1.0 + (2.5-1) + (3.0-1) + (1.5-1)
	assert.InDelta(t, 5.0, got, 1e-9)
}

func TestForMultiplyStacking(t *testing.T) {
	engine := New(enabledConfig(config.StackTypeMultiply))
	playerID := uuid.New()

	require.NoError(t, engine.Grant(playerID, 3.0, 0))

	perms := []string{"orevault.multiplier.2.5"}
	got := engine.For(playerID, "mining_world", perms)

	assert.InDelta(t, 11.25, got, 1e-9)
}

func TestForPermissionNodes(t *testing.T) {
	tests := []struct {
		name  string
		perms []string
		want  float64
	}{
		{
			name:  "highest node wins",
			perms: []string{"orevault.multiplier.1.5", "orevault.multiplier.4", "orevault.multiplier.2"},
			want:  4.0,
		},
		{
			name:  "malformed nodes ignored",
			perms: []string{"orevault.multiplier.abc", "orevault.multiplier.", "orevault.multiplier.2.5"},
			want:  2.5,
		},
		{
			name:  "no matching nodes",
			perms: []string{"orevault.earn", "some.other.permission"},
			want:  1.0,
		},
		{
			name:  "node below neutral does not lower",
			perms: []string{"orevault.multiplier.0.5"},
			want:  1.0,
		},
	}

	cfg := enabledConfig(config.StackTypeAdd)
	cfg.World.Enabled = false
	engine := New(cfg)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.For(uuid.New(), "world", tt.perms)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestForStackingModeExamples(t *testing.T) {
	// base 1.0, permission 1.5, temporary 2.0, world disabled
	perms := []string{"orevault.multiplier.1.5"}

	addCfg := enabledConfig(config.StackTypeAdd)
	addCfg.World.Enabled = false
	addEngine := New(addCfg)
	playerID := uuid.New()
	require.NoError(t, addEngine.Grant(playerID, 2.0, 0))
	assert.InDelta(t, 2.5, addEngine.For(playerID, "world", perms), 1e-9)

	mulCfg := enabledConfig(config.StackTypeMultiply)
	mulCfg.World.Enabled = false
	mulEngine := New(mulCfg)
	require.NoError(t, mulEngine.Grant(playerID, 2.0, 0))
	assert.InDelta(t, 3.0, mulEngine.For(playerID, "world", perms), 1e-9)
}

func TestForDisabledEngineReturnsBase(t *testing.T) {
	cfg := enabledConfig(config.StackTypeAdd)
	cfg.Enabled = false
	cfg.Base = 2.0
	engine := New(cfg)

	playerID := uuid.New()
	require.NoError(t, engine.Grant(playerID, 5.0, 0))

	got := engine.For(playerID, "mining_world", []string{"orevault.multiplier.3"})
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestForDisabledSourcesAreNeutral(t *testing.T) {
	cfg := enabledConfig(config.StackTypeAdd)
	cfg.Permission.Enabled = false
	cfg.Temporary.Enabled = false
	cfg.World.Enabled = false
	engine := New(cfg)

	playerID := uuid.New()
	require.NoError(t, engine.Grant(playerID, 5.0, 0))

	got := engine.For(playerID, "mining_world", []string{"orevault.multiplier.3"})
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestGrantRejectsNonPositiveValue(t *testing.T) {
	engine := New(enabledConfig(config.StackTypeAdd))

	err := engine.Grant(uuid.New(), 0, time.Minute)
	assert.ErrorIs(t, err, domain.ErrInvalidMultiplier)

	err = engine.Grant(uuid.New(), -1.5, time.Minute)
	assert.ErrorIs(t, err, domain.ErrInvalidMultiplier)
}

func TestRemaining(t *testing.T) {
	engine := New(enabledConfig(config.StackTypeAdd))
	playerID := uuid.New()

	assert.Equal(t, None, engine.Remaining(playerID))

	require.NoError(t, engine.Grant(playerID, 2.0, 0))
	assert.Equal(t, Permanent, engine.Remaining(playerID))

	require.NoError(t, engine.Grant(playerID, 2.0, time.Minute))
	left := engine.Remaining(playerID)
	assert.Greater(t, left, 50*time.Second)
	assert.LessOrEqual(t, left, time.Minute)
}

func TestExpiredGrantIsNeutral(t *testing.T) {
	engine := New(enabledConfig(config.StackTypeAdd))
	playerID := uuid.New()

	require.NoError(t, engine.Grant(playerID, 3.0, time.Second))

	// Jump the clock past the expiry
	engine.now = func() time.Time { return time.Now().Add(2 * time.Second) }

	assert.Equal(t, None, engine.Remaining(playerID))
	got := engine.For(playerID, "world", nil)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestSweep(t *testing.T) {
	engine := New(enabledConfig(config.StackTypeAdd))

	expired := uuid.New()
	permanent := uuid.New()
	active := uuid.New()

	require.NoError(t, engine.Grant(expired, 2.0, time.Second))
	require.NoError(t, engine.Grant(permanent, 2.0, 0))
	require.NoError(t, engine.Grant(active, 2.0, time.Hour))

	removed := engine.Sweep(time.Now().Add(2 * time.Second))
	assert.Equal(t, 1, removed)

	_, ok := engine.grants.Load(expired)
	assert.False(t, ok)
	_, ok = engine.grants.Load(permanent)
	assert.True(t, ok)
	_, ok = engine.grants.Load(active)
	assert.True(t, ok)
}

func TestRevoke(t *testing.T) {
	engine := New(enabledConfig(config.StackTypeAdd))
	playerID := uuid.New()

	require.NoError(t, engine.Grant(playerID, 2.0, 0))
	engine.Revoke(playerID)

	assert.Equal(t, None, engine.Remaining(playerID))
}
