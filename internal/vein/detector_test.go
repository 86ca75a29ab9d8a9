package vein

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/orevault/orevault/internal/config"
	"github.com/orevault/orevault/internal/domain"
)

func TestIsContinuationSameOreWithinTimeout(t *testing.T) {
	ticks := &TickSource{}
	detector := NewDetector(ticks, 15, true)
	playerID := uuid.New()

	assert.False(t, detector.IsContinuation(playerID, domain.OreIron))

	detector.Record(playerID, domain.OreIron)
	ticks.Advance(10)
	assert.True(t, detector.IsContinuation(playerID, domain.OreIron))

	ticks.Advance(5)
	assert.True(t, detector.IsContinuation(playerID, domain.OreIron))

	ticks.Advance(1)
	assert.False(t, detector.IsContinuation(playerID, domain.OreIron))
}

func TestIsContinuationDifferentOreResets(t *testing.T) {
	ticks := &TickSource{}
	detector := NewDetector(ticks, 15, true)
	playerID := uuid.New()

	detector.Record(playerID, domain.OreIron)
	ticks.Advance(5)

	assert.False(t, detector.IsContinuation(playerID, domain.OreGold))
	assert.True(t, detector.IsContinuation(playerID, domain.OreIron))
}

func TestRecordStreak(t *testing.T) {
	ticks := &TickSource{}
	detector := NewDetector(ticks, 15, true)
	playerID := uuid.New()

	assert.Equal(t, 1, detector.Record(playerID, domain.OreIron))
	ticks.Advance(5)
	assert.Equal(t, 2, detector.Record(playerID, domain.OreIron))
	ticks.Advance(5)
	assert.Equal(t, 3, detector.Record(playerID, domain.OreIron))

	// Window expiry resets the streak
	ticks.Advance(20)
	assert.Equal(t, 1, detector.Record(playerID, domain.OreIron))

	// Ore change resets the streak
	ticks.Advance(5)
	assert.Equal(t, 1, detector.Record(playerID, domain.OreGold))
}

func TestDisabledDetector(t *testing.T) {
	detector := NewDetector(&TickSource{}, 15, false)
	playerID := uuid.New()

	detector.Record(playerID, domain.OreIron)
	assert.False(t, detector.IsContinuation(playerID, domain.OreIron))
}

func TestEvict(t *testing.T) {
	ticks := &TickSource{}
	detector := NewDetector(ticks, 15, true)

	stale := uuid.New()
	fresh := uuid.New()

	detector.Record(stale, domain.OreIron)
	ticks.Advance(100)
	detector.Record(fresh, domain.OreIron)

	removed := detector.Evict(50)
	assert.Equal(t, 1, removed)

	assert.False(t, detector.IsContinuation(stale, domain.OreIron))
	assert.True(t, detector.IsContinuation(fresh, domain.OreIron))
}

func TestFromConfigPrefersTicks(t *testing.T) {
	detector, ticks := FromConfig(&config.VeinMiningConfig{
		DetectionEnabled: true,
		TimeoutTicks:     15,
		TimeoutMS:        1500,
	})
	assert.NotNil(t, ticks)
	assert.Equal(t, int64(15), detector.timeout)

	detector, ticks = FromConfig(&config.VeinMiningConfig{
		DetectionEnabled: true,
		TimeoutMS:        1500,
	})
	assert.Nil(t, ticks)
	assert.Equal(t, int64(1500), detector.timeout)
}
