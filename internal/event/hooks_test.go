package event

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/orevault/orevault/internal/domain"
)

func TestPublishOreMinedOrderAndAdjustment(t *testing.T) {
	hooks := NewHooks()
	var order []string

	hooks.OnOreMined(func(_ context.Context, e *OreMinedEvent) {
		order = append(order, "first")
		e.Reward = e.Reward * 2
	})
	hooks.OnOreMined(func(_ context.Context, e *OreMinedEvent) {
		order = append(order, "second")
		e.Reward = e.Reward + 1
	})

	e := &OreMinedEvent{PlayerID: uuid.New(), Ore: domain.OreIron, Reward: 5}
	hooks.PublishOreMined(context.Background(), e)

	assert.Equal(t, []string{"first", "second"}, order)
	assert.InDelta(t, 11.0, e.Reward, 1e-9)
}

func TestPublishOreMinedCancel(t *testing.T) {
	hooks := NewHooks()
	sawCancelled := false

	hooks.OnOreMined(func(_ context.Context, e *OreMinedEvent) {
		e.Cancel()
	})
	hooks.OnOreMined(func(_ context.Context, e *OreMinedEvent) {
		sawCancelled = e.Cancelled()
	})

	e := &OreMinedEvent{PlayerID: uuid.New(), Ore: domain.OreIron}
	hooks.PublishOreMined(context.Background(), e)

	assert.True(t, e.Cancelled())
	assert.True(t, sawCancelled)
}

func TestPublishPlayerRewarded(t *testing.T) {
	hooks := NewHooks()
	var got []PlayerRewardedEvent

	hooks.OnPlayerRewarded(func(_ context.Context, e PlayerRewardedEvent) {
		got = append(got, e)
	})

	e := PlayerRewardedEvent{PlayerID: uuid.New(), Ore: domain.OreDiamond, Amount: 3.5}
	hooks.PublishPlayerRewarded(context.Background(), e)

	assert.Equal(t, []PlayerRewardedEvent{e}, got)
}

func TestPublishWithNoHandlers(t *testing.T) {
	hooks := NewHooks()

	e := &OreMinedEvent{PlayerID: uuid.New(), Ore: domain.OreCoal, Reward: 1}
	hooks.PublishOreMined(context.Background(), e)

	assert.False(t, e.Cancelled())
	hooks.PublishPlayerRewarded(context.Background(), PlayerRewardedEvent{})
}
