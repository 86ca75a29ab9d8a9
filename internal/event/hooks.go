package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/orevault/orevault/internal/domain"
)

// OreMinedEvent is published before the multiplier is applied. Handlers
// may cancel the payout or adjust the pending reward.
type OreMinedEvent struct {
	PlayerID         uuid.UUID
	Ore              domain.Ore
	World            string
	VeinContinuation bool

	// Reward is the per-break amount before multiplier application.
	// Handlers may overwrite it.
	Reward float64

	cancelled bool
}

// Cancel vetoes the payout. No deposit or statistic follows.
func (e *OreMinedEvent) Cancel() {
	e.cancelled = true
}

// Cancelled reports whether a handler vetoed the payout
func (e *OreMinedEvent) Cancelled() bool {
	return e.cancelled
}

// PlayerRewardedEvent is published after a successful deposit. It is
// informational; handlers cannot alter the outcome.
type PlayerRewardedEvent struct {
	PlayerID uuid.UUID
	Ore      domain.Ore
	Amount   float64
}

// OreMinedHandler observes and may adjust a pending payout
type OreMinedHandler func(ctx context.Context, e *OreMinedEvent)

// PlayerRewardedHandler observes a completed payout
type PlayerRewardedHandler func(ctx context.Context, e PlayerRewardedEvent)

// Hooks is a synchronous in-process handler registry. Handlers run on
// the publisher's goroutine in registration order.
type Hooks struct {
	mu             sync.RWMutex
	oreMined       []OreMinedHandler
	playerRewarded []PlayerRewardedHandler
}

// NewHooks creates an empty registry
func NewHooks() *Hooks {
	return &Hooks{}
}

// OnOreMined registers a pre-payout handler
func (h *Hooks) OnOreMined(handler OreMinedHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.oreMined = append(h.oreMined, handler)
}

// OnPlayerRewarded registers a post-payout handler
func (h *Hooks) OnPlayerRewarded(handler PlayerRewardedHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.playerRewarded = append(h.playerRewarded, handler)
}

// PublishOreMined runs the pre-payout handlers in order. Later handlers
// still run after a cancellation and observe it.
func (h *Hooks) PublishOreMined(ctx context.Context, e *OreMinedEvent) {
	h.mu.RLock()
	handlers := h.oreMined
	h.mu.RUnlock()

	for _, handler := range handlers {
		handler(ctx, e)
	}
}

// PublishPlayerRewarded runs the post-payout handlers in order
func (h *Hooks) PublishPlayerRewarded(ctx context.Context, e PlayerRewardedEvent) {
	h.mu.RLock()
	handlers := h.playerRewarded
	h.mu.RUnlock()

	for _, handler := range handlers {
		handler(ctx, e)
	}
}
