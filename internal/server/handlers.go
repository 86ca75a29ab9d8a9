package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/orevault/orevault/internal/domain"
	"github.com/orevault/orevault/internal/logger"
	"github.com/orevault/orevault/internal/multiplier"
	"github.com/orevault/orevault/internal/reward"
	"github.com/orevault/orevault/internal/stats"
	"github.com/orevault/orevault/internal/storage"
	"github.com/orevault/orevault/internal/vein"
)

// ReloadFunc re-reads configuration and applies it to the running
// engine. Wired by the application bootstrap.
type ReloadFunc func(ctx context.Context) error

// MiningEventRequest is the host's block-break notification
type MiningEventRequest struct {
	PlayerID    string   `json:"player_id"`
	Ore         string   `json:"ore"`
	World       string   `json:"world"`
	Permissions []string `json:"permissions"`
}

// SetRewardsRequest toggles a player's reward participation
type SetRewardsRequest struct {
	Enabled bool `json:"enabled"`
}

// GrantMultiplierRequest grants a temporary multiplier.
// DurationSeconds 0 means permanent until revoked.
type GrantMultiplierRequest struct {
	Value           float64 `json:"value"`
	DurationSeconds int64   `json:"duration_seconds"`
}

// AdvanceTicksRequest moves the logical clock forward
type AdvanceTicksRequest struct {
	Ticks int64 `json:"ticks"`
}

func handleMiningEvent(engine reward.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req MiningEventRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBody)).Decode(&req); err != nil {
			log.Warn(MsgInvalidRequestBody, "error", err)
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: MsgInvalidRequestBody})
			return
		}

		playerID, err := uuid.Parse(req.PlayerID)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: MsgInvalidPlayerID})
			return
		}

		ore, err := domain.ParseOre(req.Ore)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: MsgInvalidOre})
			return
		}

		paid, err := engine.HandleMiningEvent(r.Context(), domain.MiningEvent{
			PlayerID:    playerID,
			Ore:         ore,
			World:       req.World,
			Permissions: req.Permissions,
		})
		if err != nil {
			log.Error("Mining event failed", "error", err, "player_id", playerID)
			respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}

		respondJSON(w, http.StatusOK, PaidResponse{Paid: paid})
	}
}

func handleGetStats(aggregator *stats.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		summary, err := aggregator.Summary(r.Context(), playerID)
		if err != nil {
			respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

func handleSetRewards(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		var req SetRewardsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: MsgInvalidRequestBody})
			return
		}

		if err := store.SetRewardsEnabled(r.Context(), playerID, req.Enabled); err != nil {
			respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSettingsUpdated})
	}
}

func handleGetMultiplier(engine *multiplier.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		world := r.URL.Query().Get("world")
		perms := r.URL.Query()["perm"]

		respondJSON(w, http.StatusOK, MultiplierResponse{
			Multiplier: engine.For(playerID, world, perms),
		})
	}
}

func handleGrantMultiplier(engine *multiplier.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		var req GrantMultiplierRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: MsgInvalidRequestBody})
			return
		}

		duration := time.Duration(req.DurationSeconds) * time.Second
		if err := engine.Grant(playerID, req.Value, duration); err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: MsgInvalidValue})
			return
		}

		logger.FromContext(r.Context()).Info(multiplier.LogMsgMultiplierGranted,
			"player_id", playerID, "value", req.Value, "duration_seconds", req.DurationSeconds)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMultiplierGranted})
	}
}

func handleRevokeMultiplier(engine *multiplier.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		engine.Revoke(playerID)
		logger.FromContext(r.Context()).Info(multiplier.LogMsgMultiplierRevoked, "player_id", playerID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMultiplierRevoked})
	}
}

func handleGetTemporaryMultiplier(engine *multiplier.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		respondJSON(w, http.StatusOK, TemporaryMultiplierResponse{
			RemainingSeconds: remainingSeconds(engine.Remaining(playerID)),
		})
	}
}

func handleReload(reload ReloadFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := reload(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgReloadFailed, "error", err)
			respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgReloaded})
	}
}

func handleAdvanceTicks(ticks *vein.TickSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdvanceTicksRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: MsgInvalidRequestBody})
			return
		}
		if req.Ticks < 0 {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: MsgInvalidValue})
			return
		}

		ticks.Advance(req.Ticks)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTicksAdvanced})
	}
}

func handleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHealthy})
	}
}

func playerIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	playerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: MsgInvalidPlayerID})
		return uuid.Nil, false
	}
	return playerID, true
}

// remainingSeconds converts a Remaining result to wire form, keeping
// the -1 permanent and 0 none sentinels.
func remainingSeconds(d time.Duration) int64 {
	switch d {
	case multiplier.Permanent:
		return -1
	case multiplier.None:
		return 0
	}
	return int64((d + time.Second - 1) / time.Second)
}
