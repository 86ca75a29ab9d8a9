package server

import "time"

// HeaderAPIKey carries the shared secret for authenticated routes
const HeaderAPIKey = "X-API-Key"

// ReadHeaderTimeout bounds slow-header clients
const ReadHeaderTimeout = 5 * time.Second

// MaxRequestBody caps ingest payload size
const MaxRequestBody = 1 << 20

// Response message constants
const (
	MsgInvalidRequestBody = "Invalid request body"
	MsgInvalidPlayerID    = "Invalid player id"
	MsgInvalidOre         = "Invalid ore"
	MsgInvalidValue       = "Invalid value"
	MsgUnauthorized       = "Unauthorized"
	MsgReloaded           = "Configuration reloaded"
	MsgSettingsUpdated    = "Settings updated"
	MsgMultiplierGranted  = "Multiplier granted"
	MsgMultiplierRevoked  = "Multiplier revoked"
	MsgTicksAdvanced      = "Ticks advanced"
	MsgHealthy            = "ok"
)

// Log message constants
const (
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgServerStarting   = "Server starting"
	LogMsgAuthRejected     = "Request rejected, bad API key"
	LogMsgReloadFailed     = "Config reload failed"
)
