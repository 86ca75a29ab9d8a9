package storage

import "time"

// =============================================================================
// SQL Query Constants
// =============================================================================

const (
	// SQLSelectRewardsEnabled retrieves a player's payout preference
	SQLSelectRewardsEnabled = `
		SELECT rewards_enabled
		FROM player_settings
		WHERE player_id = $1
	`

	// SQLInsertDefaultSettings lazily creates the default settings row.
	// DO NOTHING keeps a concurrent explicit toggle intact.
	SQLInsertDefaultSettings = `
		INSERT INTO player_settings (player_id, rewards_enabled)
		VALUES ($1, TRUE)
		ON CONFLICT (player_id) DO NOTHING
	`

	// SQLUpsertRewardsEnabled inserts or updates a player's payout preference
	SQLUpsertRewardsEnabled = `
		INSERT INTO player_settings (player_id, rewards_enabled)
		VALUES ($1, $2)
		ON CONFLICT (player_id) DO UPDATE
		SET rewards_enabled = EXCLUDED.rewards_enabled
	`

	// SQLUpsertStatistic atomically increments the pair's accumulators.
	// Single statement, no read-then-write round trip, so concurrent
	// writers for the same pair never lose an update.
	SQLUpsertStatistic = `
		INSERT INTO mining_statistics (player_id, ore, times_mined, amount_earned)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (player_id, ore) DO UPDATE
		SET times_mined   = mining_statistics.times_mined + 1,
		    amount_earned = mining_statistics.amount_earned + EXCLUDED.amount_earned
	`

	// SQLSelectStatistics retrieves all per-ore statistics for a player
	SQLSelectStatistics = `
		SELECT ore, times_mined, amount_earned
		FROM mining_statistics
		WHERE player_id = $1
	`
)

// =============================================================================
// Flat-File Constants
// =============================================================================

const (
	// SettingsFileName is the flat-file settings document
	SettingsFileName = "settings.json"

	// StatisticsFileName is the flat-file statistics document
	StatisticsFileName = "statistics.json"

	// DataDirPerm is the mode for the flat-file data directory
	DataDirPerm = 0o755
)

// =============================================================================
// Cache Constants
// =============================================================================

const (
	// SettingsCacheSize bounds the rewards-enabled read cache
	SettingsCacheSize = 4096

	// SettingsCacheTTL bounds staleness for settings written outside this
	// process; local toggles invalidate immediately
	SettingsCacheTTL = 30 * time.Second
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	// ErrMsgSelectSettingsFailed is returned when the settings read fails
	ErrMsgSelectSettingsFailed = "failed to query player settings: %w"

	// ErrMsgInsertDefaultFailed is returned when lazy default creation fails
	ErrMsgInsertDefaultFailed = "failed to insert default settings: %w"

	// ErrMsgUpsertSettingsFailed is returned when the settings write fails
	ErrMsgUpsertSettingsFailed = "failed to upsert player settings: %w"

	// ErrMsgUpsertStatisticFailed is returned when the statistic upsert fails
	ErrMsgUpsertStatisticFailed = "failed to upsert mining statistic: %w"

	// ErrMsgSelectStatisticsFailed is returned when the statistics read fails
	ErrMsgSelectStatisticsFailed = "failed to query mining statistics: %w"

	// ErrMsgParseConnString is returned when the connection string is invalid
	ErrMsgParseConnString = "failed to parse connection string: %w"

	// ErrMsgCreatePoolFailed is returned when pool creation fails
	ErrMsgCreatePoolFailed = "failed to create connection pool: %w"

	// ErrMsgPingFailed is returned when the startup connectivity check fails
	ErrMsgPingFailed = "failed to ping database: %w"

	// ErrMsgMigrateFailed is returned when migrations cannot be applied
	ErrMsgMigrateFailed = "failed to apply migrations: %w"

	// ErrMsgLoadDocumentFailed is returned when a flat-file document is corrupt
	ErrMsgLoadDocumentFailed = "failed to load %s: %w"

	// ErrMsgSaveDocumentFailed is returned when a flat-file document write fails
	ErrMsgSaveDocumentFailed = "failed to save %s: %w"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDatabaseConnected is logged once the structured backend is live
	LogMsgDatabaseConnected = "Connected to database backend"

	// LogMsgFallbackToFlatFile is logged on the one-time startup fallback
	LogMsgFallbackToFlatFile = "Database backend unavailable, falling back to flat-file storage"

	// LogMsgFlatFileReady is logged once the flat-file backend is live
	LogMsgFlatFileReady = "Flat-file storage ready"

	// LogMsgStoreOperationFailed is logged when the resilient wrapper
	// substitutes a safe default for a failed operation
	LogMsgStoreOperationFailed = "Storage operation failed, using safe default"
)
