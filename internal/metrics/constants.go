package metrics

// Metric names
const (
	MetricNameRewardsPaidTotal       = "orevault_rewards_paid_total"
	MetricNameRewardAmount           = "orevault_reward_amount"
	MetricNameRewardsSkippedTotal    = "orevault_rewards_skipped_total"
	MetricNameVeinContinuationsTotal = "orevault_vein_continuations_total"
	MetricNameMultiplierSweepRemoved = "orevault_multiplier_sweep_removed_total"
	MetricNameStorageOperationErrors = "orevault_storage_operation_errors_total"
	MetricNameStorageFallbacksTotal  = "orevault_storage_fallbacks_total"
	MetricNameStorageBackendInfo     = "orevault_storage_backend"
	MetricNameStatWritesDroppedTotal = "orevault_stat_writes_dropped_total"
	MetricNameHTTPRequestsTotal      = "orevault_http_requests_total"
	MetricNameHTTPRequestDuration    = "orevault_http_request_duration_seconds"
)

// Help texts
const (
	HelpTextRewardsPaidTotal       = "Number of mining rewards paid out"
	HelpTextRewardAmount           = "Distribution of paid reward amounts"
	HelpTextRewardsSkippedTotal    = "Number of mining events that ended without a payout"
	HelpTextVeinContinuationsTotal = "Number of breaks classified as vein continuations"
	HelpTextMultiplierSweepRemoved = "Number of temporary multipliers removed by the expiry sweep"
	HelpTextStorageOperationErrors = "Number of storage operations answered with a safe default"
	HelpTextStorageFallbacksTotal  = "Number of startup fallbacks to flat-file storage"
	HelpTextStorageBackendInfo     = "Live storage backend (1 for the active backend)"
	HelpTextStatWritesDroppedTotal = "Number of statistic writes dropped because the worker queue was full"
	HelpTextHTTPRequestsTotal      = "Number of HTTP requests"
	HelpTextHTTPRequestDuration    = "HTTP request latency"
)

// Label names
const (
	LabelOre       = "ore"
	LabelReason    = "reason"
	LabelOperation = "operation"
	LabelBackend   = "backend"
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
)

// Skip reasons
const (
	ReasonDisabled      = "rewards_disabled"
	ReasonUnconfigured  = "unconfigured_ore"
	ReasonVetoed        = "vetoed"
	ReasonBelowMinimum  = "below_minimum"
	ReasonNoPermission  = "no_permission"
	ReasonDepositFailed = "deposit_failed"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
