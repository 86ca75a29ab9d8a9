package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reward metrics
var (
	RewardsPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsPaidTotal,
			Help: HelpTextRewardsPaidTotal,
		},
		[]string{LabelOre},
	)

	RewardAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRewardAmount,
			Help:    HelpTextRewardAmount,
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
		},
	)

	RewardsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsSkippedTotal,
			Help: HelpTextRewardsSkippedTotal,
		},
		[]string{LabelReason},
	)

	VeinContinuations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameVeinContinuationsTotal,
			Help: HelpTextVeinContinuationsTotal,
		},
	)

	MultiplierSweepRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMultiplierSweepRemoved,
			Help: HelpTextMultiplierSweepRemoved,
		},
	)
)

// Storage metrics
var (
	StorageOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageOperationErrors,
			Help: HelpTextStorageOperationErrors,
		},
		[]string{LabelOperation},
	)

	StorageFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStorageFallbacksTotal,
			Help: HelpTextStorageFallbacksTotal,
		},
	)

	StorageBackendInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameStorageBackendInfo,
			Help: HelpTextStorageBackendInfo,
		},
		[]string{LabelBackend},
	)

	StatWritesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStatWritesDroppedTotal,
			Help: HelpTextStatWritesDroppedTotal,
		},
	)
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)
)
