package worker

// Default pool sizing
const (
	DefaultWorkers   = 4
	DefaultQueueSize = 256
)

// Log message constants
const (
	// LogMsgWorkerJobFailed is logged when a job returns an error
	LogMsgWorkerJobFailed = "worker job failed"
)
