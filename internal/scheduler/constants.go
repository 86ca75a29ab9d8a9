package scheduler

// Log message constants
const (
	// LogMsgScheduledJobFailed is logged when a scheduled job returns an error
	LogMsgScheduledJobFailed = "scheduled job failed"
)
