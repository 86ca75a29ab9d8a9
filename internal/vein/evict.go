package vein

import (
	"context"

	"github.com/orevault/orevault/internal/logger"
)

// EvictJob drops stale break state so the detector's map does not grow
// with players who stopped mining.
type EvictJob struct {
	detector *Detector
	maxAge   int64
}

// NewEvictJob creates an eviction job. maxAge is in the detector's time
// source unit.
func NewEvictJob(detector *Detector, maxAge int64) *EvictJob {
	return &EvictJob{detector: detector, maxAge: maxAge}
}

// Process runs one eviction pass
func (j *EvictJob) Process(ctx context.Context) error {
	removed := j.detector.Evict(j.maxAge)
	if removed > 0 {
		logger.FromContext(ctx).Debug(LogMsgStateEvicted, "count", removed)
	}
	return nil
}
