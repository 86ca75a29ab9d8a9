package multiplier

import (
	"context"
	"time"

	"github.com/orevault/orevault/internal/logger"
	"github.com/orevault/orevault/internal/metrics"
)

// SweepJob removes expired temporary multipliers. It is meant to run on
// the scheduler at a short interval so expiry lag stays near the
// interval length.
type SweepJob struct {
	engine *Engine
}

// NewSweepJob creates a sweep job for the given engine
func NewSweepJob(engine *Engine) *SweepJob {
	return &SweepJob{engine: engine}
}

// Process runs one sweep pass
func (j *SweepJob) Process(ctx context.Context) error {
	removed := j.engine.Sweep(time.Now())
	if removed > 0 {
		metrics.MultiplierSweepRemoved.Add(float64(removed))
		logger.FromContext(ctx).Debug(LogMsgSweepRemoved, "count", removed)
	}
	return nil
}
