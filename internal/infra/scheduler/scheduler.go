package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// NewPollSchedule returns the schedule used to pause between poll cycles.
// An empty spec yields a constant delay of exactly period; otherwise spec is
// parsed as a standard five-field cron expression (descriptors like "@hourly" included).
func NewPollSchedule(spec string, period time.Duration) (cron.Schedule, error) {
	if spec == "" {
		if period <= 0 {
			return nil, fmt.Errorf("poll period must be positive, got %v", period)
		}
		return constantDelay(period), nil
	}

	s, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return s, nil
}

// constantDelay is like cron.Every but keeps sub-second precision.
type constantDelay time.Duration

func (d constantDelay) Next(t time.Time) time.Time { return t.Add(time.Duration(d)) }
