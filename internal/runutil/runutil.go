// internal/runutil/runutil.go
package runutil

import (
	"context"
	"runtime"
	"time"
)

// EffectiveThreads maps the CLI value to a worker count: ≤ 0 means all CPUs,
// and there is never more than one worker per job.
func EffectiveThreads(threads, jobs int) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if jobs > 0 && threads > jobs {
		threads = jobs
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}

// WithTimeout applies d to parent when d > 0; otherwise it only adds a cancel.
func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(parent, d)
	}
	return context.WithCancel(parent)
}
