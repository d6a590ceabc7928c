// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Ordered feeds jobs from feed to cfg.Threads workers running work, and calls
// visit with each result in the order feed produced the inputs. visit runs
// on the calling goroutine.
//
// The first error from feed, work or visit stops the run; cancellation of
// ctx takes precedence and is returned as ctx.Err().
func Ordered[In, Out any](
	ctx context.Context,
	cfg Config,
	feed func(ctx context.Context, send func(In) error) error,
	work func(context.Context, In) (Out, error),
	visit func(Out) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		seq int
		in  In
	}
	type result struct {
		seq int
		out Out
		err error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Feeder
	var feedErr error
	feedDone := make(chan struct{})
	go func() {
		defer close(feedDone)
		defer close(jobs)
		seq := 0
		feedErr = feed(runCtx, func(in In) error {
			select {
			case jobs <- job{seq: seq, in: in}:
				seq++
				return nil
			case <-runCtx.Done():
				return runCtx.Err()
			}
		})
	}()

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				out, err := work(runCtx, j.in)
				select {
				case results <- result{seq: j.seq, out: out, err: err}:
				case <-runCtx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Reorder + visit
	var (
		firstErr error
		next     int
		pending  = make(map[int]result)
	)
	for r := range results {
		if firstErr != nil {
			continue
		}
		pending[r.seq] = r
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			err := p.err
			if err == nil {
				err = visit(p.out)
			}
			if err != nil {
				firstErr = err
				cancel()
				break
			}
		}
	}
	<-feedDone

	if err := ctx.Err(); err != nil {
		return err
	}
	if firstErr != nil {
		return firstErr
	}
	return feedErr
}
