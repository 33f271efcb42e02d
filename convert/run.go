package convert

import (
	"context"
	"sync"
)

// Run converts jobs with at most workers conversions in flight and
// streams every Result on the returned channel, which is closed once
// all started jobs have finished.  Cancelling ctx stops new jobs from
// starting.  The caller must drain the channel.
func Run(ctx context.Context, jobs []Job, workers int, opts Options) <-chan Result {
	if workers < 1 {
		workers = 1
	}
	out := make(chan Result, workers)

	go func() {
		defer close(out)

		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup

	dispatch:
		for _, job := range jobs {
			select {
			case <-ctx.Done():
				break dispatch
			case sem <- struct{}{}:
			}
			// A slot may win the race against cancellation.
			if ctx.Err() != nil {
				<-sem
				break
			}

			wg.Add(1)
			go func(j Job) {
				defer wg.Done()
				defer func() { <-sem }()
				out <- ConvertFile(j, opts)
			}(job)
		}

		wg.Wait()
	}()

	return out
}
