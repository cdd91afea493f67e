package main

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DurationStrategy runs each module until the configured number of seconds
// has elapsed.
type DurationStrategy struct{}

func (s DurationStrategy) runSequence(ctx context.Context, recorder Recorder, config RunConfig) ([]Report, error) {
	return runModules(ctx, s, recorder, config)
}

func (s DurationStrategy) run(ctx context.Context, recorder Recorder, module string, config RunConfig) (Report, error) {
	config = config.withRunID()
	workers, err := newWorkers(module, config)
	if err != nil {
		return Report{Module: module, RunID: config.RunID}, err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(config.Duration)*time.Second)
	defer cancel()
	log.Printf("Starting %s run for %ds across %d workers", module, config.Duration, config.Workers)

	started := time.Now()
	reporter := newRateReporter(module)
	reporter.start()

	var wg sync.WaitGroup
	wg.Add(len(workers))
	for _, w := range workers {
		go func(w *moduleWorker) {
			defer wg.Done()
			for ctx.Err() == nil {
				// Persist on a context that outlives the run deadline.
				w.step(context.WithoutCancel(ctx), recorder, reporter)
			}
		}(w)
	}
	wg.Wait()

	return finishRun(reporter, config, started)
}
