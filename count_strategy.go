package main

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// CountStrategy runs a fixed number of operations per module.
type CountStrategy struct{}

func (s CountStrategy) runSequence(ctx context.Context, recorder Recorder, config RunConfig) ([]Report, error) {
	return runModules(ctx, s, recorder, config)
}

func (s CountStrategy) run(ctx context.Context, recorder Recorder, module string, config RunConfig) (Report, error) {
	config = config.withRunID()
	workers, err := newWorkers(module, config)
	if err != nil {
		return Report{Module: module, RunID: config.RunID}, err
	}
	log.Printf("Starting %s run: %d operations across %d workers", module, config.Count, config.Workers)

	started := time.Now()
	reporter := newRateReporter(module)
	reporter.start()

	var wg sync.WaitGroup
	wg.Add(len(workers))
	for _, w := range workers {
		go func(w *moduleWorker, ops int) {
			defer wg.Done()
			for i := 0; i < ops && ctx.Err() == nil; i++ {
				w.step(ctx, recorder, reporter)
			}
		}(w, partitionSize(config.Count, len(workers), w.id))
	}
	wg.Wait()

	return finishRun(reporter, config, started)
}

// partitionSize spreads count over n workers, giving the remainder to the
// lowest worker ids.
func partitionSize(count, n, worker int) int {
	size := count / n
	if worker < count%n {
		size++
	}
	return size
}
