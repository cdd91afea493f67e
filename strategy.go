package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Strategy interface {
	runSequence(ctx context.Context, recorder Recorder, config RunConfig) ([]Report, error)
	run(ctx context.Context, recorder Recorder, module string, config RunConfig) (Report, error)
}

// strategyFor picks the duration bound strategy when a duration is set.
func strategyFor(config RunConfig) Strategy {
	if config.Duration > 0 {
		return DurationStrategy{}
	}
	return CountStrategy{}
}

// runModules runs every configured module under a single RunID.
func runModules(ctx context.Context, s Strategy, recorder Recorder, config RunConfig) ([]Report, error) {
	config = config.withRunID()
	reports := make([]Report, 0, len(config.Modules))
	for _, module := range config.Modules {
		report, err := s.run(ctx, recorder, module, config)
		if err != nil {
			return reports, errors.Wrapf(err, "run %s", module)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// moduleWorker owns one module instance and one input stream. It is never
// shared between goroutines.
type moduleWorker struct {
	runID  string
	id     int
	seed   int
	seq    int
	module ProcessingModule
	inputs *InputGenerator
}

func newWorkers(name string, config RunConfig) ([]*moduleWorker, error) {
	workers := make([]*moduleWorker, config.Workers)
	for i := range workers {
		seed := config.Seed + i
		module, err := NewModule(name, seed)
		if err != nil {
			return nil, err
		}
		workers[i] = &moduleWorker{
			runID:  config.RunID,
			id:     i,
			seed:   seed,
			module: module,
			inputs: NewInputGenerator(seed),
		}
	}
	return workers, nil
}

// step processes one generated input. The sequence number advances even on
// failure so replay can detect the gap.
func (w *moduleWorker) step(ctx context.Context, recorder Recorder, reporter *rateReporter) {
	seq := w.seq
	w.seq++

	input := w.inputs.Generate(w.module.Name())
	output, err := w.module.Process(input)
	if err != nil {
		reporter.fail()
		log.WithFields(log.Fields{"module": w.module.Name(), "worker": w.id, "seq": seq}).
			Errorf("Process failed: %v", err)
		return
	}

	rec := Record{
		RunID:  w.runID,
		Module: w.module.Name(),
		Worker: w.id,
		Seq:    seq,
		Seed:   w.seed,
		Input:  input,
		Output: output,
	}
	if err := recorder.Record(ctx, rec); err != nil {
		reporter.fail()
		log.WithFields(log.Fields{"module": w.module.Name(), "worker": w.id, "seq": seq}).
			Errorf("Record failed: %v", err)
		return
	}
	reporter.mark(output)
}

func finishRun(reporter *rateReporter, config RunConfig, started time.Time) (Report, error) {
	report := reporter.stop()
	report.RunID = config.RunID

	filename := fmt.Sprintf("%s_%s.csv", config.OutputFilePrefix, report.Module)
	if err := reporter.writeCSV(filename); err != nil {
		return report, err
	}

	log.Printf("Module %s (run %s) completed in %s: %d operations, %d errors, mean rate %.2f ops/sec. Results saved to %s",
		report.Module, report.RunID, time.Since(started).Round(time.Millisecond), report.Operations, report.Errors, report.MeanRate, filename)
	return report, nil
}
