package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

const reportInterval = 1 * time.Second

// Report is the final snapshot of one module run.
type Report struct {
	Module     string
	RunID      string
	Operations int64
	Errors     int64
	MeanRate   float64
	OutputMean float64
	OutputMin  int64
	OutputMax  int64
	OutputStd  float64
}

// rateReporter samples operation rates once per interval and keeps the
// snapshots as CSV rows.
type rateReporter struct {
	module  string
	rate    metrics.Meter
	outputs metrics.Histogram
	errs    metrics.Counter

	mu      sync.Mutex
	records [][]string

	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

func newRateReporter(module string) *rateReporter {
	return &rateReporter{
		module:  module,
		rate:    metrics.NewMeter(),
		outputs: metrics.NewHistogram(metrics.NewUniformSample(1028)),
		errs:    metrics.NewCounter(),
		records: [][]string{{"timestamp", "count", "mean_rate", "m1_rate", "m5_rate", "m15_rate", "errors"}},
		done:    make(chan struct{}),
	}
}

func (r *rateReporter) start() {
	r.ticker = time.NewTicker(reportInterval)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for {
			select {
			case <-r.ticker.C:
				r.snapshot(true)
			case <-r.done:
				return
			}
		}
	}()
}

// mark counts one successful operation and samples its outputs.
func (r *rateReporter) mark(output []int) {
	r.rate.Mark(1)
	for _, v := range output {
		r.outputs.Update(int64(v))
	}
}

func (r *rateReporter) fail() {
	r.errs.Inc(1)
}

func (r *rateReporter) snapshot(verbose bool) {
	timestamp := time.Now().Unix()
	count := r.rate.Count()
	mean := r.rate.RateMean()
	m1Rate := r.rate.Rate1()
	m5Rate := r.rate.Rate5()
	m15Rate := r.rate.Rate15()
	errCount := r.errs.Count()

	if verbose {
		log.Printf("Module: %s, Timestamp: %d, Operation Count: %d, Mean Rate: %.2f ops/sec, m1_rate: %.2f, m5_rate: %.2f, m15_rate: %.2f, errors: %d",
			r.module, timestamp, count, mean, m1Rate, m5Rate, m15Rate, errCount)
	}

	record := []string{
		fmt.Sprintf("%d", timestamp),
		fmt.Sprintf("%d", count),
		fmt.Sprintf("%.6f", mean),
		fmt.Sprintf("%.6f", m1Rate),
		fmt.Sprintf("%.6f", m5Rate),
		fmt.Sprintf("%.6f", m15Rate),
		fmt.Sprintf("%d", errCount),
	}
	r.mu.Lock()
	r.records = append(r.records, record)
	r.mu.Unlock()
}

// stop halts sampling, records a final row and returns the run summary.
func (r *rateReporter) stop() Report {
	if r.ticker != nil {
		r.ticker.Stop()
		close(r.done)
		r.wg.Wait()
	}
	r.snapshot(false)
	r.rate.Stop()

	outputs := r.outputs.Snapshot()
	return Report{
		Module:     r.module,
		Operations: r.rate.Count(),
		Errors:     r.errs.Count(),
		MeanRate:   r.rate.RateMean(),
		OutputMean: outputs.Mean(),
		OutputMin:  outputs.Min(),
		OutputMax:  outputs.Max(),
		OutputStd:  outputs.StdDev(),
	}
}

func (r *rateReporter) writeCSV(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create CSV file")
	}
	defer file.Close()

	r.mu.Lock()
	defer r.mu.Unlock()
	writer := csv.NewWriter(file)
	if err := writer.WriteAll(r.records); err != nil {
		return errors.Wrap(err, "write records to CSV")
	}
	return nil
}
