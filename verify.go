package main

import (
	"context"
	"slices"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VerifyResult summarizes a replay of stored records against fresh modules.
type VerifyResult struct {
	Module     string
	RunID      string
	Records    int
	Matched    int
	Mismatched int
	Skipped    int
}

// OK reports whether every replayed record matched.
func (v VerifyResult) OK() bool {
	return v.Mismatched == 0 && v.Skipped == 0
}

func fetchRecords(ctx context.Context, collection CollectionAPI, module, runID string) ([]Record, error) {
	filter := bson.M{"module": module, "run_id": runID}
	estimatedCount, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "count records")
	}
	log.Printf("Stored %s records for run %s: %d", module, runID, estimatedCount)

	opts := options.Find().SetSort(bson.D{{Key: "worker", Value: 1}, {Key: "seq", Value: 1}})
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find records")
	}
	defer cursor.Close(ctx)

	records := make([]Record, 0, estimatedCount)
	for cursor.Next(ctx) {
		var rec Record
		if err := cursor.Decode(&rec); err != nil {
			log.Printf("Failed to decode record: %v", err)
			continue
		}
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "cursor error")
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Worker != records[j].Worker {
			return records[i].Worker < records[j].Worker
		}
		return records[i].Seq < records[j].Seq
	})
	return records, nil
}

// verifyRecords replays the stored inputs of module from run runID through a freshly seeded
// instance per worker and compares the outputs. Replay of a worker stops at
// the first gap in its sequence numbers since the engine state can no longer
// be reconstructed past it.
func verifyRecords(ctx context.Context, collection CollectionAPI, module, runID string) (VerifyResult, error) {
	result := VerifyResult{Module: module, RunID: runID}
	records, err := fetchRecords(ctx, collection, module, runID)
	if err != nil {
		return result, err
	}
	result.Records = len(records)

	var (
		current  ProcessingModule
		worker   = -1
		expected int
		broken   bool
	)
	for _, rec := range records {
		if rec.Worker != worker {
			worker, expected, broken = rec.Worker, 0, false
			current, err = NewModule(module, rec.Seed)
			if err != nil {
				return result, err
			}
		}
		if broken || rec.Seq != expected {
			if !broken {
				log.WithFields(log.Fields{"module": module, "worker": worker, "seq": expected}).
					Warn("Sequence gap, skipping rest of worker")
			}
			broken = true
			result.Skipped++
			continue
		}
		expected++

		output, err := current.Process(rec.Input)
		if err != nil || !slices.Equal(output, rec.Output) {
			log.WithFields(log.Fields{"module": module, "worker": worker, "seq": rec.Seq}).
				Warnf("Replay mismatch: stored %v, replayed %v (err: %v)", rec.Output, output, err)
			result.Mismatched++
			continue
		}
		result.Matched++
	}

	log.Printf("Verified %s: %d records, %d matched, %d mismatched, %d skipped",
		module, result.Records, result.Matched, result.Mismatched, result.Skipped)
	return result, nil
}
