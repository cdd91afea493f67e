package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record is one processed operation as stored in the results collection.
type Record struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	RunID     string             `bson:"run_id"`
	Module    string             `bson:"module"`
	Worker    int                `bson:"worker"`
	Seq       int                `bson:"seq"`
	Seed      int                `bson:"seed"`
	Input     []int              `bson:"input"`
	Output    []int              `bson:"output"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Recorder persists processed operations.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}

type collectionRecorder struct {
	collection CollectionAPI
}

// NewCollectionRecorder stores each record as a document in collection.
func NewCollectionRecorder(collection CollectionAPI) Recorder {
	return &collectionRecorder{collection: collection}
}

func (r *collectionRecorder) Record(ctx context.Context, rec Record) error {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, rec)
	return err
}

type discardRecorder struct{}

func (discardRecorder) Record(context.Context, Record) error { return nil }
