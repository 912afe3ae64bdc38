// Package store owns the two in-memory collections of the salon: the
// appointment book and the service catalog. Every mutation rewrites the
// full collection into its storage bucket; a failed write is logged and
// the in-memory state stays authoritative for the running session.
package store

import (
	"encoding/json"

	"go.uber.org/zap"

	"victorianails-backend/config"
)

const (
	appointmentsBucket = "appointments"
	servicesBucket     = "services"
)

// loadBucket reads a bucket as a JSON array, falling back to seed when
// the bucket is absent or its payload does not parse.
func loadBucket[T any](storage *config.LocalStorage, log *zap.Logger, bucket string, seed []T) []T {
	payload, err := storage.ReadBucket(bucket)
	if err != nil {
		log.Warn("reading bucket failed, using seed data",
			zap.String("bucket", bucket), zap.Error(err))
		return seed
	}
	if payload == nil {
		return seed
	}
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		log.Warn("corrupt bucket payload, using seed data",
			zap.String("bucket", bucket), zap.Error(err))
		return seed
	}
	return items
}

// persistBucket serializes the collection into its bucket. Failures are
// logged and swallowed: memory and persisted state may diverge until
// the next successful write.
func persistBucket[T any](storage *config.LocalStorage, log *zap.Logger, bucket string, items []T) {
	payload, err := json.Marshal(items)
	if err == nil {
		err = storage.WriteBucket(bucket, payload)
	}
	if err != nil {
		log.Error("persisting bucket failed, in-memory state kept",
			zap.String("bucket", bucket), zap.Error(err))
	}
}
