// Package pincodecache decorates the pincode directory with a Redis
// read-through cache. Pincode reference data changes rarely, so entries are
// cached with a plain TTL and no invalidation; the quoting engine stays
// oblivious to the cache entirely.
package pincodecache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/core/domain/services"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces directory entries in the shared Redis instance.
const keyPrefix = "pincode:"

// cacheEntry is the stored JSON form of a directory record.
type cacheEntry struct {
	City    string `json:"city"`
	State   string `json:"state"`
	IsMetro bool   `json:"is_metro"`
}

// ReadThroughDirectory resolves pincodes via Redis first and falls back to the
// wrapped directory on a miss. Cache failures are never surfaced to callers:
// a broken Redis degrades to direct lookups.
type ReadThroughDirectory struct {
	client *redis.Client
	inner  services.PincodeDirectory
	ttl    time.Duration
	logger *slog.Logger
}

// NewReadThroughDirectory wraps a directory with Redis caching.
// Entries expire after ttl; the wrapped directory remains the source of truth.
func NewReadThroughDirectory(
	client *redis.Client,
	inner services.PincodeDirectory,
	ttl time.Duration,
	logger *slog.Logger,
) *ReadThroughDirectory {
	return &ReadThroughDirectory{
		client: client,
		inner:  inner,
		ttl:    ttl,
		logger: logger,
	}
}

// Lookup returns the directory record for a pincode, serving from cache when
// possible. Only successful lookups are cached: unknown pincodes keep hitting
// the directory so newly loaded reference data shows up without waiting out
// a negative entry.
func (d *ReadThroughDirectory) Lookup(ctx context.Context, pincode kernel.Pincode) (kernel.PincodeInfo, error) {
	if err := pincode.Validate(); err != nil {
		return kernel.PincodeInfo{}, err
	}

	key := cacheKey(pincode)

	if info, ok := d.fromCache(ctx, key); ok {
		return info, nil
	}

	info, err := d.inner.Lookup(ctx, pincode)
	if err != nil {
		return kernel.PincodeInfo{}, err
	}

	d.store(ctx, key, info)
	return info, nil
}

// fromCache attempts to serve the record from Redis.
func (d *ReadThroughDirectory) fromCache(ctx context.Context, key string) (kernel.PincodeInfo, bool) {
	payload, err := d.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			d.logger.Warn("pincode cache read failed", "key", key, "error", err)
		}
		return kernel.PincodeInfo{}, false
	}

	info, err := decodeEntry([]byte(payload))
	if err != nil {
		d.logger.Warn("pincode cache entry corrupt", "key", key, "error", err)
		return kernel.PincodeInfo{}, false
	}

	return info, true
}

// store writes the record to Redis, best effort.
func (d *ReadThroughDirectory) store(ctx context.Context, key string, info kernel.PincodeInfo) {
	payload, err := encodeEntry(info)
	if err != nil {
		d.logger.Warn("pincode cache encode failed", "key", key, "error", err)
		return
	}

	if err = d.client.Set(ctx, key, payload, d.ttl).Err(); err != nil {
		d.logger.Warn("pincode cache write failed", "key", key, "error", err)
	}
}

// cacheKey builds the Redis key for a pincode.
func cacheKey(pincode kernel.Pincode) string {
	return keyPrefix + pincode.String()
}

// encodeEntry serializes a directory record for caching.
func encodeEntry(info kernel.PincodeInfo) ([]byte, error) {
	return json.Marshal(cacheEntry{
		City:    info.City(),
		State:   info.State(),
		IsMetro: info.IsMetro(),
	})
}

// decodeEntry rebuilds a directory record from its cached form.
// Goes through the kernel constructor so a corrupt entry cannot produce an
// invalid record.
func decodeEntry(payload []byte) (kernel.PincodeInfo, error) {
	var entry cacheEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return kernel.PincodeInfo{}, err
	}

	return kernel.NewPincodeInfo(entry.City, entry.State, entry.IsMetro)
}
