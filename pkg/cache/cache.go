// Package cache stores solved puzzle answers so repeated runs over the same
// input skip the computation.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entries on local disk, the default for CLI use
//   - [RedisCache]: a shared Redis instance
//   - [NullCache]: stores nothing, used when caching is disabled
//
// Keys come from [AnswerKey], which binds an answer to the exact input bytes
// it was computed from.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported as ok=false with a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error

	// Close releases resources held by the cache.
	Close() error
}

// AnswerKey returns the cache key for one part of one puzzle solved against
// input.
func AnswerKey(year, day, part int, input []byte) string {
	return fmt.Sprintf("answer:%d:%d:%d:%s", year, day, part, Hash(input))
}
