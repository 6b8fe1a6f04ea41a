// Package estate provides the application-level services for estate
// planning operations. This package serves as the interface between HTTP/CLI
// handlers and domain logic.
package estate

import (
	"context"
	"time"
)

// Cache abstracts the read-through cache used for roster and progress
// lookups. A miss is reported as an error carrying ErrCodeCacheMiss so
// callers can distinguish "absent" from a transport failure.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Metrics counts the application-level events worth charting. The prometheus
// adapter implements it; tests use the no-op.
type Metrics interface {
	AllocationSaveOK()
	AllocationSaveRejected()
	CacheHit(surface string)
	CacheMiss(surface string)
}

// NopMetrics is a Metrics that records nothing.
type NopMetrics struct{}

func (NopMetrics) AllocationSaveOK()        {}
func (NopMetrics) AllocationSaveRejected()  {}
func (NopMetrics) CacheHit(string)          {}
func (NopMetrics) CacheMiss(string)         {}
