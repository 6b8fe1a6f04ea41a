package redis

import (
	"testing"
	"time"

	"github.com/zainulabideendev/estateplan/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newBareCache(opts ...CacheOption) *redisCache {
	c := &redisCache{
		logger:     testutil.NewMockLogger(),
		prefix:     "estateplan:",
		defaultTTL: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func TestFullKey(t *testing.T) {
	c := newBareCache()
	assert.Equal(t, "estateplan:roster:p-1", c.fullKey("roster:p-1"))

	c = newBareCache(WithPrefix("test:"))
	assert.Equal(t, "test:roster:p-1", c.fullKey("roster:p-1"))
}

func TestJitterTTL_ZeroStaysZero(t *testing.T) {
	c := newBareCache()
	assert.Equal(t, time.Duration(0), c.jitterTTL(0))
}

func TestJitterTTL_WithinTenPercent(t *testing.T) {
	c := newBareCache()
	ttl := 5 * time.Minute
	lo := time.Duration(float64(ttl) * 0.9)
	hi := time.Duration(float64(ttl) * 1.1)
	for i := 0; i < 100; i++ {
		got := c.jitterTTL(ttl)
		assert.GreaterOrEqual(t, got, lo)
		assert.LessOrEqual(t, got, hi)
	}
}

func TestWithDefaultTTL(t *testing.T) {
	c := newBareCache(WithDefaultTTL(time.Minute))
	assert.Equal(t, time.Minute, c.defaultTTL)
}
