package prometheus

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	return rec.Body.String()
}

func TestMetrics_AllocationOutcomes(t *testing.T) {
	m := NewMetrics()
	m.AllocationSaveOK()
	m.AllocationSaveOK()
	m.AllocationSaveRejected()

	body := scrape(t, m)
	assert.Contains(t, body, `allocation_saves_total{outcome="ok"} 2`)
	assert.Contains(t, body, `allocation_saves_total{outcome="rejected"} 1`)
}

func TestMetrics_CacheLookups(t *testing.T) {
	m := NewMetrics()
	m.CacheHit("roster")
	m.CacheMiss("roster")
	m.CacheMiss("roster")

	body := scrape(t, m)
	assert.Contains(t, body, `cache_lookups_total{outcome="hit",surface="roster"} 1`)
	assert.Contains(t, body, `cache_lookups_total{outcome="miss",surface="roster"} 2`)
}

func TestMetrics_HTTPRequest(t *testing.T) {
	m := NewMetrics()
	m.RecordHTTPRequest("GET", "/api/v1/profiles/:id/roster", 200, 42*time.Millisecond)

	body := scrape(t, m)
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",path="/api/v1/profiles/:id/roster",status_code="200"} 1`))
}
