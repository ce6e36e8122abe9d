package productapi

import (
	"fmt"
	"math/rand"
	"net/http"
)

const (
	sampleRequestsMin = 100
	sampleRequestsMax = 1000
)

const legacyExposition = `# HELP http_requests_total Total HTTP requests
# TYPE http_requests_total counter
http_requests_total{service="product-api",method="GET"} %d

# HELP products_total Total number of products
# TYPE products_total gauge
products_total %d

# HELP app_uptime_seconds Application uptime
# TYPE app_uptime_seconds gauge
app_uptime_seconds %f
`

// handleMetrics serves the fixed-layout plain-text exposition the legacy
// dashboard scrapes. The request counter is a fresh random sample on every
// call, not real telemetry; the instrumented registry lives under
// /debug/metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	sample := s.SampleRequests
	if sample == nil {
		sample = randomRequestSample
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, legacyExposition,
		sample(),
		s.Store.Count(),
		s.State.Uptime().Seconds(),
	)
}

func randomRequestSample() int {
	return sampleRequestsMin + rand.Intn(sampleRequestsMax-sampleRequestsMin+1)
}
