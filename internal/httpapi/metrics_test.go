package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TestMetricsMiddlewareEmitsRequestCounters verifies that wrapping a handler
// with MetricsMiddleware results in request metrics being exposed via the
// Prometheus /metrics handler.
func TestMetricsMiddlewareEmitsRequestCounters(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	MetricsMiddleware(next).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	// Scrape the default registry and ensure our metric name is present
	mrr := httptest.NewRecorder()
	mreq := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	promhttp.Handler().ServeHTTP(mrr, mreq)
	if mrr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", mrr.Code)
	}
	body := mrr.Body.Bytes()
	if !bytes.Contains(body, []byte("wsld_http_requests_total")) {
		previewLen := len(body)
		if previewLen > 200 {
			previewLen = 200
		}
		t.Fatalf("expected to find wsld_http_requests_total in metrics; got: %q", string(body[:previewLen]))
	}
}

func TestRoutePatternOrPathFallsBack(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/distributions/Ubuntu", nil)
	if got := routePatternOrPath(r); got != "/v1/distributions/Ubuntu" {
		t.Fatalf("fallback path = %q", got)
	}
}

func TestRoutePatternUsedInsideRouter(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/v1/distributions/{name}", func(w http.ResponseWriter, req *http.Request) {
		got = routePatternOrPath(req)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/distributions/Ubuntu", nil))
	if got != "/v1/distributions/{name}" {
		t.Fatalf("pattern = %q", got)
	}
}

func TestStatusRecorderKeepsFlusher(t *testing.T) {
	rr := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rr, status: 200}
	sr.Flush()
	if !rr.Flushed {
		t.Fatalf("flush not forwarded")
	}
}

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 200: "200", 404: "404", 1000: "1000"}
	for in, want := range cases {
		if got := itoa(in); got != want {
			t.Fatalf("itoa(%d) = %q, want %q", in, got, want)
		}
	}
}
