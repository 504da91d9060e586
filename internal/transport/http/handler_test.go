package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"canadata/internal/platform/metrics"
	"canadata/pkg/requestcontext"
	"canadata/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(New(logger, metrics.New(reg)), reg)
}

func TestCleanEndpointsHappyPath(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name     string
		path     string
		value    any
		expected string
	}{
		{
			name:     "postal code",
			path:     "/v1/clean/postal-code",
			value:    "  k1a0b1 ",
			expected: "K1A 0B1",
		},
		{
			name:     "location",
			path:     "/v1/clean/location",
			value:    "quebec city quebec",
			expected: "Quebec City, QC",
		},
		{
			name:     "date",
			path:     "/v1/clean/date",
			value:    "Feb 1, 2023",
			expected: "2023-02-01",
		},
		{
			name:     "phone number",
			path:     "/v1/clean/phone-number",
			value:    "(123) 456-7890",
			expected: "1234567890",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, tt.path, CleanRequest{Value: tt.value})
			rr := testutil.DoRequest(router, req)

			testutil.AssertStatus(t, rr, http.StatusOK)
			resp := testutil.UnmarshalResponse[CleanResponse](t, rr)
			if resp.Value != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, resp.Value)
			}
		})
	}
}

func TestCleanEndpointRejections(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		value      any
		wantStatus int
		wantCode   string
	}{
		{
			name:       "non-string value is a type mismatch",
			path:       "/v1/clean/postal-code",
			value:      12345,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "type_mismatch",
		},
		{
			name:       "null value is empty input",
			path:       "/v1/clean/date",
			value:      nil,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "empty_input",
		},
		{
			name:       "blank value is empty input",
			path:       "/v1/clean/location",
			value:      "   ",
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "empty_input",
		},
		{
			name:       "malformed postal code",
			path:       "/v1/clean/postal-code",
			value:      "12345",
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "invalid_format",
		},
		{
			name:       "short phone number",
			path:       "/v1/clean/phone-number",
			value:      "12",
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "invalid_length",
		},
		{
			name:       "impossible date",
			path:       "/v1/clean/date",
			value:      "2023-02-29",
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "invalid_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, tt.path, CleanRequest{Value: tt.value})
			rr := testutil.DoRequest(router, req)

			testutil.AssertStatus(t, rr, tt.wantStatus)
			body := testutil.UnmarshalErrorResponse(t, rr)
			if body["error"] != tt.wantCode {
				t.Fatalf("expected error code %q, got %q", tt.wantCode, body["error"])
			}
			if body["error_description"] == "" {
				t.Fatalf("expected an error description for validation failures")
			}
		})
	}
}

func TestCleanEndpointBadJSON(t *testing.T) {
	router := newTestRouter(t)

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/v1/clean/postal-code", `{"value":`)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	body := testutil.UnmarshalErrorResponse(t, rr)
	if body["error"] != "bad_request" {
		t.Fatalf("expected bad_request, got %q", body["error"])
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	router := newTestRouter(t)

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/v1/clean/date", `{"value":"2023-02-01","extra":true}`)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodGet, "/v1/clean/postal-code", nil)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil)
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	// One success and one rejection so both outcome labels are exposed.
	testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/clean/postal-code", CleanRequest{Value: "K1A 0B1"}))
	testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/clean/postal-code", CleanRequest{Value: "12345"}))

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)

	body := rr.Body.String()
	for _, want := range []string{
		`canadata_clean_total{cleaner="postal_code",outcome="ok"} 1`,
		`canadata_clean_total{cleaner="postal_code",outcome="invalid_format"} 1`,
		`canadata_clean_duration_seconds_count{cleaner="postal_code"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics exposition missing %q:\n%s", want, body)
		}
	}
}

func TestCleanObservesRequestScopedTime(t *testing.T) {
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(logger, metrics.New(reg))

	r := chi.NewRouter()
	h.Register(r)

	// Pin the request start time well in the past; the duration histogram
	// should measure from it, not from handler entry.
	req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/clean/postal-code", CleanRequest{Value: "K1A 0B1"})
	start := time.Now().Add(-30 * time.Second)
	req = req.WithContext(requestcontext.WithTime(req.Context(), start))

	rr := testutil.DoRequest(r, req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var sum float64
	for _, mf := range mfs {
		if mf.GetName() != "canadata_clean_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			sum += m.GetHistogram().GetSampleSum()
		}
	}
	if sum < 30 {
		t.Fatalf("expected duration measured from the request-scoped start, got sum %fs", sum)
	}
}
