package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/ping-test", "200"))
	RecordHTTPRequest("GET", "/api/ping-test", 200, 15*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/ping-test", "200"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestRecordHTTPRequest_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	RecordHTTPRequest("GET", "", 404, time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	if after-before != 1 {
		t.Errorf("expected unmatched counter to grow by 1, got %v", after-before)
	}
}

func TestRecordUploadAndAuthFailure(t *testing.T) {
	b := testutil.ToFloat64(UploadsTotal.WithLabelValues("stored"))
	RecordUpload("stored")
	if got := testutil.ToFloat64(UploadsTotal.WithLabelValues("stored")); got-b != 1 {
		t.Errorf("uploads counter delta = %v", got-b)
	}

	a := testutil.ToFloat64(AuthFailuresTotal.WithLabelValues("api_key"))
	RecordAuthFailure("api_key")
	if got := testutil.ToFloat64(AuthFailuresTotal.WithLabelValues("api_key")); got-a != 1 {
		t.Errorf("auth failure counter delta = %v", got-a)
	}
}
