package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"furls/dashboard/internal/auth"
	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var fromCtx, fromGin string
	r.GET("/x", func(c *gin.Context) {
		fromCtx = logging.RequestIDFromContext(c.Request.Context())
		fromGin = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	id := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("response id %q is not a UUID: %v", id, err)
	}
	if fromCtx != id || fromGin != id {
		t.Errorf("context ids %q/%q differ from header %q", fromCtx, fromGin, id)
	}
}

func TestRequestID_ReusesInbound(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "upstream-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "upstream-42" {
		t.Errorf("id = %q, want upstream-42", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("a", 200))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); len(got) == 200 {
		t.Error("oversized inbound id should be replaced")
	}
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })

	r := gin.New()
	r.Use(RequestID(), AccessLog())
	r.GET("/items/:id", func(c *gin.Context) {
		c.Set(auth.ContextUserID, uint(7))
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/items/3", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"route":"/items/:id"`, `"status":404`, `"user_id":7`, `"request_id":"req-1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("access log missing %s: %s", want, out)
		}
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/things/:id", "200")
	before := testutil.ToFloat64(counter)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/99", nil))
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("counter delta = %v", got)
	}
}

func TestUploadLimiter(t *testing.T) {
	limiter := NewUploadLimiter(2)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id == "1" {
			c.Set(auth.ContextUserID, uint(1))
		} else {
			c.Set(auth.ContextUserID, uint(2))
		}
	}, limiter.Middleware())
	r.POST("/upload", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		req.Header.Set("X-Test-User", user)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	limited := metrics.UploadsTotal.WithLabelValues("rate_limited")
	before := testutil.ToFloat64(limited)

	if send("1") != http.StatusOK || send("1") != http.StatusOK {
		t.Fatal("burst should allow two uploads")
	}
	if code := send("1"); code != http.StatusTooManyRequests {
		t.Errorf("third upload = %d, want 429", code)
	}
	if code := send("2"); code != http.StatusOK {
		t.Errorf("other user = %d, buckets must be per user", code)
	}
	if got := testutil.ToFloat64(limited) - before; got != 1 {
		t.Errorf("rate_limited delta = %v", got)
	}
}

func TestUploadLimiter_Disabled(t *testing.T) {
	limiter := NewUploadLimiter(0)
	for i := 0; i < 100; i++ {
		if !limiter.Allow(1) {
			t.Fatalf("upload %d refused with limiting disabled", i)
		}
	}
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.POST("/upload", BodyLimit(16), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	small := httptest.NewRecorder()
	r.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"shots":1}`)))
	if small.Code != http.StatusOK {
		t.Errorf("small body = %d, want 200", small.Code)
	}

	declared := httptest.NewRecorder()
	r.ServeHTTP(declared, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(strings.Repeat("x", 64))))
	if declared.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("declared oversize body = %d, want 413", declared.Code)
	}

	// Unknown length: the cap trips while reading.
	req := httptest.NewRequest(http.MethodPost, "/upload", io.NopCloser(strings.NewReader(strings.Repeat("x", 64))))
	req.ContentLength = -1
	streamed := httptest.NewRecorder()
	r.ServeHTTP(streamed, req)
	if streamed.Code != http.StatusBadRequest {
		t.Errorf("streamed oversize body = %d, want read error", streamed.Code)
	}
}
