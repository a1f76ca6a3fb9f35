package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/traffic-dashboard-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{
			name:       "origem liberada",
			allowed:    []string{"http://localhost:3000"},
			origin:     "http://localhost:3000",
			method:     http.MethodGet,
			wantOrigin: "http://localhost:3000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "origem não liberada",
			allowed:    []string{"http://localhost:3000"},
			origin:     "http://evil.test",
			method:     http.MethodGet,
			wantOrigin: "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "curinga libera qualquer origem",
			allowed:    []string{"*"},
			origin:     "http://qualquer.test",
			method:     http.MethodGet,
			wantOrigin: "http://qualquer.test",
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight encerra a requisição",
			allowed:    []string{"*"},
			origin:     "http://qualquer.test",
			method:     http.MethodOptions,
			wantOrigin: "http://qualquer.test",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/dashboards", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"), "burst esgotado")
	assert.True(t, limiter.Allow("10.0.0.2"), "cada IP tem seu próprio bucket")

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"), "um token recuperado após 1s")

	now = now.Add(idleLimiterTTL + time.Second)
	limiter.Allow("10.0.0.3")
	assert.Len(t, limiter.visitors, 1, "IPs ociosos são descartados")
}

func TestRateLimiter_Desativado(t *testing.T) {
	limiter := NewRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"))
	}
}

func TestRateLimit_Responde429(t *testing.T) {
	log.SetupTestLogger()
	limiter := NewRateLimiter(1, 1)
	handler := RateLimit(limiter)(okHandler())

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboards", nil)
	req.Header.Set("X-Forwarded-For", "192.168.0.9, 10.0.0.1")
	handler.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "SRV_005")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "172.16.0.4:5555"
	assert.Equal(t, "172.16.0.4", clientIP(req))

	req.Header.Set("X-Real-IP", "10.1.1.1")
	assert.Equal(t, "10.1.1.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", " 192.168.0.9 , 10.0.0.1")
	assert.Equal(t, "192.168.0.9", clientIP(req))
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, rec.Header().Get("X-Correlation-ID"))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "42 ms", formatDuration(42*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
