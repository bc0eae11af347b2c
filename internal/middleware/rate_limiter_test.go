package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"tradebot365-admin/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitedHandler(rps, burst int) (*IPRateLimiter, echo.HandlerFunc) {
	limiter := NewIPRateLimiter(config.SecurityConfig{RateLimitPerSecond: rps, RateLimitBurst: burst})
	return limiter, limiter.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func hit(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	return rec, handler(e.NewContext(req, rec))
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	_, handler := newLimitedHandler(2, 4)

	for i := 0; i < 4; i++ {
		rec, err := hit(e, handler, "192.168.1.2:12345")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec, err := hit(e, handler, "192.168.1.2:12345")
	// Rate limiter uses SendError which sends response and returns nil
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_004")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	e := echo.New()
	_, handler := newLimitedHandler(1, 5)

	for _, ip := range []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"} {
		for i := 0; i < 5; i++ {
			rec, err := hit(e, handler, ip)
			assert.NoError(t, err, "Request %d for IP %s should succeed", i, ip)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	}
}

func TestRateLimiter_InstancesAreIndependent(t *testing.T) {
	e := echo.New()
	_, first := newLimitedHandler(1, 1)
	_, second := newLimitedHandler(1, 1)

	rec, _ := hit(e, first, "10.1.1.1:1")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = hit(e, second, "10.1.1.1:1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "Direct client",
			remoteAddr: "203.0.113.5:12345",
			expected:   "203.0.113.5",
		},
		{
			name:       "Spoofed X-Forwarded-For from a public address is ignored",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.7"},
			remoteAddr: "203.0.113.5:12345",
			expected:   "203.0.113.5",
		},
		{
			name:       "X-Forwarded-For through a private proxy",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.7"},
			remoteAddr: "10.0.0.1:12345",
			expected:   "198.51.100.7",
		},
		{
			name:       "Client entry behind a chain of private proxies",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.2"},
			remoteAddr: "10.0.0.1:12345",
			expected:   "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.IPExtractor = echo.ExtractIPFromXFFHeader()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}

func TestRateLimiter_RotatingForwardedForDoesNotBypass(t *testing.T) {
	e := echo.New()
	e.IPExtractor = echo.ExtractIPFromXFFHeader()
	_, handler := newLimitedHandler(1, 2)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "203.0.113.5:12345"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
		rec := httptest.NewRecorder()
		assert.NoError(t, handler(e.NewContext(req, rec)))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestVisitorCleanup(t *testing.T) {
	limiter := NewIPRateLimiter(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10})
	now := time.Now()
	limiter.visitors["old_ip"] = &visitor{lastSeen: now.Add(-5 * time.Minute)}
	limiter.visitors["new_ip"] = &visitor{lastSeen: now}

	removed := limiter.cleanup(now)

	assert.Equal(t, 1, removed)
	_, oldExists := limiter.visitors["old_ip"]
	_, newExists := limiter.visitors["new_ip"]
	assert.False(t, oldExists, "Old visitor should not exist")
	assert.True(t, newExists, "New visitor should still exist")
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	limiter := NewIPRateLimiter(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		limiter.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiterConcurrency(t *testing.T) {
	e := echo.New()
	_, handler := newLimitedHandler(5, 10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	rateLimitCount := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rec, err := hit(e, handler, "192.168.1.100:12345")

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				return
			}
			switch rec.Code {
			case http.StatusOK:
				successCount++
			case http.StatusTooManyRequests:
				rateLimitCount++
			}
		}()
	}

	wg.Wait()

	assert.Greater(t, successCount, 0, "Some requests should succeed")
	assert.Greater(t, rateLimitCount, 0, "Some requests should be rate limited")
	assert.Equal(t, 20, successCount+rateLimitCount, "All requests should be accounted for")
}
