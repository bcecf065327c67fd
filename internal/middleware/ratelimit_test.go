package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Second)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		if !rl.allow("editor-ip") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("editor-ip") {
		t.Error("request over the limit should be denied")
	}
	if !rl.allow("other-ip") {
		t.Error("a different client has its own window")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(2, 100*time.Millisecond)
	defer rl.Stop()

	rl.allow("editor-ip")
	rl.allow("editor-ip")
	if rl.allow("editor-ip") {
		t.Error("should be rate-limited inside the window")
	}

	time.Sleep(150 * time.Millisecond)

	if !rl.allow("editor-ip") {
		t.Error("should be allowed once the window slides past")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Second)
	defer rl.Stop()

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() int {
		req := httptest.NewRequest(http.MethodPut, "/api/portfolios/x/sections/reorder", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("first request: got %d, want 200", code)
	}
	if code := send(); code != http.StatusOK {
		t.Fatalf("second request: got %d, want 200", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Errorf("third request: got %d, want 429", code)
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(10, 50*time.Millisecond)
	defer rl.Stop()

	rl.allow("stale-ip")
	rl.allow("fresh-ip")

	time.Sleep(100 * time.Millisecond)
	rl.allow("fresh-ip") // refresh one client past the expiry

	rl.cleanup()

	rl.mu.RLock()
	defer rl.mu.RUnlock()
	if _, ok := rl.clients["stale-ip"]; ok {
		t.Error("stale client should have been dropped")
	}
	if _, ok := rl.clients["fresh-ip"]; !ok {
		t.Error("client with a recent request should survive cleanup")
	}
	if len(rl.clients) != 1 {
		t.Errorf("clients remaining: got %d, want 1", len(rl.clients))
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{name: "x-forwarded-for single", xff: "10.0.0.1", remoteAddr: "192.168.1.1:1234", want: "10.0.0.1"},
		{name: "x-forwarded-for chain takes leftmost", xff: "10.0.0.1, 172.16.0.1, 192.168.1.1", remoteAddr: "192.168.1.1:1234", want: "10.0.0.1"},
		{name: "x-real-ip", xri: "10.0.0.2", remoteAddr: "192.168.1.1:1234", want: "10.0.0.2"},
		{name: "remote addr strips port", remoteAddr: "192.168.1.1:1234", want: "192.168.1.1"},
		{name: "remote addr without port", remoteAddr: "192.168.1.1", want: "192.168.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
