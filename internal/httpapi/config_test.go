package httpapi

import (
	"testing"
	"time"
)

func TestSetMaxBodyBytes(t *testing.T) {
	orig := maxBodyBytes
	defer func() { maxBodyBytes = orig }()

	SetMaxBodyBytes(0)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(2048)
	if maxBodyBytes != 2048 {
		t.Fatalf("expected 2048, got %d", maxBodyBytes)
	}
}

func TestSetPredictTimeout(t *testing.T) {
	defer SetPredictTimeout(0)
	SetPredictTimeout(-time.Second)
	if predictTimeout != 0 {
		t.Fatalf("expected 0 for negative input, got %v", predictTimeout)
	}
	SetPredictTimeout(5 * time.Second)
	if predictTimeout != 5*time.Second {
		t.Fatalf("expected 5s, got %v", predictTimeout)
	}
}

func TestSetRateLimit(t *testing.T) {
	defer SetRateLimit(0, 0)
	SetRateLimit(0, 10)
	if limiter != nil {
		t.Fatalf("expected limiter disabled")
	}
	SetRateLimit(0.5, 0)
	if limiter == nil || limiter.Burst() != 1 {
		t.Fatalf("expected burst floor of 1")
	}
	SetRateLimit(20, 0)
	if limiter.Burst() != 20 {
		t.Fatalf("expected burst to follow rps, got %d", limiter.Burst())
	}
}

func TestSetCORSOptions_Copies(t *testing.T) {
	defer SetCORSOptions(true, []string{"*"}, []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}, []string{"*"})
	origins := []string{"http://a"}
	SetCORSOptions(true, origins, nil, nil)
	origins[0] = "http://b"
	if corsAllowedOrigins[0] != "http://a" {
		t.Fatalf("origins aliased caller slice")
	}
}
