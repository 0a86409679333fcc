package worker

import (
	"context"
	"testing"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "http://example.com/page"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	// A different host has its own bucket.
	if err := limiter.Wait(ctx, "http://other.example.org"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_ExhaustedTokens(t *testing.T) {
	limiter := NewLimiter(1, 1)
	ctx := context.Background()
	url := "http://example.com"

	if err := limiter.Wait(ctx, url); err != nil {
		t.Errorf("first wait failed: %v", err)
	}
	// Burst of one is consumed; an immediate Allow must fail.
	if limiter.Allow(url) {
		t.Errorf("expected allow to fail with exhausted tokens")
	}
	// Another host is unaffected.
	if !limiter.Allow("http://other.com") {
		t.Errorf("expected allow for other host")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	limiter := NewLimiter(10, 10)
	host := "slow.example.com"

	limiter.SetHostRate(host, 0.1, 1)

	if !limiter.Allow("http://" + host) {
		t.Errorf("first request should pass on burst")
	}
	if limiter.Allow("http://" + host) {
		t.Errorf("second request should fail on slow host")
	}
	if !limiter.Allow("http://fast.example.com") {
		t.Errorf("other host should keep the default rate")
	}
}

func TestExtractHost(t *testing.T) {
	host, err := extractHost("http://example.com/page")
	if err != nil {
		t.Fatalf("extractHost failed: %v", err)
	}
	if host != "example.com" {
		t.Errorf("expected example.com, got %s", host)
	}

	if _, err := extractHost("::invalid"); err == nil {
		t.Errorf("expected error for invalid URL")
	}
}
