package input

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func robotsServer(t *testing.T, robotsBody string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		_, _ = fmt.Fprint(w, robotsBody)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRobotsChecker_DisallowedPath(t *testing.T) {
	server := robotsServer(t, "User-agent: *\nDisallow: /private\n", nil)
	checker := NewRobotsChecker("constella-test/0.1", 5*time.Second)

	allowed, _, err := checker.CanFetch(context.Background(), server.URL+"/private/data")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if allowed {
		t.Error("Expected /private to be disallowed")
	}

	allowed, _, err = checker.CanFetch(context.Background(), server.URL+"/public/data")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !allowed {
		t.Error("Expected /public to be allowed")
	}
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker := NewRobotsChecker("constella-test/0.1", 5*time.Second)
	allowed, _, err := checker.CanFetch(context.Background(), server.URL+"/anything")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !allowed {
		t.Error("Expected missing robots.txt to allow fetching")
	}
}

func TestRobotsChecker_UnreachableHostAllows(t *testing.T) {
	checker := NewRobotsChecker("constella-test/0.1", 200*time.Millisecond)
	allowed, _, err := checker.CanFetch(context.Background(), "http://127.0.0.1:1/page")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !allowed {
		t.Error("Expected unreachable robots.txt to allow by default")
	}
}

func TestRobotsChecker_CrawlDelay(t *testing.T) {
	server := robotsServer(t, "User-agent: *\nCrawl-delay: 2\n", nil)
	checker := NewRobotsChecker("constella-test/0.1", 5*time.Second)

	allowed, delay, err := checker.CanFetch(context.Background(), server.URL+"/page")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !allowed {
		t.Error("Expected page to be allowed")
	}
	if delay != 2*time.Second {
		t.Errorf("Expected 2s crawl delay, got %v", delay)
	}
}

func TestRobotsChecker_CachesPerHost(t *testing.T) {
	var hits atomic.Int32
	server := robotsServer(t, "User-agent: *\nDisallow:\n", &hits)
	checker := NewRobotsChecker("constella-test/0.1", 5*time.Second)

	for i := 0; i < 3; i++ {
		if _, _, err := checker.CanFetch(context.Background(), server.URL+"/page"); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("Expected 1 robots.txt fetch, got %d", hits.Load())
	}

	checker.Clear()
	if _, _, err := checker.CanFetch(context.Background(), server.URL+"/page"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("Expected refetch after Clear, got %d fetches", hits.Load())
	}
}

func TestProductToken(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{"Constella/0.1 (+https://github.com/tkondra/constella)", "Constella"},
		{"Constella/0.1", "Constella"},
		{"Constella", "Constella"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := productToken(tt.ua); got != tt.want {
			t.Errorf("productToken(%q) = %q, want %q", tt.ua, got, tt.want)
		}
	}
}
