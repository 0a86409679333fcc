package input

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// RobotsChecker fetches and caches robots.txt per host and answers
// whether a URL may be fetched. An unreachable robots.txt allows by
// default; a missing one (404) allows everything.
type RobotsChecker struct {
	mu     sync.RWMutex
	byHost map[string]*robotstxt.RobotsData
	client *http.Client
	agent  string
}

// NewRobotsChecker creates a checker that matches rules against the
// product token of the given user agent.
func NewRobotsChecker(userAgent string, timeout time.Duration) *RobotsChecker {
	return &RobotsChecker{
		byHost: make(map[string]*robotstxt.RobotsData),
		client: &http.Client{Timeout: timeout},
		agent:  productToken(userAgent),
	}
}

// CanFetch reports whether robots.txt allows fetching the URL, along
// with any crawl delay the host requests.
func (r *RobotsChecker) CanFetch(ctx context.Context, rawURL string) (bool, time.Duration, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, 0, fmt.Errorf("parse URL: %w", err)
	}

	data, err := r.robotsData(ctx, parsed)
	if err != nil {
		return true, 0, nil
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	allowed := data.TestAgent(path, r.agent)

	var delay time.Duration
	if group := data.FindGroup(r.agent); group != nil {
		delay = group.CrawlDelay
	}
	return allowed, delay, nil
}

// Clear drops all cached robots.txt data.
func (r *RobotsChecker) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byHost = make(map[string]*robotstxt.RobotsData)
}

func (r *RobotsChecker) robotsData(ctx context.Context, u *url.URL) (*robotstxt.RobotsData, error) {
	r.mu.RLock()
	data, ok := r.byHost[u.Host]
	r.mu.RUnlock()
	if ok {
		return data, nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.agent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err = robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	r.mu.Lock()
	r.byHost[u.Host] = data
	r.mu.Unlock()
	return data, nil
}

// productToken reduces a full user agent ("Constella/0.1 (+url)") to
// the product name robots.txt groups match on.
func productToken(ua string) string {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return ua
	}
	return strings.Split(fields[0], "/")[0]
}
