package input

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tkondra/constella/internal/cache"
	"github.com/tkondra/constella/internal/model"
	"github.com/tkondra/constella/internal/worker"
)

const (
	maxRedirects        = 3
	maxFetchAttempts    = 3
	defaultMaxBodyBytes = 2_000_000
	defaultRequestRate  = 2.0
)

// fetchSleepFunc is swapped out in tests to avoid real backoff waits.
var fetchSleepFunc = time.Sleep

// ErrRobotsDisallowed reports that robots.txt forbids fetching a URL.
var ErrRobotsDisallowed = errors.New("disallowed by robots.txt")

// Page is a fetched document reduced to text.
type Page struct {
	URL         string    `json:"url"`
	FinalURL    string    `json:"final_url"`
	Title       string    `json:"title,omitempty"`
	Text        string    `json:"text"`
	ContentType string    `json:"content_type"`
	StatusCode  int       `json:"status_code"`
	FetchedAt   time.Time `json:"fetched_at"`
	FromCache   bool      `json:"-"`
}

// Fetcher retrieves documents over HTTP for URL input sources. It is
// polite by default: per-host rate limiting, robots.txt compliance,
// bounded reads and capped redirects. Fetched pages are cached so
// repeated analyses of the same URL skip the network.
type Fetcher struct {
	client    *http.Client
	limiter   *worker.Limiter
	robots    *RobotsChecker
	pages     *cache.PageCache
	userAgent string
	maxBytes  int64

	mu     sync.Mutex
	delays map[string]time.Duration
}

// NewFetcher creates a fetcher from the HTTP configuration. The page
// cache may be nil to disable caching.
func NewFetcher(cfg model.HTTPConfig, pages *cache.PageCache) *Fetcher {
	maxBytes := cfg.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestRate
	}

	var robots *RobotsChecker
	if cfg.RespectRobots {
		robots = NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: newProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		limiter:   worker.NewLimiter(rps, cfg.Burst),
		robots:    robots,
		pages:     pages,
		userAgent: cfg.UserAgent,
		maxBytes:  maxBytes,
		delays:    make(map[string]time.Duration),
	}
}

// Fetch retrieves one URL, honoring the page cache, robots.txt and the
// per-host rate limit. Transient failures (transport errors, 5xx, 429)
// are retried with backoff; other errors fail immediately.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	key := cache.Key(rawURL)
	if f.pages != nil {
		if data, found := f.pages.Get(key); found {
			var page Page
			if err := json.Unmarshal(data, &page); err == nil {
				page.FromCache = true
				return &page, nil
			}
		}
	}

	if f.robots != nil {
		allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("%s: %w", rawURL, ErrRobotsDisallowed)
		}
		if delay > 0 {
			f.applyCrawlDelay(rawURL, delay)
		}
	}

	var page *Page
	var err error
	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		if attempt > 0 {
			fetchSleepFunc(time.Duration(attempt) * time.Second)
		}
		if waitErr := f.limiter.Wait(ctx, rawURL); waitErr != nil {
			return nil, fmt.Errorf("rate limit: %w", waitErr)
		}
		page, err = f.fetchOnce(ctx, rawURL)
		if err == nil || !isRetryableFetchError(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	if f.pages != nil {
		if data, merr := json.Marshal(page); merr == nil {
			_ = f.pages.Set(key, data, 0)
		}
	}
	return page, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	page := &Page{
		URL:         rawURL,
		FinalURL:    resp.Request.URL.String(),
		ContentType: contentType,
		StatusCode:  resp.StatusCode,
		FetchedAt:   time.Now().UTC(),
	}

	if isHTMLContentType(contentType) {
		text, title, err := ExtractText(string(body))
		if err != nil {
			return nil, fmt.Errorf("extract text: %w", err)
		}
		page.Text = text
		page.Title = title
	} else {
		page.Text = strings.TrimSpace(string(body))
	}

	return page, nil
}

// applyCrawlDelay slows the host's limiter to the robots.txt crawl
// delay. Setting a host rate resets its accumulated tokens, so each
// host is adjusted only when the delay changes.
func (f *Fetcher) applyCrawlDelay(rawURL string, delay time.Duration) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delays[parsed.Host] == delay {
		return
	}
	f.delays[parsed.Host] = delay
	f.limiter.SetHostRate(parsed.Host, 1/delay.Seconds(), 1)
}

func isHTMLContentType(contentType string) bool {
	return strings.Contains(contentType, "text/html") ||
		strings.Contains(contentType, "application/xhtml")
}

// isRetryableFetchError reports whether a fetch error is worth another
// attempt: transport failures and 5xx/429 statuses are, everything
// else is not.
func isRetryableFetchError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if strings.HasPrefix(msg, "fetch: ") {
		return true
	}
	const prefix = "unexpected status: "
	if !strings.HasPrefix(msg, prefix) {
		return false
	}
	rest := msg[len(prefix):]
	if idx := strings.IndexByte(rest, ' '); idx > 0 {
		rest = rest[:idx]
	}
	code, convErr := strconv.Atoi(rest)
	if convErr != nil {
		return false
	}
	return code == http.StatusTooManyRequests || code >= 500
}
