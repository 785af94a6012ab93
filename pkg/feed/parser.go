package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/mmcdole/gofeed"
)

// errPermanent marks fetch failures which won't go away on retry
var errPermanent = errors.New("permanent failure")

// Parser fetches and parses RSS/Atom feeds
type Parser struct {
	client     *http.Client
	userAgent  string
	retries    int
	retryDelay time.Duration
}

// ParserParams defines parser configuration
type ParserParams struct {
	Timeout    time.Duration
	UserAgent  string
	Retries    int           // total attempts for transient failures, 1 disables retries
	RetryDelay time.Duration // initial backoff delay
}

// NewParser creates a new feed parser
func NewParser(params ParserParams) *Parser {
	if params.Timeout <= 0 {
		params.Timeout = 30 * time.Second
	}
	if params.UserAgent == "" {
		params.UserAgent = "Mozilla/5.0 (compatible; PhilosophersAlliance/1.0)"
	}
	if params.Retries <= 0 {
		params.Retries = 1
	}
	if params.RetryDelay <= 0 {
		params.RetryDelay = 500 * time.Millisecond
	}
	return &Parser{
		client: &http.Client{
			Timeout: params.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:  params.UserAgent,
		retries:    params.Retries,
		retryDelay: params.RetryDelay,
	}
}

// Parse fetches and parses a feed from the given URL.
// Transport errors, 5xx and 429 responses are retried with backoff, anything else fails immediately.
func (p *Parser) Parse(ctx context.Context, url string) (*gofeed.Feed, error) {
	var feed *gofeed.Feed
	attempt := 0
	retrier := repeater.NewBackoff(p.retries, p.retryDelay, repeater.WithMaxDelay(5*time.Second))
	err := retrier.Do(ctx, func() error {
		attempt++
		if attempt > 1 {
			lgr.Printf("[DEBUG] retrying feed %s, attempt %d", url, attempt)
		}
		f, err := p.fetchAndParse(ctx, url)
		if err != nil {
			return err
		}
		feed = f
		return nil
	}, errPermanent)
	if err != nil {
		return nil, err
	}
	return feed, nil
}

func (p *Parser) fetchAndParse(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", errPermanent, err)
	}

	req.Header.Set("User-Agent", p.userAgent)

	// add browser-like headers
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("fetch feed: unexpected status code %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: fetch feed: unexpected status code %d", errPermanent, resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse feed: %w", errPermanent, err)
	}
	return feed, nil
}
