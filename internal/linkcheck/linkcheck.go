// Package linkcheck visits the external URLs referenced by the portfolio
// content and reports the ones that no longer resolve.
package linkcheck

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/arignang/portfolio/internal/content"
)

// Result is the outcome of visiting one link.
type Result struct {
	Link       content.ExternalLink
	StatusCode int
	Title      string
	Err        error
}

// OK reports whether the link answered with a 2xx or 3xx status.
func (r Result) OK() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 400
}

// Checker visits links concurrently.
type Checker struct {
	userAgent      string
	requestTimeout time.Duration
	parallelLimit  int
}

// New creates a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{
		userAgent:      "PortfolioLinkCheck/1.0 (+https://github.com/arignang/portfolio)",
		requestTimeout: 15 * time.Second,
		parallelLimit:  5,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*Checker)

func WithTimeout(d time.Duration) Option { return func(c *Checker) { c.requestTimeout = d } }

func WithParallelism(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.parallelLimit = n
		}
	}
}

// Check visits one URL.
func (c *Checker) Check(ctx context.Context, link content.ExternalLink) Result {
	result := Result{Link: link}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	col := colly.NewCollector(
		colly.UserAgent(c.userAgent),
		colly.MaxDepth(1),
		colly.StdlibContext(ctx),
	)
	col.SetRequestTimeout(c.requestTimeout)

	var mu sync.Mutex
	col.OnResponse(func(r *colly.Response) {
		mu.Lock()
		defer mu.Unlock()
		result.StatusCode = r.StatusCode
	})
	col.OnHTML("title", func(e *colly.HTMLElement) {
		mu.Lock()
		defer mu.Unlock()
		if result.Title == "" {
			result.Title = strings.Join(strings.Fields(e.Text), " ")
		}
	})
	col.OnError(func(r *colly.Response, err error) {
		mu.Lock()
		defer mu.Unlock()
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		result.Err = fmt.Errorf("visit %s: %w (status: %d)", link.URL, err, result.StatusCode)
	})

	if err := col.Visit(link.URL); err != nil && result.Err == nil {
		result.Err = fmt.Errorf("visit %s: %w", link.URL, err)
	}
	col.Wait()
	return result
}

// CheckAll visits every link with bounded concurrency. Results keep the
// order of links.
func (c *Checker) CheckAll(ctx context.Context, links []content.ExternalLink) []Result {
	results := make([]Result, len(links))
	sem := make(chan struct{}, c.parallelLimit)
	var wg sync.WaitGroup

	for i, link := range links {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = Result{Link: link, Err: fmt.Errorf("panic while checking: %v", r)}
				}
			}()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[i] = Result{Link: link, Err: ctx.Err()}
				return
			}
			defer func() { <-sem }()

			results[i] = c.Check(ctx, link)
		}()
	}

	wg.Wait()
	return results
}

// Broken filters results down to the failures.
func Broken(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}
