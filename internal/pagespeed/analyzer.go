package pagespeed

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/leadradar/leadradar/internal/model"
	"github.com/leadradar/leadradar/internal/probe"
)

const (
	defaultEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"
	defaultWindow   = 3 // external quota is stricter than the prober's
	defaultPause    = 500 * time.Millisecond
	mobileScoreBar  = 50
)

// runPagespeedResponse models the slice of the PageSpeed payload we consume.
type runPagespeedResponse struct {
	LighthouseResult *lighthouseResult `json:"lighthouseResult"`
	Error            *apiError         `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type lighthouseResult struct {
	Categories struct {
		Performance struct {
			Score float64 `json:"score"` // 0-1 fraction
		} `json:"performance"`
	} `json:"categories"`
	Audits map[string]audit `json:"audits"`
}

type audit struct {
	Score        *float64 `json:"score"`
	NumericValue float64  `json:"numericValue"`
}

func (a audit) passed() bool {
	return a.Score != nil && *a.Score >= 0.9
}

// Analyzer wraps the third-party page-performance API. It never returns an
// error to callers; failures come back as signals with Err set.
type Analyzer struct {
	client   *resty.Client
	endpoint string
	apiKey   string
	window   int
	pause    time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithEndpoint points the analyzer at a different API base, used in tests.
func WithEndpoint(url string) Option {
	return func(a *Analyzer) { a.endpoint = url }
}

// WithWindow overrides the batch concurrency window.
func WithWindow(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.window = n
		}
	}
}

// WithPause overrides the delay between batch windows.
func WithPause(d time.Duration) Option {
	return func(a *Analyzer) {
		if d >= 0 {
			a.pause = d
		}
	}
}

func NewAnalyzer(apiKey string, opts ...Option) *Analyzer {
	a := &Analyzer{
		client:   resty.New().SetTimeout(25 * time.Second),
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		window:   defaultWindow,
		pause:    defaultPause,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Analyze requests a mobile-strategy, performance-only report for one URL.
func (a *Analyzer) Analyze(ctx context.Context, url string) model.PerformanceSignal {
	target := probe.NormalizeURL(url)
	sig := model.PerformanceSignal{
		URL:   url,
		HTTPS: strings.HasPrefix(target, "https://"),
	}

	params := map[string]string{
		"url":      target,
		"strategy": "mobile",
		"category": "performance",
	}
	if a.apiKey != "" {
		params["key"] = a.apiKey
	}

	var result runPagespeedResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get(a.endpoint)
	if err != nil {
		return errorSignal(sig, err.Error())
	}
	if resp.IsError() {
		return errorSignal(sig, resp.Status())
	}
	if result.Error != nil {
		return errorSignal(sig, result.Error.Message)
	}
	if result.LighthouseResult == nil {
		return errorSignal(sig, "empty lighthouse result")
	}

	lh := result.LighthouseResult
	sig.Score = int(math.Round(lh.Categories.Performance.Score * 100))
	if https, ok := lh.Audits["is-on-https"]; ok {
		sig.HTTPS = https.passed()
	}
	if srt, ok := lh.Audits["server-response-time"]; ok {
		sig.ResponseTime = time.Duration(srt.NumericValue * float64(time.Millisecond))
	}
	// Mobile friendliness is a compound judgement, not a raw audit: the page
	// must declare a viewport and clear the performance bar.
	sig.MobileFriendly = lh.Audits["viewport"].passed() && sig.Score >= mobileScoreBar
	return sig
}

func errorSignal(sig model.PerformanceSignal, msg string) model.PerformanceSignal {
	sig.Err = true
	sig.ErrorMessage = msg
	sig.Score = 0
	sig.MobileFriendly = false
	return sig
}

// AnalyzeAll analyzes a set of URLs in small fixed windows with a short
// pause between windows. Social URLs are skipped before any call is made.
// URLs that failed or were skipped are absent from the returned map; callers
// must treat absence as unknown, never as a zero score.
func (a *Analyzer) AnalyzeAll(ctx context.Context, urls []string) map[string]model.PerformanceSignal {
	distinct := make([]string, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if u == "" || probe.IsSocialURL(u) {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		distinct = append(distinct, u)
	}

	results := make(map[string]model.PerformanceSignal, len(distinct))
	for offset := 0; offset < len(distinct); offset += a.window {
		if ctx.Err() != nil {
			break
		}
		if offset > 0 && a.pause > 0 {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(a.pause):
			}
		}

		batch := distinct[offset:min(offset+a.window, len(distinct))]
		signals := make([]model.PerformanceSignal, len(batch))

		var wg sync.WaitGroup
		for i, u := range batch {
			wg.Add(1)
			go func(i int, u string) {
				defer wg.Done()
				signals[i] = a.Analyze(ctx, u)
			}(i, u)
		}
		wg.Wait()

		for i, u := range batch {
			if signals[i].Err {
				continue
			}
			results[u] = signals[i]
		}
	}
	return results
}
