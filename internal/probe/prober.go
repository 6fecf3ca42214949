package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/leadradar/leadradar/internal/model"
)

const (
	defaultTimeout = 4 * time.Second
	defaultWindow  = 12
	maxBodySize    = 2 << 20 // 2 MiB is plenty for heuristic extraction
	userAgent      = "LeadRadar/1.0 (+https://github.com/leadradar/leadradar)"
)

// Prober fetches business websites one page at a time and extracts
// heuristic signals from the raw HTML. It never returns errors: every
// failure mode is recorded inside the WebsiteSignal.
type Prober struct {
	client *http.Client
	window int
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout overrides the per-probe deadline.
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		if d > 0 {
			p.client.Timeout = d
		}
	}
}

// WithWindow overrides the batch concurrency window.
func WithWindow(n int) Option {
	return func(p *Prober) {
		if n > 0 {
			p.window = n
		}
	}
}

func NewProber(opts ...Option) *Prober {
	p := &Prober{
		client: &http.Client{Timeout: defaultTimeout},
		window: defaultWindow,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// NormalizeURL prefixes https:// when the raw URL carries no scheme.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// Probe fetches a single website and extracts its signals. Social-media
// URLs are classified without any network call.
func (p *Prober) Probe(ctx context.Context, rawURL string) model.WebsiteSignal {
	sig := model.WebsiteSignal{URL: rawURL, Age: model.AgeUnknown}
	if rawURL == "" {
		sig.Error = "empty url"
		return sig
	}
	if IsSocialURL(rawURL) {
		sig.Skipped = true
		sig.Error = "social media profile, not a standalone website"
		return sig
	}

	target := NormalizeURL(rawURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		sig.Error = err.Error()
		return sig
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		sig.Error = err.Error()
		sig.SSLIssue = looksLikeTLSError(err)
		return sig
	}
	defer resp.Body.Close()
	sig.LoadTime = time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		sig.Error = fmt.Sprintf("unexpected status: %s", resp.Status)
		return sig
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		sig.Error = err.Error()
		return sig
	}

	sig.Reachable = true
	if final := resp.Request.URL; final != nil {
		sig.HTTPS = final.Scheme == "https"
	}
	extract(body, &sig)
	return sig
}

// looksLikeTLSError is a best-effort guess that a transport failure was
// caused by a certificate problem. Error strings differ between transports,
// so this can only approximate intent.
func looksLikeTLSError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, hint := range []string{"tls", "x509", "certificate", "ssl"} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}

// ProbeAll probes a set of URLs in fixed-size concurrency windows; the next
// window starts only once the current one has fully completed. Duplicate
// URLs are fetched once. Every input URL gets an entry in the returned map,
// including skipped and unreachable ones; callers key off Reachable.
func (p *Prober) ProbeAll(ctx context.Context, urls []string) map[string]model.WebsiteSignal {
	distinct := make([]string, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		distinct = append(distinct, u)
	}

	results := make(map[string]model.WebsiteSignal, len(distinct))
	for offset := 0; offset < len(distinct); offset += p.window {
		if ctx.Err() != nil {
			break
		}
		batch := distinct[offset:min(offset+p.window, len(distinct))]
		signals := make([]model.WebsiteSignal, len(batch))

		var wg sync.WaitGroup
		for i, u := range batch {
			wg.Add(1)
			go func(i int, u string) {
				defer wg.Done()
				signals[i] = p.Probe(ctx, u)
			}(i, u)
		}
		wg.Wait()

		for i, u := range batch {
			results[u] = signals[i]
		}
	}
	return results
}
