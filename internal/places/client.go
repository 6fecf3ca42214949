package places

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/leadradar/leadradar/internal/model"
)

const (
	defaultEndpoint = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	defaultRadiusM  = 5000
)

// Finder is the discovery collaborator: given a query and coordinates it
// returns raw candidate records. The search orchestrator depends on this
// interface, not on the concrete client.
type Finder interface {
	TextSearch(ctx context.Context, query string, lat, lng float64, limit int) ([]model.Candidate, error)
}

// Client talks to a Places-style directory API.
type Client struct {
	http     *resty.Client
	endpoint string
	apiKey   string
	limiter  *rate.Limiter
}

var _ Finder = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithEndpoint points the client at a different API base, used in tests.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithRateLimit overrides the sustained request rate.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		http:     resty.New().SetTimeout(15 * time.Second),
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		// Conservative default, well under the provider's documented quota.
		limiter: rate.NewLimiter(rate.Limit(10), 5),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// TextSearch runs one directory query and maps the payload into Candidates.
// Entries without a stable id or a name are dropped here; they cannot be
// scored or deduplicated downstream. Transport and API errors propagate:
// with no candidates there is nothing to score.
func (c *Client) TextSearch(ctx context.Context, query string, lat, lng float64, limit int) ([]model.Candidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var result searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":    query,
			"location": fmt.Sprintf("%f,%f", lat, lng),
			"radius":   fmt.Sprintf("%d", defaultRadiusM),
			"key":      c.apiKey,
		}).
		SetResult(&result).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("places search request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("places search API error (status %d): %s", resp.StatusCode(), resp.String())
	}
	if result.Status != statusOK && result.Status != statusZeroResults {
		return nil, fmt.Errorf("places search status %s: %s", result.Status, result.ErrorMessage)
	}

	candidates := make([]model.Candidate, 0, len(result.Results))
	for _, p := range result.Results {
		if p.PlaceID == "" || p.Name == "" {
			continue
		}
		candidates = append(candidates, model.Candidate{
			PlaceID:     p.PlaceID,
			Name:        p.Name,
			Address:     p.FormattedAddress,
			Phone:       p.FormattedPhoneNumber,
			Website:     p.Website,
			Rating:      p.Rating,
			ReviewCount: p.UserRatingsTotal,
			PhotoCount:  len(p.Photos),
			Categories:  p.Types,
		})
		if limit > 0 && len(candidates) >= limit {
			break
		}
	}
	return candidates, nil
}
