package search

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/leadradar/leadradar/internal/model"
	"github.com/leadradar/leadradar/internal/places"
	"github.com/leadradar/leadradar/internal/probe"
	"github.com/leadradar/leadradar/internal/scoring"
)

const defaultLimit = 20

// Request describes one opportunity search.
type Request struct {
	Industry      model.Industry `json:"industry"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Limit         int            `json:"limit"`
	EnableScrape  bool           `json:"enable_scrape"`
	EnableAnalyze bool           `json:"enable_analyze"`
}

// Prober probes website batches; see probe.Prober.
type Prober interface {
	ProbeAll(ctx context.Context, urls []string) map[string]model.WebsiteSignal
}

// Analyzer analyzes website batches; see pagespeed.Analyzer.
type Analyzer interface {
	AnalyzeAll(ctx context.Context, urls []string) map[string]model.PerformanceSignal
}

// Orchestrator composes discovery, probing, analysis and scoring into one
// search call. Per-website failures degrade only the affected candidate;
// only a discovery failure aborts the search.
type Orchestrator struct {
	finder   places.Finder
	prober   Prober
	analyzer Analyzer
}

func NewOrchestrator(finder places.Finder, prober Prober, analyzer Analyzer) *Orchestrator {
	return &Orchestrator{finder: finder, prober: prober, analyzer: analyzer}
}

// queryTerms maps an industry to the directory query that surfaces it.
var queryTerms = map[model.Industry]string{
	model.IndustrySalon:       "hair salon",
	model.IndustryBarber:      "barber shop",
	model.IndustrySpa:         "day spa",
	model.IndustryDentist:     "dentist",
	model.IndustryDoctor:      "doctor's office",
	model.IndustryChiro:       "chiropractor",
	model.IndustryRestaurant:  "restaurant",
	model.IndustryCafe:        "cafe",
	model.IndustryFitness:     "gym",
	model.IndustryAutoRepair:  "auto repair shop",
	model.IndustryPlumber:     "plumber",
	model.IndustryElectrician: "electrician",
	model.IndustryLandscaping: "landscaping service",
	model.IndustryRetail:      "retail store",
}

// QueryFor returns the directory query term for an industry.
func QueryFor(industry model.Industry) string {
	if q, ok := queryTerms[industry]; ok {
		return q
	}
	return "local business"
}

// Search runs the full pipeline and returns results sorted by total
// opportunity score, highest first.
func (o *Orchestrator) Search(ctx context.Context, req Request) ([]model.SearchResult, error) {
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}

	candidates, err := o.finder.TextSearch(ctx, QueryFor(req.Industry), req.Lat, req.Lng, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}

	// Distinct websites among candidates; two businesses sharing a site
	// share one fetch.
	var websites []string
	seen := map[string]struct{}{}
	for _, c := range candidates {
		if !c.HasWebsite() {
			continue
		}
		if _, ok := seen[c.Website]; ok {
			continue
		}
		seen[c.Website] = struct{}{}
		websites = append(websites, c.Website)
	}

	var (
		webSignals  map[string]model.WebsiteSignal
		perfSignals map[string]model.PerformanceSignal
		wg          sync.WaitGroup
	)
	if req.EnableScrape && o.prober != nil && len(websites) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			webSignals = o.prober.ProbeAll(ctx, websites)
		}()
	}
	if req.EnableAnalyze && o.analyzer != nil && len(websites) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			perfSignals = o.analyzer.AnalyzeAll(ctx, websites)
		}()
	}
	wg.Wait()

	results := make([]model.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		web := lookupWebsite(webSignals, c.Website)
		perf := lookupPerformance(perfSignals, c.Website)

		in := scoring.Input{
			Industry:    req.Industry,
			PhotoCount:  c.PhotoCount,
			HasWebsite:  c.HasWebsite(),
			WebsiteURL:  c.Website,
			HasPhone:    c.HasPhone(),
			Rating:      c.Rating,
			ReviewCount: c.ReviewCount,
			Website:     web,
			Performance: perf,
		}

		results = append(results, model.SearchResult{
			ID:            uuid.New().String(),
			Candidate:     c,
			Industry:      req.Industry,
			Website:       web,
			Performance:   perf,
			Score:         scoring.Score(in),
			Opportunities: scoring.Opportunities(in),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.Total > results[j].Score.Total
	})
	return results, nil
}

// lookupWebsite resolves a candidate's probe signal, tolerating the scheme
// normalization the prober applies: both the raw URL and its https-prefixed
// form are tried as keys.
func lookupWebsite(signals map[string]model.WebsiteSignal, url string) *model.WebsiteSignal {
	if url == "" || signals == nil {
		return nil
	}
	if sig, ok := signals[url]; ok {
		return &sig
	}
	if sig, ok := signals[probe.NormalizeURL(url)]; ok {
		return &sig
	}
	return nil
}

func lookupPerformance(signals map[string]model.PerformanceSignal, url string) *model.PerformanceSignal {
	if url == "" || signals == nil {
		return nil
	}
	if sig, ok := signals[url]; ok {
		return &sig
	}
	if sig, ok := signals[probe.NormalizeURL(url)]; ok {
		return &sig
	}
	return nil
}
