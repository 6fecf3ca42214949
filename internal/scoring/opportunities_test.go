package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadradar/leadradar/internal/model"
)

func assertNoDuplicates(t *testing.T, items []string) {
	t.Helper()
	seen := map[string]struct{}{}
	for _, s := range items {
		_, dup := seen[s]
		assert.False(t, dup, "duplicate recommendation: %q", s)
		seen[s] = struct{}{}
	}
}

func TestOpportunitiesCapAndDedupe(t *testing.T) {
	// A business missing everything produces far more raw suggestions than
	// the cap allows.
	in := Input{
		Industry:   model.IndustrySalon,
		HasWebsite: true,
		WebsiteURL: "https://example.com",
		Website: &model.WebsiteSignal{
			URL:       "https://example.com",
			Reachable: true,
			Age:       model.AgeAncient,
		},
		Rating:      3.2,
		ReviewCount: 2,
	}
	out := Opportunities(in)

	assert.LessOrEqual(t, len(out), MaxOpportunities)
	assertNoDuplicates(t, out)
}

func TestOpportunitiesNoWebsiteLeadsWithAcquisition(t *testing.T) {
	in := Input{Industry: model.IndustrySalon, HasWebsite: false, HasPhone: true, Rating: 4.5, ReviewCount: 10}
	out := Opportunities(in)

	assert.NotEmpty(t, out)
	assert.Contains(t, strings.ToLower(out[0]), "website")
}

func TestOpportunitiesSocialOnly(t *testing.T) {
	in := Input{HasWebsite: true, WebsiteURL: "https://facebook.com/biz", HasPhone: true, Rating: 4.5, ReviewCount: 50}
	out := Opportunities(in)

	assert.Contains(t, out[0], "social-media-only")
	for _, s := range out {
		assert.NotContains(t, s, "Build a professional website", "buckets are mutually exclusive")
	}
}

func TestOpportunitiesUnreachableSiteGetsGenericBucket(t *testing.T) {
	in := Input{
		HasWebsite:  true,
		WebsiteURL:  "https://example.com",
		Website:     &model.WebsiteSignal{URL: "https://example.com", Reachable: false, Error: "timeout"},
		HasPhone:    true,
		Rating:      4.9,
		ReviewCount: 99,
	}
	out := Opportunities(in)

	assert.Contains(t, out, "Audit and modernize the existing website")
}

func TestOpportunitiesReputationBuckets(t *testing.T) {
	base := Input{HasWebsite: true, WebsiteURL: "https://example.com", HasPhone: true}

	low := base
	low.Rating = 3.1
	low.ReviewCount = 50
	out := Opportunities(low)
	assert.Contains(t, out, "Improve the average rating by resolving recent complaints")

	few := base
	few.Rating = 4.8
	few.ReviewCount = 3
	out = Opportunities(few)
	assert.Contains(t, out, "Encourage happy customers to leave reviews")
	assert.NotContains(t, out, "Improve the average rating by resolving recent complaints")
}

func TestOpportunitiesIndustryCatalogueSkipsLeadingKeyword(t *testing.T) {
	// A scraped restaurant site missing a blog collects "Publish a blog...";
	// the restaurant catalogue's "Publish the current menu online" shares the
	// leading keyword and must be skipped.
	in := Input{
		Industry:   model.IndustryRestaurant,
		HasWebsite: true,
		WebsiteURL: "https://example.com",
		HasPhone:   true,
		Website: &model.WebsiteSignal{
			URL:               "https://example.com",
			Reachable:         true,
			HasMobileViewport: true,
			HTTPS:             true,
			HasBooking:        true,
			HasLiveChat:       true,
			HasNewsletter:     true,
			SocialCount:       3,
			Age:               model.AgeNew,
		},
		Rating:      4.9,
		ReviewCount: 120,
	}
	out := Opportunities(in)

	assert.Contains(t, out, "Publish a blog to improve local search rankings")
	assert.NotContains(t, out, "Publish the current menu online")
	assert.Contains(t, out, "Enable online ordering or delivery links")
}

func TestOpportunitiesUnknownIndustryUsesDefaultCatalogue(t *testing.T) {
	in := Input{Industry: model.Industry("florist"), HasWebsite: false}
	out := Opportunities(in)

	assert.Contains(t, out, "Collect customer emails for promotions and follow-ups")
}

func TestOpportunitiesPurity(t *testing.T) {
	in := Input{Industry: model.IndustrySalon, HasWebsite: false, Rating: 4.2, ReviewCount: 4}
	assert.Equal(t, Opportunities(in), Opportunities(in))
}

func TestOpportunitiesHealthySiteIsShort(t *testing.T) {
	in := Input{
		Industry:   model.IndustrySalon,
		HasWebsite: true,
		WebsiteURL: "https://example.com",
		HasPhone:   true,
		Website: &model.WebsiteSignal{
			URL:               "https://example.com",
			Reachable:         true,
			HasMobileViewport: true,
			HTTPS:             true,
			HasBooking:        true,
			HasLiveChat:       true,
			HasNewsletter:     true,
			HasBlog:           true,
			SocialCount:       4,
			ModernFramework:   true,
			ModernDesign:      true,
			TechStack:         []string{"React", "Next.js", "Google Analytics"},
			Age:               model.AgeNew,
		},
		Rating:      4.8,
		ReviewCount: 200,
	}
	out := Opportunities(in)

	// Only the industry catalogue remains.
	assert.LessOrEqual(t, len(out), 2)
	assertNoDuplicates(t, out)
}
