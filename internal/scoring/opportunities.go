package scoring

import (
	"strings"

	"github.com/leadradar/leadradar/internal/model"
	"github.com/leadradar/leadradar/internal/probe"
)

// MaxOpportunities caps the recommendation list per business.
const MaxOpportunities = 8

const (
	lowRatingThreshold = 4.0
	wantReviewsAtLeast = 10
)

// industryCatalogue holds fixed per-industry suggestions appended after the
// signal-driven buckets. Entries whose leading keyword already appears in
// the collected list are skipped.
var industryCatalogue = map[model.Industry][]string{
	model.IndustrySalon: {
		"Showcase a before-and-after photo gallery",
		"Offer online gift cards for salon services",
	},
	model.IndustryBarber: {
		"Publish price lists for common cuts online",
		"Showcase the shop and recent work in a photo gallery",
	},
	model.IndustryDentist: {
		"Offer downloadable patient intake forms",
		"Publish accepted insurance providers online",
	},
	model.IndustryRestaurant: {
		"Publish the current menu online",
		"Enable online ordering or delivery links",
	},
	model.IndustryCafe: {
		"Publish the current menu online",
		"Promote loyalty offers to repeat customers",
	},
	model.IndustryFitness: {
		"Publish the class schedule online",
		"Offer a trial-pass signup form",
	},
	model.IndustryAutoRepair: {
		"Offer online service quotes",
		"Publish typical repair turnaround times",
	},
	model.IndustryOther: {
		"Claim and complete the business profile on major directories",
		"Collect customer emails for promotions and follow-ups",
	},
}

// Opportunities produces an ordered, deduplicated recommendation list for
// one business, capped at MaxOpportunities. Pure: identical inputs yield
// identical lists.
func Opportunities(in Input) []string {
	var out []string

	socialOnly := in.HasWebsite && probe.IsSocialURL(in.WebsiteURL)
	scraped := in.Website != nil && in.Website.Reachable

	// Website presence bucket; mutually exclusive variants.
	switch {
	case !in.HasWebsite:
		out = append(out,
			"Build a professional website to capture local search traffic",
			"Add the new website to the business directory profile",
		)
	case socialOnly:
		out = append(out,
			"Replace the social-media-only presence with a dedicated website",
			"Keep social profiles but point them at the new website",
		)
	case scraped:
		w := in.Website
		if w.Age == model.AgeOutdated || w.Age == model.AgeAncient {
			out = append(out, "Refresh the outdated website design and content")
		}
		if !w.HasMobileViewport {
			out = append(out, "Make the website mobile-friendly")
		}
		if w.DatedCMS() && !w.ModernDesign {
			out = append(out, "Rebuild the dated CMS site on a modern platform")
		}
		if !w.HasBooking {
			out = append(out, "Add online booking so customers can schedule 24/7")
		}
		if !w.HasLiveChat {
			out = append(out, "Add live chat to capture visitor questions")
		}
		if !w.HasNewsletter {
			out = append(out, "Start a newsletter signup to build a customer list")
		}
		if !w.HasBlog {
			out = append(out, "Publish a blog to improve local search rankings")
		}
		if w.SocialCount == 0 {
			out = append(out, "Link social media profiles from the website")
		}
		if !w.HTTPS {
			out = append(out, "Secure the website with HTTPS")
		}
	default:
		// A website exists but could not be scraped; recommend generically.
		out = append(out, "Audit and modernize the existing website")
	}

	if !in.HasPhone {
		out = append(out, "Add a phone number to the business listing")
	}

	// Reputation bucket: rating first, review volume second.
	if in.Rating > 0 && in.Rating < lowRatingThreshold {
		out = append(out, "Improve the average rating by resolving recent complaints")
	} else if in.ReviewCount < wantReviewsAtLeast {
		out = append(out, "Encourage happy customers to leave reviews")
	}

	catalogue, ok := industryCatalogue[in.Industry]
	if !ok {
		catalogue = industryCatalogue[model.IndustryOther]
	}
	for _, entry := range catalogue {
		if leadingKeywordPresent(out, entry) {
			continue
		}
		out = append(out, entry)
	}

	return dedupeAndCap(out, MaxOpportunities)
}

// leadingKeywordPresent approximates duplicate detection: a catalogue entry
// is skipped when its first word already appears in a collected string.
func leadingKeywordPresent(collected []string, entry string) bool {
	fields := strings.Fields(strings.ToLower(entry))
	if len(fields) == 0 {
		return true
	}
	keyword := fields[0]
	for _, s := range collected {
		if strings.Contains(strings.ToLower(s), keyword) {
			return true
		}
	}
	return false
}

func dedupeAndCap(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}
