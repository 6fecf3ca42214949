package scoring

import (
	"github.com/leadradar/leadradar/internal/model"
	"github.com/leadradar/leadradar/internal/probe"
)

// Input aggregates everything known about one business before scoring.
type Input struct {
	Industry    model.Industry
	PhotoCount  int
	HasWebsite  bool
	WebsiteURL  string
	HasPhone    bool
	Rating      float64
	ReviewCount int

	Website     *model.WebsiteSignal
	Performance *model.PerformanceSignal
}

// Point values and thresholds for every rule. Fixed, auditable arithmetic:
// no weights are learned or tuned at runtime.
const (
	pointsNoWebsite  = 30 // dominant: implies every downstream deficiency
	pointsSocialOnly = 25
	pointsNoPhone    = 10

	pointsFewPhotos      = 8
	pointsVeryFewReviews = 10
	pointsFewReviews     = 6
	pointsHiddenGem      = 7

	pointsLowPerformance    = 8
	pointsNotMobileFriendly = 7
	pointsNoHTTPS           = 6
	pointsUnverifiedSite    = 4

	pointsOutdatedSite     = 6
	pointsMissingBooking   = 8
	pointsNoSocialPresence = 4
	pointsBasicTechStack   = 5

	fewPhotosThreshold      = 3
	veryFewReviewsThreshold = 5
	fewReviewsThreshold     = 20
	hiddenGemRating         = 4.5
	hiddenGemReviews        = 15
	lowPerformanceScore     = 50
)

// bookingRelevant lists the industries where a missing online booking
// capability is a scoring signal.
var bookingRelevant = map[model.Industry]bool{
	model.IndustrySalon:      true,
	model.IndustryBarber:     true,
	model.IndustrySpa:        true,
	model.IndustryDentist:    true,
	model.IndustryDoctor:     true,
	model.IndustryChiro:      true,
	model.IndustryRestaurant: true,
	model.IndustryCafe:       true,
	model.IndustryFitness:    true,
	model.IndustryAutoRepair: true,
}

// BookingRelevant reports whether online booking matters for the industry.
func BookingRelevant(industry model.Industry) bool {
	return bookingRelevant[industry]
}

// Score computes the layered opportunity breakdown for one business.
// Deterministic and pure: identical inputs always produce identical
// breakdowns, and Total always equals the sum of the individual fields.
func Score(in Input) model.ScoreBreakdown {
	var b model.ScoreBreakdown

	socialOnly := in.HasWebsite && probe.IsSocialURL(in.WebsiteURL)
	realSite := in.HasWebsite && !socialOnly
	scraped := in.Website != nil && in.Website.Reachable

	// Layer 1: presence. No-website and social-only are mutually exclusive;
	// either one already implies the booking gap scored in layer 4.
	impliedBookingGap := false
	if !in.HasWebsite {
		b.NoWebsite = pointsNoWebsite
		impliedBookingGap = true
	} else if socialOnly {
		b.SocialOnly = pointsSocialOnly
		impliedBookingGap = true
	}
	if !in.HasPhone {
		b.NoPhone = pointsNoPhone
	}

	// Layer 2: directory profile quality.
	if in.PhotoCount < fewPhotosThreshold {
		b.FewPhotos = pointsFewPhotos
	}
	if in.ReviewCount < veryFewReviewsThreshold {
		b.FewReviews = pointsVeryFewReviews
	} else if in.ReviewCount < fewReviewsThreshold {
		b.FewReviews = pointsFewReviews
	}
	if in.Rating >= hiddenGemRating && in.ReviewCount < hiddenGemReviews {
		b.HiddenGem = pointsHiddenGem
	}

	// Layer 3: technical health, only when a real non-social website exists.
	// Performance data wins; a reachable scrape is the reduced fallback; a
	// website nobody could verify gets one small assume-imperfect penalty.
	if realSite {
		switch {
		case in.Performance != nil && !in.Performance.Err:
			if in.Performance.Score < lowPerformanceScore {
				b.LowPerformance = pointsLowPerformance
			}
			if !in.Performance.MobileFriendly {
				b.NotMobileFriendly = pointsNotMobileFriendly
			}
			if !in.Performance.HTTPS {
				b.NoHTTPS = pointsNoHTTPS
			}
		case scraped:
			if !in.Website.HasMobileViewport {
				b.NotMobileFriendly = pointsNotMobileFriendly
			}
			if !in.Website.HTTPS {
				b.NoHTTPS = pointsNoHTTPS
			}
		default:
			b.UnverifiedSite = pointsUnverifiedSite
		}
	}

	// Layer 4: website opportunity signals, only when the scrape succeeded.
	if scraped {
		if in.Website.Age == model.AgeOutdated || in.Website.Age == model.AgeAncient {
			b.OutdatedSite = pointsOutdatedSite
		}
		if BookingRelevant(in.Industry) && !in.Website.HasBooking && !impliedBookingGap {
			b.MissingBooking = pointsMissingBooking
		}
		if in.Website.SocialCount == 0 {
			b.NoSocialPresence = pointsNoSocialPresence
		}
		if basicTechStack(in.Website) {
			b.BasicTechStack = pointsBasicTechStack
		}
	}

	b.Total = b.Sum()
	return b
}

// basicTechStack flags sites with no modern framework and either a dated CMS
// without modern design touches or an almost-empty technology list.
func basicTechStack(w *model.WebsiteSignal) bool {
	if w.ModernFramework {
		return false
	}
	return (w.DatedCMS() && !w.ModernDesign) || len(w.TechStack) <= 1
}
