package model

// ScoreBreakdown holds one integer contribution per scoring rule. Total is
// always the arithmetic sum of the other fields and every field is >= 0.
//
// Within layer 1 at most one of NoWebsite/SocialOnly is nonzero, and the
// implied booking gap is granted at most once per business: when layer 1
// contributes, layer 4 must leave MissingBooking at zero.
type ScoreBreakdown struct {
	// Layer 1: presence
	NoWebsite  int `json:"no_website"`
	SocialOnly int `json:"social_only"`
	NoPhone    int `json:"no_phone"`

	// Layer 2: directory profile quality
	FewPhotos  int `json:"few_photos"`
	FewReviews int `json:"few_reviews"`
	HiddenGem  int `json:"hidden_gem"`

	// Layer 3: technical health
	LowPerformance    int `json:"low_performance"`
	NotMobileFriendly int `json:"not_mobile_friendly"`
	NoHTTPS           int `json:"no_https"`
	UnverifiedSite    int `json:"unverified_site"`

	// Layer 4: website opportunity signals
	OutdatedSite     int `json:"outdated_site"`
	MissingBooking   int `json:"missing_booking"`
	NoSocialPresence int `json:"no_social_presence"`
	BasicTechStack   int `json:"basic_tech_stack"`

	Total int `json:"total"`
}

// Sum recomputes the total from the individual fields. Score assembly sets
// Total = Sum(); tests use it to assert the invariant.
func (b ScoreBreakdown) Sum() int {
	return b.NoWebsite + b.SocialOnly + b.NoPhone +
		b.FewPhotos + b.FewReviews + b.HiddenGem +
		b.LowPerformance + b.NotMobileFriendly + b.NoHTTPS + b.UnverifiedSite +
		b.OutdatedSite + b.MissingBooking + b.NoSocialPresence + b.BasicTechStack
}

// SearchResult is one scored business, assembled once per search call and
// immutable afterwards.
type SearchResult struct {
	ID            string             `json:"id"`
	Candidate     Candidate          `json:"candidate"`
	Industry      Industry           `json:"industry"`
	Website       *WebsiteSignal     `json:"website,omitempty"`
	Performance   *PerformanceSignal `json:"performance,omitempty"`
	Score         ScoreBreakdown     `json:"score"`
	Opportunities []string           `json:"opportunities"`
}
