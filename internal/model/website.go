package model

import "time"

// AgeBucket places a website's last visible copyright year into a coarse
// freshness band.
type AgeBucket string

const (
	AgeNew      AgeBucket = "new"      // <= 1 year old
	AgeRecent   AgeBucket = "recent"   // <= 3 years old
	AgeOutdated AgeBucket = "outdated" // <= 6 years old
	AgeAncient  AgeBucket = "ancient"  // > 6 years old
	AgeUnknown  AgeBucket = "unknown"  // no parsable copyright year
)

// WebsiteSignal is the evidence extracted from one fetch of a business
// website. It is either fully populated (Reachable=true) or left at zero
// values with Error set; extractor results are never mixed with stale state.
type WebsiteSignal struct {
	URL       string        `json:"url"`
	Reachable bool          `json:"reachable"`
	Skipped   bool          `json:"skipped"` // social-media URL, never fetched
	LoadTime  time.Duration `json:"load_time"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`

	TechStack       []string `json:"tech_stack,omitempty"`
	IsWordPress     bool     `json:"is_wordpress"`
	IsWix           bool     `json:"is_wix"`
	IsSquarespace   bool     `json:"is_squarespace"`
	IsShopify       bool     `json:"is_shopify"`
	IsGoDaddy       bool     `json:"is_godaddy"`
	IsWebflow       bool     `json:"is_webflow"`
	ModernFramework bool     `json:"modern_framework"`

	HasBooking     bool `json:"has_booking"`
	HasContactForm bool `json:"has_contact_form"`
	HasLiveChat    bool `json:"has_live_chat"`
	HasNewsletter  bool `json:"has_newsletter"`
	HasEcommerce   bool `json:"has_ecommerce"`
	HasBlog        bool `json:"has_blog"`

	SocialLinks map[string]string `json:"social_links,omitempty"`
	SocialCount int               `json:"social_count"`

	HasMobileViewport bool      `json:"has_mobile_viewport"`
	HTTPS             bool      `json:"https"`
	ModernDesign      bool      `json:"modern_design"`
	Age               AgeBucket `json:"age"`

	SSLIssue bool   `json:"ssl_issue"`
	Error    string `json:"error,omitempty"`
}

// DatedCMS reports whether the site runs on a page-builder or CMS platform
// commonly found on long-unmaintained small-business sites.
func (w WebsiteSignal) DatedCMS() bool {
	return w.IsWordPress || w.IsWix || w.IsGoDaddy
}
