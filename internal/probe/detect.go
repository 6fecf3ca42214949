package probe

import (
	"bytes"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/leadradar/leadradar/internal/model"
)

// socialDomains identify URLs that are social profiles rather than real
// websites. A candidate whose "website" lives on one of these hosts is
// skipped by the prober and scored as social-only.
var socialDomains = []string{
	"facebook.com",
	"instagram.com",
	"twitter.com",
	"x.com",
	"linkedin.com",
	"youtube.com",
	"tiktok.com",
	"pinterest.com",
	"yelp.com",
}

// IsSocialURL reports whether the URL points at a known social-media domain.
func IsSocialURL(raw string) bool {
	for _, d := range socialDomains {
		if onDomain(raw, d) {
			return true
		}
	}
	return false
}

// onDomain matches a URL's host against a domain on label boundaries, so
// "x.com" matches "www.x.com" but never "wix.com".
func onDomain(raw, domain string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(NormalizeURL(strings.ToLower(raw)))
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Hostname()
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// techPattern declares one detectable technology: a label, the substrings
// that reveal it in raw HTML, and an optional flag setter for platforms the
// scoring rules care about individually. Adding a detector means adding a
// row, not a branch.
type techPattern struct {
	label    string
	modern   bool // counts as a modern frontend framework
	patterns []string
	flag     func(*model.WebsiteSignal)
}

var techTable = []techPattern{
	{label: "WordPress", patterns: []string{"wp-content", "wp-includes", "wp-json"},
		flag: func(s *model.WebsiteSignal) { s.IsWordPress = true }},
	{label: "Wix", patterns: []string{"wixstatic.com", "wixsite.com", "wix.com"},
		flag: func(s *model.WebsiteSignal) { s.IsWix = true }},
	{label: "Squarespace", patterns: []string{"squarespace.com", "squarespace-cdn"},
		flag: func(s *model.WebsiteSignal) { s.IsSquarespace = true }},
	{label: "Shopify", patterns: []string{"cdn.shopify.com", "myshopify.com"},
		flag: func(s *model.WebsiteSignal) { s.IsShopify = true }},
	{label: "GoDaddy", patterns: []string{"godaddy.com", "secureserver.net"},
		flag: func(s *model.WebsiteSignal) { s.IsGoDaddy = true }},
	{label: "Webflow", patterns: []string{"webflow.com", "website-files.com"},
		flag: func(s *model.WebsiteSignal) { s.IsWebflow = true }},
	{label: "React", modern: true, patterns: []string{"data-reactroot", "react-dom", "__react"}},
	{label: "Next.js", modern: true, patterns: []string{"_next/static", "__next_data__"}},
	{label: "Vue", modern: true, patterns: []string{"data-v-app", "__vue__", "vue.runtime"}},
	{label: "Nuxt", modern: true, patterns: []string{"__nuxt"}},
	{label: "Angular", modern: true, patterns: []string{"ng-version"}},
	{label: "Svelte", modern: true, patterns: []string{"svelte-"}},
	{label: "jQuery", patterns: []string{"jquery"}},
	{label: "Google Analytics", patterns: []string{"gtag(", "google-analytics.com", "googletagmanager"}},
}

// Feature keyword sets. A flag is set when any pattern appears in the
// lowercased body; every set defaults to absent.
var (
	bookingPatterns = []string{
		"calendly", "booksy", "acuityscheduling", "vagaro", "mindbody",
		"opentable", "resy.com", "squareup.com/appointments",
		"book now", "book online", "book an appointment", "schedule an appointment",
		"make a reservation",
	}
	contactKeywords = []string{
		"contact us", "contact form", "get in touch", "send us a message",
		"inquiry", "enquiry",
	}
	liveChatPatterns = []string{
		"intercom", "tawk.to", "drift.com", "crisp.chat", "tidio",
		"livechat", "zendesk widget", "zopim",
	}
	newsletterPatterns = []string{
		"newsletter", "mc-embedded-subscribe", "mailchimp", "klaviyo",
		"subscribe to our",
	}
	ecommercePatterns = []string{
		"add to cart", "add-to-cart", "woocommerce", "snipcart", "checkout",
	}
	blogPatterns = []string{
		"/blog", "our blog", "latest posts", "from the blog",
	}
	modernDesignPatterns = []string{
		"tailwind", "bootstrap", "chakra", "material-ui", "styled-components",
	}
)

// socialPlatforms is evaluated in a fixed order; only the first matching
// href per platform is kept.
var socialPlatforms = []struct {
	name   string
	domain string
}{
	{"facebook", "facebook.com"},
	{"instagram", "instagram.com"},
	{"twitter", "twitter.com"},
	{"x", "x.com"},
	{"linkedin", "linkedin.com"},
	{"youtube", "youtube.com"},
	{"tiktok", "tiktok.com"},
	{"pinterest", "pinterest.com"},
}

// Copyright notices in both orders: "© 2021" and "2021 ©".
var (
	copyrightYearRe  = regexp.MustCompile(`(?i)(?:©|&copy;|copyright)\D{0,20}?(20\d{2})`)
	yearCopyrightRe  = regexp.MustCompile(`(?i)(20\d{2})\s*(?:©|&copy;|copyright)`)
	minCopyrightYear = 2000
)

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// extract runs every heuristic over the raw body and fills sig in place.
// Extractors are independent and order-insensitive; each defaults to
// false/absent when nothing matches and none of them can fail.
func extract(body []byte, sig *model.WebsiteSignal) {
	lower := strings.ToLower(string(body))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	hasForm := false
	var hrefs []string
	if err == nil {
		sig.Title = strings.TrimSpace(doc.Find("title").First().Text())
		if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
			sig.Description = strings.TrimSpace(desc)
		}
		if lang, ok := doc.Find("html").First().Attr("lang"); ok {
			sig.Language = strings.TrimSpace(lang)
		}
		if vp, ok := doc.Find(`meta[name="viewport"]`).First().Attr("content"); ok {
			sig.HasMobileViewport = strings.Contains(strings.ToLower(vp), "width=device-width")
		}
		hasForm = doc.Find("form").Length() > 0
		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			if href, ok := sel.Attr("href"); ok {
				hrefs = append(hrefs, href)
			}
		})
	}

	for _, t := range techTable {
		if !containsAny(lower, t.patterns) {
			continue
		}
		sig.TechStack = append(sig.TechStack, t.label)
		if t.modern {
			sig.ModernFramework = true
		}
		if t.flag != nil {
			t.flag(sig)
		}
	}

	sig.HasBooking = containsAny(lower, bookingPatterns)
	sig.HasContactForm = hasForm && containsAny(lower, contactKeywords)
	sig.HasLiveChat = containsAny(lower, liveChatPatterns)
	sig.HasNewsletter = containsAny(lower, newsletterPatterns)
	sig.HasEcommerce = containsAny(lower, ecommercePatterns)
	sig.HasBlog = containsAny(lower, blogPatterns)
	sig.ModernDesign = containsAny(lower, modernDesignPatterns)

	sig.SocialLinks = map[string]string{}
	for _, p := range socialPlatforms {
		for _, href := range hrefs {
			if onDomain(href, p.domain) {
				sig.SocialLinks[p.name] = href
				break
			}
		}
	}
	sig.SocialCount = len(sig.SocialLinks)

	sig.Age = ageBucket(lower, time.Now().Year())
}

// ageBucket maps the most recent visible copyright year to a freshness band.
func ageBucket(lower string, currentYear int) model.AgeBucket {
	best := 0
	for _, re := range []*regexp.Regexp{copyrightYearRe, yearCopyrightRe} {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			year, err := strconv.Atoi(m[1])
			if err != nil || year < minCopyrightYear || year > currentYear {
				continue
			}
			if year > best {
				best = year
			}
		}
	}
	if best == 0 {
		return model.AgeUnknown
	}
	switch age := currentYear - best; {
	case age <= 1:
		return model.AgeNew
	case age <= 3:
		return model.AgeRecent
	case age <= 6:
		return model.AgeOutdated
	default:
		return model.AgeAncient
	}
}
