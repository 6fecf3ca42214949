package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadradar/leadradar/internal/model"
)

func TestIsSocialURL(t *testing.T) {
	assert.True(t, IsSocialURL("https://www.facebook.com/some-salon"))
	assert.True(t, IsSocialURL("instagram.com/barber"))
	assert.True(t, IsSocialURL("https://www.yelp.com/biz/foo"))
	assert.True(t, IsSocialURL("https://x.com/joes"))
	assert.False(t, IsSocialURL("https://www.example-salon.com"))
	// "x.com" must not swallow hosts that merely end in those letters.
	assert.False(t, IsSocialURL("https://joes-salon.wix.com"))
	assert.False(t, IsSocialURL(""))
}

func TestExtractMetaAndViewport(t *testing.T) {
	body := []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <title> Joe's Barber Shop </title>
  <meta name="description" content="Best cuts in town">
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body><form action="/contact"></form>Contact us for appointments</body>
</html>`)

	var sig model.WebsiteSignal
	extract(body, &sig)

	assert.Equal(t, "Joe's Barber Shop", sig.Title)
	assert.Equal(t, "Best cuts in town", sig.Description)
	assert.Equal(t, "en", sig.Language)
	assert.True(t, sig.HasMobileViewport)
	assert.True(t, sig.HasContactForm)
}

func TestExtractTechAndPlatformFlags(t *testing.T) {
	body := []byte(`<html><head>
<link rel="stylesheet" href="/wp-content/themes/old/style.css">
<script src="https://cdn.shopify.com/app.js"></script>
<script src="/js/jquery.min.js"></script>
</head><body></body></html>`)

	var sig model.WebsiteSignal
	extract(body, &sig)

	assert.Contains(t, sig.TechStack, "WordPress")
	assert.Contains(t, sig.TechStack, "Shopify")
	assert.Contains(t, sig.TechStack, "jQuery")
	assert.True(t, sig.IsWordPress)
	assert.True(t, sig.IsShopify)
	assert.False(t, sig.IsWix)
	assert.False(t, sig.ModernFramework)
}

func TestExtractModernFramework(t *testing.T) {
	body := []byte(`<html><body><div id="root" data-reactroot=""></div>
<script src="/_next/static/chunks/main.js"></script></body></html>`)

	var sig model.WebsiteSignal
	extract(body, &sig)

	assert.True(t, sig.ModernFramework)
	assert.Contains(t, sig.TechStack, "React")
	assert.Contains(t, sig.TechStack, "Next.js")
}

func TestExtractFeatureFlags(t *testing.T) {
	body := []byte(`<html><body>
<a href="https://calendly.com/joes">Book now</a>
<script src="https://tawk.to/chat.js"></script>
<div class="newsletter">Subscribe to our newsletter</div>
<a href="/blog">Our blog</a>
<button>Add to cart</button>
</body></html>`)

	var sig model.WebsiteSignal
	extract(body, &sig)

	assert.True(t, sig.HasBooking)
	assert.True(t, sig.HasLiveChat)
	assert.True(t, sig.HasNewsletter)
	assert.True(t, sig.HasBlog)
	assert.True(t, sig.HasEcommerce)
	// No <form> tag, so a contact keyword alone is not enough.
	assert.False(t, sig.HasContactForm)
}

func TestExtractSocialLinksFirstMatchWins(t *testing.T) {
	body := []byte(`<html><body>
<a href="https://www.facebook.com/first">fb one</a>
<a href="https://www.facebook.com/second">fb two</a>
<a href="https://instagram.com/joes">ig</a>
</body></html>`)

	var sig model.WebsiteSignal
	extract(body, &sig)

	assert.Equal(t, 2, sig.SocialCount)
	assert.Equal(t, "https://www.facebook.com/first", sig.SocialLinks["facebook"])
	assert.Equal(t, "https://instagram.com/joes", sig.SocialLinks["instagram"])
}

func TestExtractDefaultsOnEmptyBody(t *testing.T) {
	var sig model.WebsiteSignal
	extract([]byte(""), &sig)

	assert.Empty(t, sig.Title)
	assert.False(t, sig.HasBooking)
	assert.False(t, sig.HasContactForm)
	assert.Equal(t, 0, sig.SocialCount)
	assert.Equal(t, model.AgeUnknown, sig.Age)
}

func TestAgeBucketBoundaries(t *testing.T) {
	year := 2026

	assert.Equal(t, model.AgeNew, ageBucket("© 2026 joe's", year))
	assert.Equal(t, model.AgeNew, ageBucket("copyright 2025", year))
	assert.Equal(t, model.AgeRecent, ageBucket("&copy; 2024", year))
	assert.Equal(t, model.AgeOutdated, ageBucket("© 2022 all rights reserved", year))
	assert.Equal(t, model.AgeAncient, ageBucket("copyright 2019", year))
	assert.Equal(t, model.AgeUnknown, ageBucket("no year here", year))

	// Years outside [2000, current] never match.
	assert.Equal(t, model.AgeUnknown, ageBucket("© 2099", year))
	assert.Equal(t, model.AgeUnknown, ageBucket("copyright 1899", year))

	// Year on the left of the mark also counts.
	assert.Equal(t, model.AgeNew, ageBucket("2026 © joe's barber", year))

	// The most recent valid year wins when several appear.
	assert.Equal(t, model.AgeNew, ageBucket("© 2020 ... © 2026", year))
}
