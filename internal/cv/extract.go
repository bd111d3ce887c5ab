package cv

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"go-joblookup/internal/match"
)

// Profile is what a CV boils down to for the match engine: concrete role
// phrases plus the detected location. JobKeywords feed the engine's CV path
// directly, bypassing taxonomy expansion.
type Profile struct {
	JobKeywords []string `json:"jobKeywords"`
	City        string   `json:"city"`
	District    string   `json:"district"`
}

// jobKeywords is ordered most-specific first so a platform seller CV yields
// the platform phrase before the generic "seller".
var jobKeywords = []string{
	"idea",
	"design",
	"designer",
	"seller etsy",
	"seller amazon",
	"seller shopify",
	"seller tiktok",
	"seller ebay",
	"seller facebook",
	"seller website",
	"seller",
	"digital marketing",
	"marketing",
	"customer support",
	"fulfillment",
	"facebook ads",
	"video editor",
	"video",
	"lead",
	"leader",
}

var sellerPlatformPhrases = []string{
	"seller etsy", "seller amazon", "seller shopify",
	"seller tiktok", "seller ebay", "seller facebook", "seller website",
}

var cities = []string{
	"hà nội",
	"hồ chí minh",
	"đà nẵng",
	"cần thơ",
}

// cityAliases map spellings CVs actually use to the canonical city name.
var cityAliases = map[string]string{
	"tp.hcm":  "hồ chí minh",
	"tp hcm":  "hồ chí minh",
	"tphcm":   "hồ chí minh",
	"sài gòn": "hồ chí minh",
}

var districts = []string{
	"nam từ liêm",
	"bắc từ liêm",
	"thanh xuân",
	"cầu giấy",
	"hoàn kiếm",
	"hoàng mai",
	"đống đa",
	"quận 1",
	"quận 3",
	"quận 7",
}

// Extract scans normalized CV text for known role phrases and location names.
// Detection is diacritic-tolerant: "Ha Noi" typed without accents still maps
// to "hà nội".
func Extract(text string) Profile {
	content := match.Normalize(text)
	folded := foldDiacritics(content)

	p := Profile{JobKeywords: []string{}}

	for _, k := range jobKeywords {
		if strings.Contains(content, k) {
			p.JobKeywords = append(p.JobKeywords, k)
		}
	}
	p.JobKeywords = dropGenericSeller(p.JobKeywords)

	for _, c := range cities {
		if strings.Contains(content, c) || strings.Contains(folded, foldDiacritics(c)) {
			p.City = c
			break
		}
	}
	if p.City == "" {
		for alias, c := range cityAliases {
			if strings.Contains(content, alias) {
				p.City = c
				break
			}
		}
	}

	for _, d := range districts {
		if strings.Contains(content, d) || strings.Contains(folded, foldDiacritics(d)) {
			p.District = d
			break
		}
	}

	return p
}

// dropGenericSeller removes the bare "seller" keyword when a platform-specific
// seller phrase was detected, so the engine narrows to the platform instead of
// widening back out to every seller listing.
func dropGenericSeller(keywords []string) []string {
	platformSeller := false
	for _, k := range keywords {
		for _, p := range sellerPlatformPhrases {
			if k == p {
				platformSeller = true
			}
		}
	}
	if !platformSeller {
		return keywords
	}

	out := keywords[:0]
	for _, k := range keywords {
		if k != "seller" {
			out = append(out, k)
		}
	}
	return out
}

// foldDiacritics strips Vietnamese diacritical marks for tolerant comparison.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)
	return strings.ReplaceAll(out, "đ", "d")
}
