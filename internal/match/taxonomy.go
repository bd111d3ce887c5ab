package match

// KeywordGroup is one taxonomy entry: trigger phrases activate the group when
// found in the raw query text, search terms are what gets tested against
// listing titles. SearchTerms must never be empty.
type KeywordGroup struct {
	Name        string
	Triggers    []string
	SearchTerms []string
}

// Taxonomy is the fixed, ordered keyword table. Membership is exhaustive but
// not partitioned: one query phrase may activate several groups at once
// ("seller etsy" activates both seller and etsy).
var Taxonomy = []KeywordGroup{
	{Name: "design", Triggers: []string{"design", "designer"}, SearchTerms: []string{"design", "designer"}},
	{Name: "etsy", Triggers: []string{"etsy"}, SearchTerms: []string{"etsy"}},
	{Name: "amazon", Triggers: []string{"amazon"}, SearchTerms: []string{"amazon"}},
	{Name: "ebay", Triggers: []string{"ebay"}, SearchTerms: []string{"ebay"}},
	{Name: "tiktok", Triggers: []string{"tiktok", "tiktok shop"}, SearchTerms: []string{"tiktok"}},
	{Name: "shopify", Triggers: []string{"shopify", "website", "web"}, SearchTerms: []string{"shopify"}},
	{Name: "marketing", Triggers: []string{"facebook", "ads", "marketing", "digital marketing", "performance"}, SearchTerms: []string{"facebook", "ads", "marketing"}},
	{Name: "google-ads", Triggers: []string{"google ads", "google"}, SearchTerms: []string{"google"}},
	{Name: "email-marketing", Triggers: []string{"email marketing", "email"}, SearchTerms: []string{"email"}},
	{Name: "video", Triggers: []string{"video", "media", "content"}, SearchTerms: []string{"video", "media"}},
	{Name: "video-editor", Triggers: []string{"video editor"}, SearchTerms: []string{"video editor"}},
	{Name: "seller", Triggers: []string{"seller"}, SearchTerms: []string{"seller"}},
	{Name: "seller-pod", Triggers: []string{"seller pod", "pod"}, SearchTerms: []string{"pod"}},
	{Name: "fulfillment", Triggers: []string{"fulfill", "fulfillment"}, SearchTerms: []string{"fulfillment"}},
	{Name: "customer-support", Triggers: []string{"customer support", "supporter"}, SearchTerms: []string{"customer support", "supporter"}},
	{Name: "idea", Triggers: []string{"idea"}, SearchTerms: []string{"idea"}},
}

// LeaderKeywords flag leadership roles in both queries and listing titles.
var LeaderKeywords = []string{"lead", "leader", "trưởng nhóm", "team lead"}

// PlatformTerms are the marketplace platforms that carry platform intent.
var PlatformTerms = []string{"etsy", "amazon", "ebay", "tiktok", "shopify"}

// sellerPlatforms is the wider platform list the seller refinement recognizes.
// Facebook shops count here even though facebook carries no platform intent.
var sellerPlatforms = []string{"etsy", "amazon", "ebay", "tiktok", "shopify", "facebook"}

var videoTerms = []string{"video", "media", "video editor"}

var sellerTerms = []string{"seller"}

// channelIntents are checked directly against the raw query text, not against
// the expanded keyword set.
var channelIntents = []string{"google", "email", "facebook"}
