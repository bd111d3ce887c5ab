package match

import (
	"testing"

	"go-joblookup/internal/listing"
)

func evalQuery(t *testing.T, q CandidateQuery, l listing.JobListing) bool {
	t.Helper()
	rq := Resolve(q)
	keywords := rq.Keywords.ToSlice()
	if len(keywords) == 0 {
		keywords = []string{""}
	}
	for _, k := range keywords {
		if Matches(l, rq, k) {
			return true
		}
	}
	return false
}

func TestRuleChain(t *testing.T) {
	tests := []struct {
		name     string
		query    CandidateQuery
		listing  listing.JobListing
		expected bool
	}{
		{
			name:     "company filter rejects other companies",
			query:    CandidateQuery{CompanyKeyword: "acme"},
			listing:  listing.JobListing{Company: "Globex", Title: "Seller Etsy"},
			expected: false,
		},
		{
			name:     "company filter is a substring test",
			query:    CandidateQuery{CompanyKeyword: "acme"},
			listing:  listing.JobListing{Company: "ACME Vietnam", Title: "Designer"},
			expected: true,
		},
		{
			name:  "location filter rejects wrong district",
			query: CandidateQuery{JobKeywordRaw: "design", City: "Hà Nội", District: "Cầu Giấy"},
			listing: listing.JobListing{
				Title: "Designer", City: "Hà Nội", District: "Quận Thanh Xuân",
			},
			expected: false,
		},
		{
			name:  "district normalization strips administrative prefix",
			query: CandidateQuery{JobKeywordRaw: "design leader", City: "Hà Nội", District: "Thanh Xuân"},
			listing: listing.JobListing{
				Title: "Design Leader", City: "Hà Nội", District: "Quận Thanh Xuân",
			},
			expected: true,
		},
		{
			name:     "video editor query wants video titles",
			query:    CandidateQuery{JobKeywordRaw: "video editor"},
			listing:  listing.JobListing{Title: "Video Editor POD"},
			expected: true,
		},
		{
			name:     "video editor query rejects media-only titles",
			query:    CandidateQuery{JobKeywordRaw: "video editor"},
			listing:  listing.JobListing{Title: "Media Planner"},
			expected: false,
		},
		{
			name:     "plain video query accepts media titles",
			query:    CandidateQuery{JobKeywordRaw: "video"},
			listing:  listing.JobListing{Title: "Media Planner"},
			expected: true,
		},
		{
			name:     "platform query wants its platform in the title",
			query:    CandidateQuery{JobKeywordRaw: "etsy"},
			listing:  listing.JobListing{Title: "Seller Amazon"},
			expected: false,
		},
		{
			name:     "platform query accepts matching platform",
			query:    CandidateQuery{JobKeywordRaw: "etsy"},
			listing:  listing.JobListing{Title: "Seller Etsy POD"},
			expected: true,
		},
		{
			name:     "seller alone wants seller titles",
			query:    CandidateQuery{JobKeywordRaw: "seller"},
			listing:  listing.JobListing{Title: "Designer"},
			expected: false,
		},
		{
			name:     "seller alone accepts seller titles",
			query:    CandidateQuery{JobKeywordRaw: "seller"},
			listing:  listing.JobListing{Title: "Seller Amazon"},
			expected: true,
		},
		{
			name:     "seller with platform narrows to the platform term",
			query:    CandidateQuery{JobKeywordRaw: "seller etsy"},
			listing:  listing.JobListing{Title: "Seller Amazon"},
			expected: false,
		},
		{
			name:     "seller with platform accepts that platform",
			query:    CandidateQuery{JobKeywordRaw: "seller etsy"},
			listing:  listing.JobListing{Title: "Seller Etsy POD"},
			expected: true,
		},
		{
			name:     "google intent wants google in the title",
			query:    CandidateQuery{JobKeywordRaw: "google ads"},
			listing:  listing.JobListing{Title: "Facebook Ads Executive"},
			expected: false,
		},
		{
			name:     "email intent wants email in the title",
			query:    CandidateQuery{JobKeywordRaw: "email marketing"},
			listing:  listing.JobListing{Title: "Email Marketing Specialist"},
			expected: true,
		},
		{
			name:     "facebook intent rejects google-only titles",
			query:    CandidateQuery{JobKeywordRaw: "facebook ads"},
			listing:  listing.JobListing{Title: "Google Ads Specialist"},
			expected: false,
		},
		{
			name:     "facebook intent accepts facebook titles",
			query:    CandidateQuery{JobKeywordRaw: "facebook ads"},
			listing:  listing.JobListing{Title: "Facebook Ads Executive"},
			expected: true,
		},
		{
			name:     "facebook intent tolerates titles naming no channel",
			query:    CandidateQuery{JobKeywordRaw: "facebook ads"},
			listing:  listing.JobListing{Title: "Marketing Executive"},
			expected: true,
		},
		{
			name:     "non-leader query never sees leadership roles",
			query:    CandidateQuery{JobKeywordRaw: "design"},
			listing:  listing.JobListing{Title: "Design Team Lead"},
			expected: false,
		},
		{
			name:     "leader query wants leadership titles",
			query:    CandidateQuery{JobKeywordRaw: "design leader"},
			listing:  listing.JobListing{Title: "Design Intern"},
			expected: false,
		},
		{
			name:     "leader query accepts leadership titles",
			query:    CandidateQuery{JobKeywordRaw: "design leader"},
			listing:  listing.JobListing{Title: "Design Leader"},
			expected: true,
		},
		{
			name:     "vietnamese leader phrase in the title counts",
			query:    CandidateQuery{JobKeywordRaw: "marketing"},
			listing:  listing.JobListing{Title: "Trưởng nhóm Marketing"},
			expected: false,
		},
		{
			name:     "unconstrained query keeps leadership listings",
			query:    CandidateQuery{},
			listing:  listing.JobListing{Title: "Team Lead Fulfillment"},
			expected: true,
		},
		{
			name:     "literal fallback matches on any token",
			query:    CandidateQuery{JobKeywordRaw: "kế toán"},
			listing:  listing.JobListing{Title: "Nhân viên kế toán"},
			expected: true,
		},
		{
			name:     "literal fallback rejects unrelated titles",
			query:    CandidateQuery{JobKeywordRaw: "kế toán"},
			listing:  listing.JobListing{Title: "Seller Etsy"},
			expected: false,
		},
		{
			name:     "missing title is an empty string and fails harmlessly",
			query:    CandidateQuery{JobKeywordRaw: "design"},
			listing:  listing.JobListing{Company: "ACME"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalQuery(t, tt.query, tt.listing); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
