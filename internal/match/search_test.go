package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-joblookup/internal/listing"
)

func testCatalog() []listing.JobListing {
	return []listing.JobListing{
		{RecordID: "rec1", Company: "ACME", Title: "Seller Etsy POD", City: "Hà Nội", District: "Quận Thanh Xuân"},
		{RecordID: "rec2", Company: "Globex", Title: "Seller Amazon", City: "Hà Nội", District: "Quận Cầu Giấy"},
		{RecordID: "rec3", Company: "Initech", Title: "Video Editor", Address: "Remote"},
		{RecordID: "rec4", Company: "Umbrella", Title: "Design Leader", City: "Hà Nội", District: "Quận Thanh Xuân"},
		{RecordID: "rec5", Company: "Hooli", Title: "Facebook Ads Executive", City: "Hồ Chí Minh", District: "Quận 1"},
		{RecordID: "rec6", Company: "Hooli", Title: "Google Ads Specialist", City: "Hồ Chí Minh", District: "Quận 1"},
	}
}

func recordIDs(results []listing.JobListing) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.RecordID)
	}
	return ids
}

func TestSearchEmptyQueryReturnsWholeCatalog(t *testing.T) {
	catalog := testCatalog()

	results := Search(CandidateQuery{}, catalog)

	assert.Equal(t, catalog, results)
}

func TestSearchCompanyFilterWithNoMatchIsEmpty(t *testing.T) {
	results := Search(CandidateQuery{CompanyKeyword: "nonexistent"}, testCatalog())

	assert.Empty(t, results)
}

func TestSearchSellerEtsyScenario(t *testing.T) {
	catalog := []listing.JobListing{
		{RecordID: "a", Company: "A", Title: "Seller Etsy POD"},
		{RecordID: "b", Company: "B", Title: "Seller Amazon"},
	}

	results := Search(CandidateQuery{JobKeywordRaw: "seller etsy"}, catalog)

	assert.Equal(t, []string{"a"}, recordIDs(results))
}

func TestSearchFacebookAdsScenario(t *testing.T) {
	results := Search(CandidateQuery{JobKeywordRaw: "facebook ads"}, testCatalog())

	assert.ElementsMatch(t, []string{"rec5"}, recordIDs(results))
}

func TestSearchDistrictNormalizationScenario(t *testing.T) {
	results := Search(CandidateQuery{
		JobKeywordRaw: "design leader",
		City:          "Hà Nội",
		District:      "Thanh Xuân",
	}, testCatalog())

	assert.ElementsMatch(t, []string{"rec4"}, recordIDs(results))
}

func TestSearchVideoEditorOnlyVideoTitles(t *testing.T) {
	results := Search(CandidateQuery{CVKeywords: []string{"video editor"}}, testCatalog())

	assert.ElementsMatch(t, []string{"rec3"}, recordIDs(results))
}

func TestSearchNoLeaderIntentHidesLeadershipRoles(t *testing.T) {
	results := Search(CandidateQuery{JobKeywordRaw: "design"}, testCatalog())

	for _, r := range results {
		assert.False(t, hasAny(Normalize(r.Title), LeaderKeywords),
			"leadership listing %s leaked into a non-leader query", r.RecordID)
	}
}

func TestSearchDeduplicatesOverlappingKeywords(t *testing.T) {
	catalog := []listing.JobListing{
		{RecordID: "dup", Title: "Nhân viên kho vận hành"},
	}

	// both tokens of an unrecognized query hit the same listing
	results := Search(CandidateQuery{JobKeywordRaw: "kho vận"}, catalog)

	assert.Equal(t, []string{"dup"}, recordIDs(results))
}

func TestSearchCVKeywordsUnionAcrossKeywords(t *testing.T) {
	catalog := []listing.JobListing{
		{RecordID: "d", Title: "Designer"},
		{RecordID: "f", Title: "Fulfillment Staff"},
		{RecordID: "x", Title: "Kế toán"},
	}

	results := Search(CandidateQuery{CVKeywords: []string{"designer", "fulfillment"}}, catalog)

	assert.ElementsMatch(t, []string{"d", "f"}, recordIDs(results))
}

func TestSearchIsDeterministic(t *testing.T) {
	catalog := testCatalog()
	q := CandidateQuery{JobKeywordRaw: "seller etsy amazon"}

	first := Search(q, catalog)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Search(q, catalog))
	}
}

func TestSearchRemoteListingIgnoresDistrict(t *testing.T) {
	results := Search(CandidateQuery{
		JobKeywordRaw: "video editor",
		City:          "",
		District:      "Cầu Giấy",
	}, testCatalog())

	// rec3 is remote: the district constraint does not apply to it
	assert.ElementsMatch(t, []string{"rec3"}, recordIDs(results))
}
