package match

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// CandidateQuery is the raw search request, already parsed by the host.
// String fields may be empty but never carry meaning when empty.
type CandidateQuery struct {
	CompanyKeyword string
	JobKeywordRaw  string
	CVKeywords     []string
	City           string
	District       string
}

// ResolvedQuery is the canonical form the rule chain consumes: the expanded
// keyword set plus the derived intent flags.
type ResolvedQuery struct {
	Company  string
	City     string
	District string

	Keywords mapset.Set[string]

	HasLeaderIntent   bool
	HasPlatformIntent bool
	HasVideoIntent    bool
	SpecificIntents   mapset.Set[string]
}

// Resolve turns a raw candidate query into a ResolvedQuery.
//
// CV keywords, when present, are trusted as already-concrete role phrases and
// bypass taxonomy expansion entirely. A free-text query goes through the
// taxonomy; if nothing triggers, its literal tokens become the keyword set so
// an unrecognized query still attempts a literal match instead of matching
// nothing.
func Resolve(q CandidateQuery) *ResolvedQuery {
	rq := &ResolvedQuery{
		Company:         Normalize(q.CompanyKeyword),
		City:            Normalize(q.City),
		District:        NormalizeDistrict(q.District),
		Keywords:        mapset.NewThreadUnsafeSet[string](),
		SpecificIntents: mapset.NewThreadUnsafeSet[string](),
	}

	raw := Normalize(q.JobKeywordRaw)

	if len(q.CVKeywords) > 0 {
		// the raw text is ignored once CV keywords exist, including for the
		// raw-text intent checks below
		raw = ""
		for _, k := range q.CVKeywords {
			if n := Normalize(k); n != "" {
				rq.Keywords.Add(n)
			}
		}
	} else if raw != "" {
		for _, g := range Taxonomy {
			if hasAny(raw, g.Triggers) {
				rq.Keywords.Append(g.SearchTerms...)
			}
		}
		if rq.Keywords.IsEmpty() {
			rq.Keywords.Append(strings.Fields(raw)...)
		}
	}

	rq.HasLeaderIntent = rq.anyKeywordContains(LeaderKeywords) || hasAny(raw, LeaderKeywords)
	rq.HasPlatformIntent = rq.anyKeywordContains(PlatformTerms)
	rq.HasVideoIntent = rq.anyKeywordContains(videoTerms)
	for _, c := range channelIntents {
		if strings.Contains(raw, c) {
			rq.SpecificIntents.Add(c)
		}
	}

	return rq
}

// anyKeywordContains reports whether any resolved keyword contains one of the
// given terms as a substring. Substring, not equality: the CV path hands over
// compound phrases like "seller etsy" as a single keyword.
func (rq *ResolvedQuery) anyKeywordContains(terms []string) bool {
	for _, k := range rq.Keywords.ToSlice() {
		if hasAny(k, terms) {
			return true
		}
	}
	return false
}

// hasTerm reports whether term appears inside any resolved keyword.
func (rq *ResolvedQuery) hasTerm(term string) bool {
	return rq.anyKeywordContains([]string{term})
}

func (rq *ResolvedQuery) isSeller() bool {
	return rq.anyKeywordContains(sellerTerms)
}

// sellerPlatform picks the platform a seller query is narrowed to, if any.
func (rq *ResolvedQuery) sellerPlatform() string {
	for _, p := range sellerPlatforms {
		if rq.hasTerm(p) {
			return p
		}
	}
	return ""
}
