package match

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"go-joblookup/internal/listing"
)

// Search is the engine's sole public operation: it resolves the query, runs
// the rule chain over the whole catalog once per resolved keyword, unions the
// matches by record identity and returns them. Relevance is binary; no score
// or ranking exists. Identical query and catalog always yield the same result
// set.
func Search(q CandidateQuery, catalog []listing.JobListing) []listing.JobListing {
	rq := Resolve(q)

	keywords := rq.Keywords.ToSlice()
	sort.Strings(keywords)
	if len(keywords) == 0 {
		// the loop still has to run once; the empty keyword is permissive
		keywords = []string{""}
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	results := make([]listing.JobListing, 0)
	for _, k := range keywords {
		for _, l := range catalog {
			if seen.Contains(l.RecordID) {
				continue
			}
			if Matches(l, rq, k) {
				seen.Add(l.RecordID)
				results = append(results, l)
			}
		}
	}
	return results
}
