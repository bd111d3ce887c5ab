package match

import (
	"strings"

	"go-joblookup/internal/listing"
)

type ruleResult int

const (
	// rulePass means the rule's constraint held; evaluation continues.
	rulePass ruleResult = iota
	// ruleReject ends evaluation; the listing is out.
	ruleReject
	// ruleSkip means the rule does not apply to this query.
	ruleSkip
)

type rule struct {
	name string
	eval func(title string, l listing.JobListing, rq *ResolvedQuery, keyword string) ruleResult
}

// ruleChain is evaluated in order and the order is part of the contract:
// later rules assume the invariants established by earlier ones.
var ruleChain = []rule{
	{"company", ruleCompany},
	{"location", ruleLocation},
	{"exclusivity", ruleExclusivity},
	{"channel-intent", ruleChannelIntent},
	{"leadership", ruleLeadership},
	{"literal", ruleLiteral},
}

// Matches evaluates one listing against the resolved query. keyword is the
// single resolved keyword feeding the literal fallback rule; the keyword set
// and intent flags stay query-global (see Search).
func Matches(l listing.JobListing, rq *ResolvedQuery, keyword string) bool {
	title := Normalize(l.Title)
	for _, r := range ruleChain {
		if r.eval(title, l, rq, keyword) == ruleReject {
			return false
		}
	}
	return true
}

func ruleCompany(_ string, l listing.JobListing, rq *ResolvedQuery, _ string) ruleResult {
	if rq.Company == "" {
		return ruleSkip
	}
	if !strings.Contains(Normalize(l.Company), rq.Company) {
		return ruleReject
	}
	return rulePass
}

func ruleLocation(_ string, l listing.JobListing, rq *ResolvedQuery, _ string) ruleResult {
	if rq.City == "" && rq.District == "" {
		return ruleSkip
	}
	if !MatchLocation(rq.City, rq.District, l.City, l.District, l.Address) {
		return ruleReject
	}
	return rulePass
}

// ruleExclusivity applies exactly one regime, selected by the query intents.
// A "video editor" query wants video titles only; a video query without
// platform intent accepts video or media titles; a seller query alone wants
// seller titles but narrows to the platform term once a platform is named;
// and a platform query wants that platform in the title.
func ruleExclusivity(title string, _ listing.JobListing, rq *ResolvedQuery, _ string) ruleResult {
	switch {
	case rq.hasTerm("video editor"):
		if !strings.Contains(title, "video") {
			return ruleReject
		}
	case rq.HasVideoIntent && !rq.HasPlatformIntent:
		if !strings.Contains(title, "video") && !strings.Contains(title, "media") {
			return ruleReject
		}
	case rq.isSeller():
		if p := rq.sellerPlatform(); p != "" {
			if !strings.Contains(title, p) {
				return ruleReject
			}
		} else if !strings.Contains(title, "seller") {
			return ruleReject
		}
	case rq.HasPlatformIntent:
		if !rq.platformTermInTitle(title) {
			return ruleReject
		}
	default:
		return ruleSkip
	}
	return rulePass
}

// platformTermInTitle reports whether some platform named by the query also
// appears in the listing title.
func (rq *ResolvedQuery) platformTermInTitle(title string) bool {
	for _, p := range PlatformTerms {
		if rq.hasTerm(p) && strings.Contains(title, p) {
			return true
		}
	}
	return false
}

// ruleChannelIntent disambiguates the overlapping marketing channels. Google
// and email intents demand their channel in the title. Facebook intent also
// accepts titles naming no channel at all, but rejects google- or email-only
// listings. The asymmetry is inherited behavior, kept as observed.
func ruleChannelIntent(title string, _ listing.JobListing, rq *ResolvedQuery, _ string) ruleResult {
	if rq.SpecificIntents.IsEmpty() {
		return ruleSkip
	}
	if rq.SpecificIntents.Contains("google") && !strings.Contains(title, "google") {
		return ruleReject
	}
	if rq.SpecificIntents.Contains("email") && !strings.Contains(title, "email") {
		return ruleReject
	}
	if rq.SpecificIntents.Contains("facebook") && !strings.Contains(title, "facebook") {
		if strings.Contains(title, "google") || strings.Contains(title, "email") {
			return ruleReject
		}
	}
	return rulePass
}

// ruleLeadership keeps leadership roles and non-leader candidates apart, in
// both directions. An unconstrained query (no keywords at all) skips the rule
// so it does not silently hide leadership listings.
func ruleLeadership(title string, _ listing.JobListing, rq *ResolvedQuery, _ string) ruleResult {
	if rq.Keywords.IsEmpty() {
		return ruleSkip
	}
	listingLeads := hasAny(title, LeaderKeywords)
	if listingLeads != rq.HasLeaderIntent {
		return ruleReject
	}
	return rulePass
}

// ruleLiteral is the fallback: it only runs when no specialized regime above
// consumed the decision. The empty keyword is always permissive.
func ruleLiteral(title string, _ listing.JobListing, rq *ResolvedQuery, keyword string) ruleResult {
	if rq.HasPlatformIntent || rq.HasVideoIntent || rq.HasLeaderIntent || rq.isSeller() {
		return ruleSkip
	}
	if keyword == "" {
		return rulePass
	}
	for _, tok := range strings.Fields(keyword) {
		if strings.Contains(title, tok) {
			return rulePass
		}
	}
	return ruleReject
}
