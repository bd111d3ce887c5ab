package match

import "strings"

// MatchLocation decides whether a listing address/city/district satisfies the
// candidate's location constraint. cityQuery and districtQuery must already be
// normalized (district via NormalizeDistrict); the listing side is normalized
// here. Every check is a substring test, never equality, because the store
// keeps compound strings like "Thanh Xuân, Hà Nội".
func MatchLocation(cityQuery, districtQuery, listingCity, listingDistrict, listingAddress string) bool {
	city := Normalize(listingCity)
	district := NormalizeDistrict(listingDistrict)
	address := Normalize(listingAddress)

	// remote/freelance listings are location-agnostic; only an explicit city
	// constraint still applies, the district never does
	if strings.Contains(address, "remote") || strings.Contains(address, "freelancer") {
		if cityQuery != "" {
			return strings.Contains(city, cityQuery)
		}
		return true
	}

	switch {
	case cityQuery != "" && districtQuery != "":
		return strings.Contains(city, cityQuery) && strings.Contains(district, districtQuery)
	case districtQuery != "":
		return strings.Contains(district, districtQuery)
	case cityQuery != "":
		return strings.Contains(city, cityQuery)
	}

	return true
}
