package match

import "strings"

// Normalize lower-cases, trims, and collapses internal whitespace.
// Diacritics are preserved; absent input yields "".
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Administrative prefixes that district values carry inconsistently in the store.
var districtPrefixes = []string{"quận", "huyện", "thị xã"}

// NormalizeDistrict normalizes and strips the leading administrative token so
// that "Quận Thanh Xuân" and "Thanh Xuân" compare equal.
func NormalizeDistrict(s string) string {
	d := Normalize(s)
	for _, p := range districtPrefixes {
		if d == p {
			return ""
		}
		if strings.HasPrefix(d, p+" ") {
			return strings.TrimSpace(strings.TrimPrefix(d, p))
		}
	}
	return d
}

// hasAny reports whether text contains any of the keywords as a substring.
func hasAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(text, k) {
			return true
		}
	}
	return false
}
