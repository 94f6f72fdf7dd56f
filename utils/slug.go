package utils

import (
	"strings"
)

// Turkish diacritics folded to their closest ASCII letter. Both cases are
// mapped before lowercasing: strings.ToLower turns 'İ' into "i" plus a
// combining dot, which would otherwise leak a hyphen into the slug.
var turkishReplacer = strings.NewReplacer(
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ş", "s", "Ş", "s",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ç", "c", "Ç", "c",
)

// Slugify converts a human-readable title into a URL-safe identifier.
// Every maximal run of characters outside [a-z0-9] collapses to a single
// hyphen, with no leading or trailing hyphen. Deterministic, no uniqueness
// guarantee; an entirely non-alphanumeric title yields "".
func Slugify(title string) string {
	lowered := strings.ToLower(turkishReplacer.Replace(title))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}
