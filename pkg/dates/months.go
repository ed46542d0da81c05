package dates

import (
	"strings"
	"time"
)

// monthNames maps English and French month names and abbreviations to their
// calendar month. Tokens are matched case-insensitively by prefix in either
// direction, so "sept" matches "september" and "september" matches "sep".
var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January, "janv": time.January,
	"feb": time.February, "february": time.February, "févr": time.February, "fevr": time.February,
	"mar": time.March, "march": time.March, "mars": time.March,
	"apr": time.April, "april": time.April, "avr": time.April,
	"may": time.May, "mai": time.May,
	"jun": time.June, "june": time.June, "juin": time.June,
	"jul": time.July, "july": time.July, "juil": time.July,
	"aug": time.August, "august": time.August, "août": time.August, "aout": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December, "déc": time.December,
}

// lookupMonth resolves a month token from the multilingual table. The token
// is lowercased and stripped of trailing dots before prefix matching.
func lookupMonth(token string) (time.Month, bool) {
	token = strings.ToLower(strings.ReplaceAll(token, ".", ""))
	if token == "" {
		return 0, false
	}
	for name, month := range monthNames {
		if strings.HasPrefix(token, name) || strings.HasPrefix(name, token) {
			return month, true
		}
	}
	return 0, false
}
