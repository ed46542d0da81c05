// Package dates extracts a best-guess publication date from search-result
// text.
//
// Patterns are tried in fixed priority order: the French relative phrase
// ("il y a N ans/mois"), the English relative phrase ("N years/months/days
// ago"), then absolute dates with a multilingual month token. The first
// match wins. Absence of a match means the date is unknown, never "recent".
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Extracted pairs a resolved calendar date with the exact substring it was
// parsed from. The substring feeds badge tooltips downstream.
type Extracted struct {
	Date time.Time
	Text string
}

var (
	frenchRelativeRe  = regexp.MustCompile(`(?i)il y a (\d+)\s+(ans?|mois)`)
	englishRelativeRe = regexp.MustCompile(`(?i)(\d+)\s+(years?|months?|days?)\s+ago`)
	absoluteRe        = regexp.MustCompile(`(?i)\b(\d{1,2})?\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|janv|févr|mars|avr|mai|juin|juil|août|sept|déc)[a-zéû]*\.?\s*(\d{1,2})?,?\s*(\d{4})\b`)
)

// Extractor resolves date phrases against an injectable clock. Relative
// arithmetic uses the clock at call time, not construction time.
type Extractor struct {
	Now func() time.Time
}

// New returns an Extractor on the real clock.
func New() *Extractor {
	return &Extractor{Now: time.Now}
}

// Extract returns the first date pattern found in text, or false when no
// pattern matches.
func (e *Extractor) Extract(text string) (*Extracted, bool) {
	if text == "" {
		return nil, false
	}

	if m := frenchRelativeRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		date := e.Now()
		if strings.HasPrefix(strings.ToLower(m[2]), "an") {
			date = date.AddDate(-n, 0, 0)
		} else {
			date = date.AddDate(0, -n, 0)
		}
		return &Extracted{Date: date, Text: m[0]}, true
	}

	if m := englishRelativeRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		date := e.Now()
		switch unit := strings.ToLower(m[2]); {
		case strings.HasPrefix(unit, "year"):
			date = date.AddDate(-n, 0, 0)
		case strings.HasPrefix(unit, "month"):
			date = date.AddDate(0, -n, 0)
		default:
			date = date.AddDate(0, 0, -n)
		}
		return &Extracted{Date: date, Text: m[0]}, true
	}

	if m := absoluteRe.FindStringSubmatch(text); m != nil {
		if date, ok := resolveAbsolute(m); ok {
			return &Extracted{Date: date, Text: m[0]}, true
		}
	}

	return nil, false
}

// resolveAbsolute turns a regex match into a calendar date. A direct parse
// of the matched substring is tried first; the multilingual month table
// handles forms dateparse does not know (French months, prefix variants).
// The day defaults to 1 when absent from both positions.
func resolveAbsolute(m []string) (time.Time, bool) {
	matched := m[0]
	if t, err := dateparse.ParseStrict(strings.TrimSpace(matched)); err == nil {
		return t, true
	}

	month, ok := lookupMonth(m[2])
	if !ok {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(m[4])
	if err != nil {
		return time.Time{}, false
	}

	day := 1
	if m[1] != "" {
		day, _ = strconv.Atoi(m[1])
	} else if m[3] != "" {
		day, _ = strconv.Atoi(m[3])
	}
	if day == 0 {
		day = 1
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}
