package dates

import (
	"testing"
	"time"
)

// fixedClock pins "today" so relative-date arithmetic is deterministic.
func fixedClock() time.Time {
	return time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
}

func newFixedExtractor() *Extractor {
	return &Extractor{Now: fixedClock}
}

func TestExtract_EnglishRelative(t *testing.T) {
	e := newFixedExtractor()

	tests := []struct {
		text     string
		want     time.Time
		wantText string
	}{
		{"posted 3 years ago by admin", fixedClock().AddDate(-3, 0, 0), "3 years ago"},
		{"1 year ago", fixedClock().AddDate(-1, 0, 0), "1 year ago"},
		{"updated 6 months ago", fixedClock().AddDate(0, -6, 0), "6 months ago"},
		{"2 days ago - forum thread", fixedClock().AddDate(0, 0, -2), "2 days ago"},
	}

	for _, tt := range tests {
		got, ok := e.Extract(tt.text)
		if !ok {
			t.Errorf("Extract(%q) found nothing", tt.text)
			continue
		}
		if !got.Date.Equal(tt.want) {
			t.Errorf("Extract(%q).Date = %v, want %v", tt.text, got.Date, tt.want)
		}
		if got.Text != tt.wantText {
			t.Errorf("Extract(%q).Text = %q, want %q", tt.text, got.Text, tt.wantText)
		}
	}
}

func TestExtract_FrenchRelative(t *testing.T) {
	e := newFixedExtractor()

	tests := []struct {
		text     string
		want     time.Time
		wantText string
	}{
		{"publié il y a 2 ans", fixedClock().AddDate(-2, 0, 0), "il y a 2 ans"},
		{"il y a 1 an", fixedClock().AddDate(-1, 0, 0), "il y a 1 an"},
		{"il y a 8 mois environ", fixedClock().AddDate(0, -8, 0), "il y a 8 mois"},
	}

	for _, tt := range tests {
		got, ok := e.Extract(tt.text)
		if !ok {
			t.Errorf("Extract(%q) found nothing", tt.text)
			continue
		}
		if !got.Date.Equal(tt.want) {
			t.Errorf("Extract(%q).Date = %v, want %v", tt.text, got.Date, tt.want)
		}
		if got.Text != tt.wantText {
			t.Errorf("Extract(%q).Text = %q, want %q", tt.text, got.Text, tt.wantText)
		}
	}
}

func TestExtract_AbsoluteDates(t *testing.T) {
	e := newFixedExtractor()

	tests := []struct {
		text      string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{"Mar 3, 2020 - plain factual recap", 2020, time.March, 3},
		{"published January 15, 2019", 2019, time.January, 15},
		{"3 mars 2020", 2020, time.March, 3},
		{"mis à jour le 12 juillet 2018", 2018, time.July, 12},
		{"Aug 2021 archive", 2021, time.August, 1},   // day defaults to 1
		{"déc. 2017", 2017, time.December, 1},
		{"5 sept. 2022", 2022, time.September, 5},
	}

	for _, tt := range tests {
		got, ok := e.Extract(tt.text)
		if !ok {
			t.Errorf("Extract(%q) found nothing", tt.text)
			continue
		}
		y, m, d := got.Date.Date()
		if y != tt.wantYear || m != tt.wantMonth || d != tt.wantDay {
			t.Errorf("Extract(%q) = %04d-%02d-%02d, want %04d-%02d-%02d",
				tt.text, y, int(m), d, tt.wantYear, int(tt.wantMonth), tt.wantDay)
		}
	}
}

func TestExtract_PriorityOrder(t *testing.T) {
	e := newFixedExtractor()

	// Relative phrases win over absolute dates appearing earlier in the
	// text, and French relative wins over English relative.
	got, ok := e.Extract("Mar 3, 2020 but posted 2 years ago")
	if !ok {
		t.Fatal("Extract() found nothing")
	}
	if got.Text != "2 years ago" {
		t.Errorf("Extract().Text = %q, want %q (relative beats absolute)", got.Text, "2 years ago")
	}

	got, ok = e.Extract("5 years ago ou il y a 2 ans")
	if !ok {
		t.Fatal("Extract() found nothing")
	}
	if got.Text != "il y a 2 ans" {
		t.Errorf("Extract().Text = %q, want %q (French tried first)", got.Text, "il y a 2 ans")
	}
}

func TestExtract_NoMatch(t *testing.T) {
	e := newFixedExtractor()

	inputs := []string{
		"",
		"no date information here at all",
		"version 2.0 released",
		"meeting at 10 o'clock",
	}
	for _, input := range inputs {
		if got, ok := e.Extract(input); ok {
			t.Errorf("Extract(%q) = %v, want no match", input, got)
		}
	}
}

func TestLookupMonth(t *testing.T) {
	tests := []struct {
		token string
		want  time.Month
		ok    bool
	}{
		{"mar", time.March, true},
		{"march", time.March, true},
		{"mars", time.March, true},
		{"sept.", time.September, true},
		{"août", time.August, true},
		{"AOUT", time.August, true},
		{"juil", time.July, true},
		{"xyz", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := lookupMonth(tt.token)
		if ok != tt.ok || got != tt.want {
			t.Errorf("lookupMonth(%q) = (%v, %v), want (%v, %v)", tt.token, got, ok, tt.want, tt.ok)
		}
	}
}
