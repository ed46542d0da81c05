package inspect

import (
	"strings"
	"testing"
	"time"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Quarterly Update</title></head>
<body>
<article>
<h1>Quarterly Update</h1>
<p>Published January 15, 2019 by the engineering team.</p>
<p>The quarterly report covers infrastructure spending across three regions.
Staffing levels held steady and the data center migration finished two weeks
ahead of schedule. Network utilization stayed below forty percent for the
entire period, and no customer-facing incidents were recorded.</p>
<p>Budget allocations for the next quarter were approved by the board on
the final day of the review. The allocation favors storage expansion over
compute, reflecting the growth in archival workloads observed since the
previous review cycle.</p>
</article>
</body>
</html>`

const slopArticleHTML = `<!DOCTYPE html>
<html>
<head><title>Game Changer</title></head>
<body>
<article>
<h1>Game Changer</h1>
<p>In today's fast-paced world, this revolutionary tool is a game-changer.
Let's delve into why it seamlessly unlocks unparalleled productivity.
It's important to note that this cutting-edge platform boasts a robust,
comprehensive feature set designed to elevate your experience.</p>
<p>Whether you're a beginner or an expert, the possibilities are endless.
In conclusion, this testament to innovation will transform the landscape.</p>
</article>
</body>
</html>`

func fixedAnalyzer() *Analyzer {
	a := New()
	a.Extractor.Now = func() time.Time {
		return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
	return a
}

func TestAnalyzeDatedArticle(t *testing.T) {
	report, err := fixedAnalyzer().Analyze("https://example.com/reports/q1", articleHTML)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.Verdict != "not-ai" {
		t.Errorf("Verdict = %q, want %q", report.Verdict, "not-ai")
	}
	if report.PublishedDate != "2019-01-15" {
		t.Errorf("PublishedDate = %q, want %q", report.PublishedDate, "2019-01-15")
	}
	if report.SlopScore != 0 {
		t.Errorf("SlopScore = %d, want 0", report.SlopScore)
	}
	if report.Language != "en" {
		t.Errorf("Language = %q, want %q", report.Language, "en")
	}
	if report.WordCount == 0 {
		t.Error("WordCount = 0, want > 0")
	}
	if report.IsAI() {
		t.Error("IsAI() = true, want false")
	}
}

func TestAnalyzeSlopArticle(t *testing.T) {
	report, err := fixedAnalyzer().Analyze("https://example.com/posts/launch", slopArticleHTML)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.Verdict != "slop" {
		t.Errorf("Verdict = %q, want %q (score %d)", report.Verdict, "slop", report.SlopScore)
	}
	if report.SlopScore < 30 {
		t.Errorf("SlopScore = %d, want >= 30", report.SlopScore)
	}
	if len(report.TopPhrases) == 0 {
		t.Fatal("TopPhrases is empty, want entries")
	}
	for _, entry := range report.TopPhrases {
		if !strings.Contains(entry, ":") {
			t.Errorf("TopPhrases entry %q missing count separator", entry)
		}
	}
	if !strings.Contains(report.Tooltip, "AI slop score:") {
		t.Errorf("Tooltip = %q, want slop tooltip", report.Tooltip)
	}
	if !report.IsAI() {
		t.Error("IsAI() = false, want true")
	}
}

func TestAnalyzeBadURL(t *testing.T) {
	if _, err := fixedAnalyzer().Analyze("://not-a-url", articleHTML); err == nil {
		t.Fatal("Analyze() error = nil, want parse error")
	}
}

const metaDatedHTML = `<!DOCTYPE html>
<html>
<head>
<title>Archive Notes</title>
<meta property="article:published_time" content="2021-03-02T10:00:00Z">
</head>
<body>
<article>
<h1>Archive Notes</h1>
<p>The archive holds scanned copies of the original ledgers alongside the
restored photographs. Access requests go through the reading room desk and
are usually approved the same afternoon. Researchers may photograph any
item except the bound volumes from the earliest collection.</p>
<p>Storage conditions are monitored continuously and the humidity logs are
posted near the entrance for anyone who wants to review them.</p>
</article>
</body>
</html>`

func TestAnalyzeFallsBackToArticleMetadata(t *testing.T) {
	report, err := fixedAnalyzer().Analyze("https://example.com/archive", metaDatedHTML)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.PublishedDate != "2021-03-02" {
		t.Errorf("PublishedDate = %q, want %q", report.PublishedDate, "2021-03-02")
	}
	if report.DateEvidence != "article metadata" {
		t.Errorf("DateEvidence = %q, want %q", report.DateEvidence, "article metadata")
	}
	if report.Verdict != "not-ai" {
		t.Errorf("Verdict = %q, want %q", report.Verdict, "not-ai")
	}
}
