// Package inspect performs a deep analysis of a single page: readability
// extraction, slop scoring, publication-date evidence, and language
// identification rolled into one report.
package inspect

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"github.com/grephuman/grephuman/models"
	"github.com/grephuman/grephuman/pkg/classify"
	"github.com/grephuman/grephuman/pkg/dates"
	"github.com/grephuman/grephuman/pkg/language"
	"github.com/grephuman/grephuman/pkg/mapreduce"
	"github.com/grephuman/grephuman/pkg/slop"
)

// Report holds everything the analysis learned about one page.
type Report struct {
	URL      string `json:"url" yaml:"url"`
	Title    string `json:"title" yaml:"title"`
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	SiteName string `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Excerpt  string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`

	WordCount  int      `json:"word_count" yaml:"word_count"`
	SlopScore  int      `json:"slop_score" yaml:"slop_score"`
	TopPhrases []string `json:"top_phrases,omitempty" yaml:"top_phrases,omitempty"`

	PublishedDate string `json:"published_date,omitempty" yaml:"published_date,omitempty"`
	DateEvidence  string `json:"date_evidence,omitempty" yaml:"date_evidence,omitempty"`

	Language           string  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`

	Verdict string `json:"verdict" yaml:"verdict"`
	Tooltip string `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// Analyzer runs page analyses with an injectable date extractor so tests
// can pin the clock.
type Analyzer struct {
	Extractor *dates.Extractor
}

func New() *Analyzer {
	return &Analyzer{Extractor: dates.New()}
}

// Analyze distills the page with readability, scores the article text,
// and classifies the result. rawURL must be absolute; the HTML is read
// as-is.
func (a *Analyzer) Analyze(rawURL, html string) (*Report, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, err
	}

	report := &Report{
		URL:      rawURL,
		Title:    article.Title,
		Author:   article.Byline,
		SiteName: article.SiteName,
		Excerpt:  article.Excerpt,
	}

	text := article.TextContent
	report.WordCount = len(strings.Fields(text))
	report.SlopScore = slop.Score(text)
	report.TopPhrases = mapreduce.TopPhrases(slop.PhraseHits(text), 5)

	extracted, _ := a.Extractor.Extract(text)
	if extracted == nil && article.PublishedTime != nil {
		extracted = &dates.Extracted{
			Date: *article.PublishedTime,
			Text: "article metadata",
		}
	}
	if extracted != nil {
		report.PublishedDate = extracted.Date.Format("2006-01-02")
		report.DateEvidence = extracted.Text
	}

	if code, confidence := language.Detect(text); code != "" {
		report.Language = code
		report.LanguageConfidence = confidence
	}

	verdict, tooltip := classify.Classify(report.SlopScore, extracted, classify.CutoffDate)
	report.Verdict = verdict.String()
	report.Tooltip = tooltip

	return report, nil
}

// IsAI reports whether the verdict flags the page as AI-generated.
func (r *Report) IsAI() bool {
	return r.Verdict != models.VerdictNotAI.String()
}
