package annotate

import (
	"time"

	"github.com/grephuman/grephuman/models"
	"github.com/grephuman/grephuman/pkg/classify"
	"github.com/grephuman/grephuman/pkg/dates"
	"github.com/grephuman/grephuman/pkg/slop"
)

// State is the engine's mutable per-document state. It resets implicitly
// with every new engine (one engine per document load).
type State struct {
	LabelsEnabled bool
	HiddenCount   int
}

// PassReport summarizes one labeling pass.
type PassReport struct {
	Labeled int `json:"labeled" yaml:"labeled"`
	NotAI   int `json:"not_ai" yaml:"not_ai"`
	MaybeAI int `json:"maybe_ai" yaml:"maybe_ai"`
	Slop    int `json:"slop" yaml:"slop"`
	Skipped int `json:"skipped" yaml:"skipped"` // already badged or missing title

	Details []ResultDetail `json:"details,omitempty" yaml:"details,omitempty"`
}

// ResultDetail records the classification of one result node.
type ResultDetail struct {
	Title         string `json:"title" yaml:"title"`
	SlopScore     int    `json:"slop_score" yaml:"slop_score"`
	Verdict       string `json:"verdict" yaml:"verdict"`
	PublishedDate string `json:"published_date,omitempty" yaml:"published_date,omitempty"`
	Tooltip       string `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

func (r *PassReport) addVerdict(v models.Verdict) {
	r.Labeled++
	switch v {
	case models.VerdictNotAI:
		r.NotAI++
	case models.VerdictMaybeAI:
		r.MaybeAI++
	case models.VerdictSlop:
		r.Slop++
	}
}

// Engine applies badges and markers to the provider's result nodes.
type Engine struct {
	provider Provider
	score    func(string) int
	extract  func(string) (*dates.Extracted, bool)
	cutoff   time.Time
	state    State
}

// NewEngine builds an engine on the default scorer, extractor, and cutoff.
// Labels start enabled.
func NewEngine(p Provider) *Engine {
	return &Engine{
		provider: p,
		score:    slop.Score,
		extract:  dates.New().Extract,
		cutoff:   classify.CutoffDate,
		state:    State{LabelsEnabled: true},
	}
}

// State returns a snapshot of the engine state.
func (e *Engine) State() State {
	return e.state
}

// IsResultsPage reports the provider's page-recognition predicate.
func (e *Engine) IsResultsPage() bool {
	return e.provider.IsResultsPage()
}

// LabelAll classifies and badges every unlabeled result node, in document
// order. Already-badged nodes are skipped, which makes repeated passes over
// an unchanged document idempotent. No-op when labeling is disabled or the
// document is not a recognized results page.
func (e *Engine) LabelAll() PassReport {
	var report PassReport
	if !e.state.LabelsEnabled || !e.provider.IsResultsPage() {
		return report
	}

	for _, node := range e.provider.Results() {
		if node.HasBadge() {
			report.Skipped++
			continue
		}

		title, ok := node.TitleText()
		if !ok {
			report.Skipped++
			continue
		}

		snippet := node.SnippetText() + " " + title
		score := e.score(snippet)
		extracted, _ := e.extract(node.Text())

		verdict, tooltip := classify.Classify(score, extracted, e.cutoff)
		node.SetAI(verdict.IsAI())
		node.AttachBadge(models.Badge{Kind: verdict, Tooltip: tooltip})
		report.addVerdict(verdict)

		detail := ResultDetail{
			Title:     title,
			SlopScore: score,
			Verdict:   verdict.String(),
			Tooltip:   tooltip,
		}
		if extracted != nil {
			detail.PublishedDate = extracted.Date.Format("2006-01-02")
		}
		report.Details = append(report.Details, detail)
	}
	return report
}

// RemoveAllBadges strips every badge. Visibility and the is-AI marker are
// left untouched.
func (e *Engine) RemoveAllBadges() int {
	removed := 0
	for _, node := range e.provider.Results() {
		if node.HasBadge() {
			node.RemoveBadge()
			removed++
		}
	}
	return removed
}

// HideFlagged hides every result marked as AI and returns the number
// hidden. The count is recomputed from scratch on every call, so re-running
// against already-hidden results never double-counts.
func (e *Engine) HideFlagged() int {
	count := 0
	for _, node := range e.provider.Results() {
		if node.AI() {
			node.SetHidden(true)
			count++
		}
	}
	e.state.HiddenCount = count
	return count
}

// ShowAll restores visibility on every hidden result and resets the hidden
// count.
func (e *Engine) ShowAll() {
	for _, node := range e.provider.Results() {
		if node.Hidden() {
			node.SetHidden(false)
		}
	}
	e.state.HiddenCount = 0
}

// SetEnabled toggles labeling. Disabling also removes badges and un-hides
// everything; labels and hiding are coupled. Enabling triggers a labeling
// pass.
func (e *Engine) SetEnabled(enabled bool) {
	e.state.LabelsEnabled = enabled
	if enabled {
		e.LabelAll()
		return
	}
	e.RemoveAllBadges()
	e.ShowAll()
}
