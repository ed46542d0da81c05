// Package classify fuses the lexical slop score and date evidence into a
// verdict.
package classify

import (
	"fmt"
	"time"

	"github.com/grephuman/grephuman/models"
	"github.com/grephuman/grephuman/pkg/dates"
)

// SlopThreshold is the score at or above which a result is flagged as slop.
const SlopThreshold = 30

// CutoffDate marks the public launch of ChatGPT. Content published strictly
// before it is presumed human-written.
var CutoffDate = time.Date(2022, time.November, 30, 0, 0, 0, 0, time.UTC)

// Classify derives a verdict and its tooltip from a slop score, optional
// date evidence, and the cutoff date. The slop check runs before date
// evidence: a strong lexical signal overrides an apparently old publication
// date.
func Classify(score int, extracted *dates.Extracted, cutoff time.Time) (models.Verdict, string) {
	if score >= SlopThreshold {
		return models.VerdictSlop,
			fmt.Sprintf("AI slop score: %d/100 — ChatGPT-style writing detected", score)
	}

	if extracted != nil && extracted.Date.Before(cutoff) {
		return models.VerdictNotAI,
			fmt.Sprintf("Published %s - Before ChatGPT (Nov 30, 2022)", extracted.Text)
	}

	if extracted != nil {
		return models.VerdictMaybeAI,
			fmt.Sprintf("Published %s - After ChatGPT launch", extracted.Text)
	}

	return models.VerdictMaybeAI, ""
}
