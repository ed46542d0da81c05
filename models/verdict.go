// Package models defines data structures shared across the labeling engine.
package models

// Verdict is the classification assigned to a single search result.
type Verdict int

const (
	// VerdictNotAI marks content published before mainstream generative
	// text tools existed.
	VerdictNotAI Verdict = iota
	// VerdictMaybeAI covers content with no date evidence or a date on or
	// after the cutoff.
	VerdictMaybeAI
	// VerdictSlop marks content whose lexical score crossed the slop
	// threshold, regardless of date evidence.
	VerdictSlop
)

func (v Verdict) String() string {
	switch v {
	case VerdictNotAI:
		return "not-ai"
	case VerdictMaybeAI:
		return "maybe-ai"
	case VerdictSlop:
		return "slop"
	}
	return "unknown"
}

// IsAI reports whether the verdict should mark the result with the is-AI
// attribute. Both MaybeAI and Slop count as AI for hiding purposes.
func (v Verdict) IsAI() bool {
	return v != VerdictNotAI
}
