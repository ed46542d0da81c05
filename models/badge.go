package models

// Badge is the single inline marker attached to a labeled result. Tooltip
// may be empty, in which case renderers fall back to the kind's default.
type Badge struct {
	Kind    Verdict
	Tooltip string
}

// BadgeStyle describes the fixed visual treatment for one badge kind.
type BadgeStyle struct {
	Label          string
	Background     string
	DefaultTooltip string
}

var badgeStyles = map[Verdict]BadgeStyle{
	VerdictNotAI: {
		Label:          "✓ Not AI",
		Background:     "linear-gradient(135deg, #10b981, #059669)",
		DefaultTooltip: "Pre-ChatGPT content",
	},
	VerdictMaybeAI: {
		Label:          "⚠ Maybe AI",
		Background:     "linear-gradient(135deg, #f59e0b, #d97706)",
		DefaultTooltip: "Could be AI generated",
	},
	VerdictSlop: {
		Label:          "✖ AI Slop",
		Background:     "linear-gradient(135deg, #ef4444, #b91c1c)",
		DefaultTooltip: "Likely AI-generated (ChatGPT-style writing detected)",
	},
}

// Style returns the visual treatment for the verdict's badge kind.
func (v Verdict) Style() BadgeStyle {
	return badgeStyles[v]
}

// TooltipOrDefault returns the computed tooltip, or the kind's default title
// when no evidence-specific tooltip was produced.
func (b Badge) TooltipOrDefault() string {
	if b.Tooltip != "" {
		return b.Tooltip
	}
	return b.Kind.Style().DefaultTooltip
}
