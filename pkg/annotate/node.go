// Package annotate walks search-result nodes, classifies each one, and
// applies badges and visibility markers through a narrow provider
// interface. The engine never creates or removes result nodes; it only
// annotates what the provider enumerates.
package annotate

import "github.com/grephuman/grephuman/models"

// ResultNode is an opaque handle to one rendered search-result container.
type ResultNode interface {
	// Text returns the full text content of the result, used for date
	// extraction.
	Text() string
	// TitleText returns the title sub-element's text. ok is false when
	// the node has no title element; such nodes are skipped entirely.
	TitleText() (text string, ok bool)
	// SnippetText returns the snippet sub-element's text, or "" when the
	// result has no snippet.
	SnippetText() string

	HasBadge() bool
	AttachBadge(models.Badge)
	RemoveBadge()

	SetAI(bool)
	AI() bool

	SetHidden(bool)
	Hidden() bool
}

// Provider enumerates the current result nodes of a document.
type Provider interface {
	// Results returns the result nodes in document order.
	Results() []ResultNode
	// IsResultsPage reports whether the document is a recognized
	// search-results view. Labeling is a no-op when it is not.
	IsResultsPage() bool
}
