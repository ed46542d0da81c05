// Package serp adapts a Google search-results document to the annotation
// engine's node provider interface. All host-specific selectors and badge
// markup live here; the engine never sees them.
package serp

import (
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/grephuman/grephuman/models"
	"github.com/grephuman/grephuman/pkg/annotate"
)

const (
	// resultSelector matches one rendered search-result container.
	resultSelector = "#search .g, #rso .g, .MjjYud"
	// snippetSelector matches the snippet sub-element inside a result.
	snippetSelector = ".VwiC3b, .IsZvec, [data-sncf], .s3v9rd"

	badgeClass = "grephuman-badge"
	styleID    = "grephuman-styles"

	attrAI         = "data-grephuman-ai"
	attrHidden     = "data-grephuman-hidden"
	attrSavedStyle = "data-grephuman-style"
)

// Page wraps a parsed results document.
type Page struct {
	doc *goquery.Document
	url *url.URL
}

// Parse reads a results document. rawURL gates page recognition; pass ""
// for a document supplied directly (a local file), which is then trusted to
// be a results page.
func Parse(rawURL string, r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	p := &Page{doc: doc}
	if rawURL != "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("invalid page URL: %w", err)
		}
		p.url = u
	}
	return p, nil
}

// IsSearchURL reports whether u points at a recognized search-results view:
// a Google hostname with a /search path.
func IsSearchURL(u *url.URL) bool {
	return strings.Contains(strings.ToLower(u.Hostname()), "google.") &&
		strings.HasPrefix(u.Path, "/search")
}

// IsResultsPage implements annotate.Provider.
func (p *Page) IsResultsPage() bool {
	if p.url == nil {
		return true
	}
	return IsSearchURL(p.url)
}

// Results returns the result nodes in document order.
func (p *Page) Results() []annotate.ResultNode {
	var nodes []annotate.ResultNode
	p.doc.Find(resultSelector).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &resultNode{sel: s})
	})
	return nodes
}

// InjectStyles adds the badge isolation stylesheet once per document.
func (p *Page) InjectStyles() {
	if p.doc.Find("#" + styleID).Length() > 0 {
		return
	}
	target := p.doc.Find("head").First()
	if target.Length() == 0 {
		target = p.doc.Find("html").First()
	}
	if target.Length() == 0 {
		return
	}
	target.AppendHtml(fmt.Sprintf(`<style id=%q>%s</style>`, styleID, isolationCSS))
}

// HTML renders the annotated document back to markup.
func (p *Page) HTML() (string, error) {
	out, err := p.doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return out, nil
}

// Text returns the full text of the document, used for batch-level
// analytics.
func (p *Page) Text() string {
	return p.doc.Text()
}

// resultNode adapts one result container selection.
type resultNode struct {
	sel *goquery.Selection
}

func (n *resultNode) Text() string {
	return n.sel.Text()
}

func (n *resultNode) TitleText() (string, bool) {
	title := n.sel.Find("h3").First()
	if title.Length() == 0 {
		return "", false
	}
	return title.Text(), true
}

func (n *resultNode) SnippetText() string {
	return n.sel.Find(snippetSelector).First().Text()
}

func (n *resultNode) HasBadge() bool {
	return n.sel.Find("."+badgeClass).Length() > 0
}

// AttachBadge appends the badge span to the title element. Callers are
// expected to have checked HasBadge first; attaching is skipped when the
// node has no title.
func (n *resultNode) AttachBadge(b models.Badge) {
	title := n.sel.Find("h3").First()
	if title.Length() == 0 {
		return
	}
	title.AppendHtml(renderBadge(b))
}

func (n *resultNode) RemoveBadge() {
	n.sel.Find("." + badgeClass).Remove()
}

func (n *resultNode) SetAI(v bool) {
	if v {
		n.sel.SetAttr(attrAI, "true")
	} else {
		n.sel.SetAttr(attrAI, "false")
	}
}

func (n *resultNode) AI() bool {
	return n.sel.AttrOr(attrAI, "") == "true"
}

// SetHidden toggles visibility through the inline style, preserving any
// pre-existing inline style across the hide/show cycle.
func (n *resultNode) SetHidden(v bool) {
	if v {
		if n.Hidden() {
			// Re-saving the style here would capture the injected
			// display:none and poison the later restore.
			return
		}
		if cur, ok := n.sel.Attr("style"); ok && cur != "" {
			n.sel.SetAttr(attrSavedStyle, cur)
			n.sel.SetAttr("style", strings.TrimRight(cur, "; ")+"; display:none")
		} else {
			n.sel.SetAttr("style", "display:none")
		}
		n.sel.SetAttr(attrHidden, "true")
		return
	}

	if saved, ok := n.sel.Attr(attrSavedStyle); ok {
		n.sel.SetAttr("style", saved)
		n.sel.RemoveAttr(attrSavedStyle)
	} else {
		n.sel.RemoveAttr("style")
	}
	n.sel.RemoveAttr(attrHidden)
}

func (n *resultNode) Hidden() bool {
	return n.sel.AttrOr(attrHidden, "") == "true"
}

func renderBadge(b models.Badge) string {
	style := b.Kind.Style()
	return fmt.Sprintf(
		`<span class=%q style="%s background: %s !important;" title="%s">%s</span>`,
		badgeClass,
		badgeBaseStyle,
		style.Background,
		html.EscapeString(b.TooltipOrDefault()),
		html.EscapeString(style.Label),
	)
}
