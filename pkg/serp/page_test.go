package serp

import (
	"strings"
	"testing"

	"github.com/grephuman/grephuman/models"
	"github.com/grephuman/grephuman/pkg/annotate"
)

const fixtureHTML = `<!DOCTYPE html>
<html><head><title>test - Google Search</title></head><body>
<div id="search">
  <div class="g">
    <h3>Old factual article</h3>
    <div class="VwiC3b">Mar 3, 2020 - plain factual recap of the events from that spring</div>
  </div>
  <div class="g">
    <h3>Ten amazing tools</h3>
    <div class="VwiC3b">In today's fast-paced digital landscape, let's dive into this game changer! &#128640;&#128293;&#9989;</div>
  </div>
  <div class="g">
    <div class="VwiC3b">result with no title element</div>
  </div>
</div>
</body></html>`

func parseFixture(t *testing.T) *Page {
	t.Helper()
	p, err := Parse("https://www.google.com/search?q=test", strings.NewReader(fixtureHTML))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return p
}

func TestIsSearchURL(t *testing.T) {
	tests := []struct {
		rawURL string
		want   bool
	}{
		{"https://www.google.com/search?q=go", true},
		{"https://google.fr/search?q=go", true},
		{"https://www.google.com/maps", false},
		{"https://example.com/search?q=go", false},
		{"https://www.google.com/", false},
	}

	for _, tt := range tests {
		p, err := Parse(tt.rawURL, strings.NewReader("<html></html>"))
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.rawURL, err)
		}
		if got := p.IsResultsPage(); got != tt.want {
			t.Errorf("IsResultsPage(%q) = %v, want %v", tt.rawURL, got, tt.want)
		}
	}
}

func TestParse_NoURLTrustsDocument(t *testing.T) {
	p, err := Parse("", strings.NewReader(fixtureHTML))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !p.IsResultsPage() {
		t.Error("document without URL should be treated as a results page")
	}
}

func TestResults_DocumentOrder(t *testing.T) {
	p := parseFixture(t)

	nodes := p.Results()
	if len(nodes) != 3 {
		t.Fatalf("Results() returned %d nodes, want 3", len(nodes))
	}

	title, ok := nodes[0].TitleText()
	if !ok || title != "Old factual article" {
		t.Errorf("first node title = (%q, %v)", title, ok)
	}
	if _, ok := nodes[2].TitleText(); ok {
		t.Error("third node has no h3, TitleText should report false")
	}
	if got := nodes[0].SnippetText(); !strings.Contains(got, "Mar 3, 2020") {
		t.Errorf("first node snippet = %q", got)
	}
}

func TestEndToEnd_LabelHideRender(t *testing.T) {
	p := parseFixture(t)
	engine := annotate.NewEngine(p)

	report := engine.LabelAll()
	if report.Labeled != 2 || report.Skipped != 1 {
		t.Fatalf("report = %+v, want 2 labeled and 1 skipped", report)
	}

	if hidden := engine.HideFlagged(); hidden != 1 {
		t.Errorf("HideFlagged() = %d, want 1 (the slop node)", hidden)
	}

	p.InjectStyles()
	out, err := p.HTML()
	if err != nil {
		t.Fatalf("HTML() failed: %v", err)
	}

	if got := strings.Count(out, `class="grephuman-badge"`); got != 2 {
		t.Errorf("rendered HTML has %d badges, want 2", got)
	}
	if !strings.Contains(out, `data-grephuman-ai="false"`) {
		t.Error("dated result not marked data-grephuman-ai=false")
	}
	if !strings.Contains(out, `data-grephuman-hidden="true"`) {
		t.Error("slop result not marked hidden")
	}
	if !strings.Contains(out, "display:none") {
		t.Error("hidden result has no display:none style")
	}
	if !strings.Contains(out, `id="grephuman-styles"`) {
		t.Error("isolation stylesheet not injected")
	}

	// Round trip: a reparse of the rendered markup must keep the badges,
	// making a second labeling pass a full no-op.
	p2, err := Parse("https://www.google.com/search?q=test", strings.NewReader(out))
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	second := annotate.NewEngine(p2).LabelAll()
	if second.Labeled != 0 {
		t.Errorf("second pass labeled %d nodes, want 0", second.Labeled)
	}
}

func TestSetHidden_PreservesInlineStyle(t *testing.T) {
	html := `<div id="search"><div class="g" style="color:red"><h3>T</h3></div></div>`
	p, err := Parse("", strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	node := p.Results()[0]
	node.SetHidden(true)
	if !node.Hidden() {
		t.Fatal("node not hidden")
	}

	out, _ := p.HTML()
	if !strings.Contains(out, "color:red") || !strings.Contains(out, "display:none") {
		t.Errorf("hidden markup lost the original style: %s", out)
	}

	node.SetHidden(false)
	out, _ = p.HTML()
	if strings.Contains(out, "display:none") {
		t.Error("style still hidden after show")
	}
	if !strings.Contains(out, "color:red") {
		t.Error("original inline style not restored")
	}
}

func TestSetHidden_RepeatedHideKeepsCleanSavedStyle(t *testing.T) {
	html := `<div id="search"><div class="g" style="color:red"><h3>T</h3></div></div>`
	p, err := Parse("", strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	// HideFlagged re-hides every AI node on each pass, so the second hide
	// must not re-save a style that already carries display:none.
	node := p.Results()[0]
	node.SetHidden(true)
	node.SetHidden(true)
	node.SetHidden(false)

	out, _ := p.HTML()
	if strings.Contains(out, "display:none") {
		t.Errorf("node still hidden after show: %s", out)
	}
	if !strings.Contains(out, "color:red") {
		t.Errorf("original inline style not restored: %s", out)
	}
	if strings.Contains(out, "data-grephuman-style") {
		t.Errorf("saved-style attribute not cleaned up: %s", out)
	}
}

func TestHideFlaggedTwiceThenShowAllRestoresVisibility(t *testing.T) {
	p := parseFixture(t)
	engine := annotate.NewEngine(p)
	engine.LabelAll()

	engine.HideFlagged()
	engine.HideFlagged()
	engine.ShowAll()

	out, err := p.HTML()
	if err != nil {
		t.Fatalf("HTML() failed: %v", err)
	}
	if strings.Contains(out, "display:none") {
		t.Errorf("results still hidden after ShowAll: %s", out)
	}
	if strings.Contains(out, `data-grephuman-hidden="true"`) {
		t.Error("hidden marker survived ShowAll")
	}
}

func TestBadgeMarkup(t *testing.T) {
	got := renderBadge(models.Badge{Kind: models.VerdictSlop, Tooltip: `score "high"`})
	if !strings.Contains(got, "AI Slop") {
		t.Errorf("badge markup missing label: %s", got)
	}
	if !strings.Contains(got, "&#34;high&#34;") {
		t.Errorf("tooltip not escaped: %s", got)
	}
	if !strings.Contains(got, "linear-gradient(135deg, #ef4444, #b91c1c)") {
		t.Errorf("badge markup missing slop gradient: %s", got)
	}
}

func TestInjectStyles_Idempotent(t *testing.T) {
	p := parseFixture(t)
	p.InjectStyles()
	p.InjectStyles()

	out, _ := p.HTML()
	if got := strings.Count(out, `id="grephuman-styles"`); got != 1 {
		t.Errorf("stylesheet injected %d times, want 1", got)
	}
}
