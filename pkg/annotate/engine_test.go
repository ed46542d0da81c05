package annotate

import (
	"testing"

	"github.com/grephuman/grephuman/models"
)

// fakeNode is an in-memory ResultNode for exercising the engine without a
// parsed document.
type fakeNode struct {
	text    string
	title   string
	noTitle bool
	snippet string

	badge  *models.Badge
	ai     bool
	hidden bool
}

func (n *fakeNode) Text() string { return n.text }

func (n *fakeNode) TitleText() (string, bool) {
	if n.noTitle {
		return "", false
	}
	return n.title, true
}

func (n *fakeNode) SnippetText() string { return n.snippet }

func (n *fakeNode) HasBadge() bool { return n.badge != nil }

func (n *fakeNode) AttachBadge(b models.Badge) { n.badge = &b }

func (n *fakeNode) RemoveBadge() { n.badge = nil }

func (n *fakeNode) SetAI(v bool) { n.ai = v }

func (n *fakeNode) AI() bool { return n.ai }

func (n *fakeNode) SetHidden(v bool) { n.hidden = v }

func (n *fakeNode) Hidden() bool { return n.hidden }

type fakeProvider struct {
	nodes       []*fakeNode
	resultsPage bool
}

func (p *fakeProvider) Results() []ResultNode {
	out := make([]ResultNode, len(p.nodes))
	for i, n := range p.nodes {
		out[i] = n
	}
	return out
}

func (p *fakeProvider) IsResultsPage() bool { return p.resultsPage }

const slopSnippet = "In today's fast-paced digital landscape, let's dive into this game changer! \U0001F680\U0001F525✅"

func oldNode() *fakeNode {
	return &fakeNode{
		title:   "Spring recap",
		snippet: "plain factual recap of the events from that spring",
		text:    "Spring recap Mar 3, 2020 - plain factual recap of the events from that spring",
	}
}

func slopNode() *fakeNode {
	return &fakeNode{
		title:   "Ten tools",
		snippet: slopSnippet,
		text:    "Ten tools " + slopSnippet,
	}
}

func undatedNode() *fakeNode {
	return &fakeNode{
		title:   "Some result",
		snippet: "ordinary text without anything noteworthy in it at all",
		text:    "Some result ordinary text without anything noteworthy in it at all",
	}
}

func TestLabelAll_Verdicts(t *testing.T) {
	p := &fakeProvider{
		nodes:       []*fakeNode{oldNode(), slopNode(), undatedNode()},
		resultsPage: true,
	}
	e := NewEngine(p)

	report := e.LabelAll()
	if report.Labeled != 3 {
		t.Fatalf("Labeled = %d, want 3", report.Labeled)
	}
	if report.NotAI != 1 || report.Slop != 1 || report.MaybeAI != 1 {
		t.Errorf("report = %+v, want one of each verdict", report)
	}

	if got := p.nodes[0].badge.Kind; got != models.VerdictNotAI {
		t.Errorf("dated node badge = %v, want %v", got, models.VerdictNotAI)
	}
	if p.nodes[0].ai {
		t.Error("dated node marked AI, want false")
	}

	if got := p.nodes[1].badge.Kind; got != models.VerdictSlop {
		t.Errorf("slop node badge = %v, want %v", got, models.VerdictSlop)
	}
	if !p.nodes[1].ai {
		t.Error("slop node not marked AI")
	}

	if got := p.nodes[2].badge.Kind; got != models.VerdictMaybeAI {
		t.Errorf("undated node badge = %v, want %v", got, models.VerdictMaybeAI)
	}
	if !p.nodes[2].ai {
		t.Error("undated node not marked AI")
	}
}

func TestLabelAll_Idempotent(t *testing.T) {
	p := &fakeProvider{nodes: []*fakeNode{oldNode(), undatedNode()}, resultsPage: true}
	e := NewEngine(p)

	first := e.LabelAll()
	if first.Labeled != 2 {
		t.Fatalf("first pass Labeled = %d, want 2", first.Labeled)
	}

	badges := []*models.Badge{p.nodes[0].badge, p.nodes[1].badge}

	second := e.LabelAll()
	if second.Labeled != 0 {
		t.Errorf("second pass Labeled = %d, want 0", second.Labeled)
	}
	if second.Skipped != 2 {
		t.Errorf("second pass Skipped = %d, want 2", second.Skipped)
	}

	// Exactly one badge per node, untouched by the second pass.
	for i, n := range p.nodes {
		if n.badge != badges[i] {
			t.Errorf("node %d badge replaced on second pass", i)
		}
	}
}

func TestLabelAll_SkipsNodesWithoutTitle(t *testing.T) {
	broken := &fakeNode{noTitle: true, text: "malformed result"}
	p := &fakeProvider{nodes: []*fakeNode{broken, undatedNode()}, resultsPage: true}
	e := NewEngine(p)

	report := e.LabelAll()
	if report.Labeled != 1 || report.Skipped != 1 {
		t.Errorf("report = %+v, want 1 labeled and 1 skipped", report)
	}
	if broken.badge != nil {
		t.Error("title-less node received a badge")
	}
}

func TestLabelAll_NoOpOffResultsPage(t *testing.T) {
	p := &fakeProvider{nodes: []*fakeNode{undatedNode()}, resultsPage: false}
	e := NewEngine(p)

	report := e.LabelAll()
	if report.Labeled != 0 {
		t.Errorf("Labeled = %d, want 0 on unrecognized page", report.Labeled)
	}
	if p.nodes[0].badge != nil {
		t.Error("node badged on unrecognized page")
	}
}

func TestHideFlaggedAndShowAll(t *testing.T) {
	p := &fakeProvider{
		nodes:       []*fakeNode{oldNode(), slopNode(), undatedNode()},
		resultsPage: true,
	}
	e := NewEngine(p)
	e.LabelAll()

	hidden := e.HideFlagged()
	if hidden != 2 {
		t.Fatalf("HideFlagged() = %d, want 2", hidden)
	}
	if got := e.State().HiddenCount; got != 2 {
		t.Errorf("HiddenCount = %d, want 2", got)
	}
	if p.nodes[0].hidden {
		t.Error("non-AI node hidden")
	}

	// Re-running against already-hidden nodes must not double-count.
	if again := e.HideFlagged(); again != 2 {
		t.Errorf("repeat HideFlagged() = %d, want 2", again)
	}

	e.ShowAll()
	if got := e.State().HiddenCount; got != 0 {
		t.Errorf("HiddenCount after ShowAll = %d, want 0", got)
	}
	for i, n := range p.nodes {
		if n.hidden {
			t.Errorf("node %d still hidden after ShowAll", i)
		}
	}
}

func TestRemoveAllBadges_LeavesMarkers(t *testing.T) {
	p := &fakeProvider{nodes: []*fakeNode{slopNode()}, resultsPage: true}
	e := NewEngine(p)
	e.LabelAll()
	e.HideFlagged()

	removed := e.RemoveAllBadges()
	if removed != 1 {
		t.Errorf("RemoveAllBadges() = %d, want 1", removed)
	}
	if p.nodes[0].badge != nil {
		t.Error("badge still attached")
	}
	if !p.nodes[0].ai {
		t.Error("is-AI marker cleared; RemoveAllBadges must not touch it")
	}
	if !p.nodes[0].hidden {
		t.Error("visibility changed; RemoveAllBadges must not touch it")
	}
}

func TestSetEnabled(t *testing.T) {
	p := &fakeProvider{nodes: []*fakeNode{slopNode(), oldNode()}, resultsPage: true}
	e := NewEngine(p)
	e.LabelAll()
	e.HideFlagged()

	e.SetEnabled(false)
	if e.State().LabelsEnabled {
		t.Error("LabelsEnabled still true after disable")
	}
	for i, n := range p.nodes {
		if n.badge != nil {
			t.Errorf("node %d still badged after disable", i)
		}
		if n.hidden {
			t.Errorf("node %d still hidden after disable", i)
		}
	}
	if got := e.State().HiddenCount; got != 0 {
		t.Errorf("HiddenCount = %d, want 0 after disable", got)
	}

	e.SetEnabled(true)
	for i, n := range p.nodes {
		if n.badge == nil {
			t.Errorf("node %d not relabeled after enable", i)
		}
	}
}

func TestLabelAll_DisabledIsNoOp(t *testing.T) {
	p := &fakeProvider{nodes: []*fakeNode{undatedNode()}, resultsPage: true}
	e := NewEngine(p)
	e.SetEnabled(false)

	report := e.LabelAll()
	if report.Labeled != 0 {
		t.Errorf("Labeled = %d, want 0 while disabled", report.Labeled)
	}
}
