package serp

// badgeBaseStyle is the inline style shared by all badge kinds. Everything
// is !important so page CSS cannot restyle or rotate the badge.
const badgeBaseStyle = `all: initial !important;` +
	`display: inline-block !important;` +
	`padding: 2px 8px !important;` +
	`border-radius: 4px !important;` +
	`font-size: 11px !important;` +
	`font-weight: 600 !important;` +
	`margin-left: 8px !important;` +
	`font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif !important;` +
	`box-shadow: 0 1px 3px rgba(0,0,0,0.2) !important;` +
	`color: white !important;` +
	`vertical-align: middle !important;` +
	`line-height: normal !important;` +
	`text-align: left !important;` +
	`direction: ltr !important;` +
	`unicode-bidi: isolate !important;` +
	`writing-mode: horizontal-tb !important;` +
	`transform: none !important;` +
	`position: relative !important;` +
	`cursor: default !important;`

// isolationCSS backs up the inline isolation for pages that strip inline
// styles from injected nodes.
const isolationCSS = `
.grephuman-badge {
  all: initial !important;
  display: inline-block !important;
  vertical-align: middle !important;
  direction: ltr !important;
  unicode-bidi: isolate !important;
  writing-mode: horizontal-tb !important;
  transform: none !important;
}
`
