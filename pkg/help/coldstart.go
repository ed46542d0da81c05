package help

const ColdstartYAML = `# grephuman Quick Start

verdicts:
  not-ai: "Dated before the ChatGPT launch (Nov 30, 2022)"
  maybe-ai: "Dated after the launch, or no date found"
  slop: "Slop score >= 30, ChatGPT-style writing detected"

commands:
  label_files: |
    grephuman label --inputs "serp1.html,serp2.html"

  label_live: |
    grephuman label --urls "https://www.google.com/search?q=best+laptops"

  label_and_hide: |
    grephuman label --inputs serp.html --hide

  watch_file: |
    grephuman watch --input serp.html

  serve_page: |
    grephuman serve --input serp.html --addr :8745

  inspect_article: |
    grephuman inspect --url "https://example.com/post" --format yaml

  list_sessions: |
    grephuman db sessions

  list_runs: |
    grephuman db runs

  run_detail: |
    grephuman db verdicts <run-id>

  enable_hiding_by_default: |
    grephuman db settings google_filter_enabled true

message_endpoint:
  PING: '{"pong": true}'
  GET_STATE: '{"labelsEnabled": bool, "hiddenCount": int, "isGoogleSearch": bool}'
  TOGGLE_LABELS: '{"success": true} (payload: {"enabled": bool}, omit to invert)'
  HIDE_AI_RESULTS: '{"hiddenCount": int}'
  SHOW_ALL_RESULTS: '{"success": true}'

outputs:
  labeled_pages: grephuman-results/labeled/
  session_summaries: grephuman-results/sessions/{session-id}/summary.yaml
  session_index: grephuman-results/index.yaml
  database: grephuman.db (next to the binary)
`
