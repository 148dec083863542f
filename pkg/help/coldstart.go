package help

const ColdstartYAML = `# vocab-graph Quick Start

inputs:
  vocabulary: "Markdown file; terms on '## N. Term' heading lines"
  research: "Prose document; markdown, plain text, or HTML"

renderers:
  echarts: "Interactive HTML force graph (default)"
  json: "Abstract graph model as JSON, for external renderers"

commands:
  basic_analyze: |
    vocab-graph analyze --vocab vocabulary.md --research research.md

  json_model: |
    vocab-graph analyze --vocab vocabulary.md --research research.md --renderer json

  counts_only: |
    vocab-graph stats --vocab vocabulary.md --research research.md

  custom_top_k: |
    vocab-graph analyze --vocab vocabulary.md --research research.md --top 5

  list_history: |
    vocab-graph runs
    vocab-graph runs --limit 50

  with_config: |
    # config.yaml can set vocab/research paths, top_k, sizing, renderer
    vocab-graph analyze --config config.yaml

outputs:
  usage_stats: "results/usage_stats.json — per-term counts, key-ordered"
  graph: "results/vocab_graph.html (or .json) — center + used-term star graph"
  summary: "Run summary JSON on stdout"

notes:
  matching: "Exact, case-insensitive, whole-word; no stemming or fuzzy matching"
  overlap: "Overlapping terms ('ai' vs 'generative ai') are counted independently"
  empty_terms: "Headings with no text after the dot are skipped, not zero-counted"
`
