package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs table: one row per analyze run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,

    -- SHA-256 hashes of the input documents
    vocab_hash TEXT NOT NULL,
    research_hash TEXT NOT NULL,

    -- Aggregate counts
    term_count INTEGER NOT NULL DEFAULT 0,
    used_term_count INTEGER NOT NULL DEFAULT 0,
    total_matches INTEGER NOT NULL DEFAULT 0,

    -- Top terms as a comma-separated list, count-descending
    top_terms TEXT NOT NULL DEFAULT '',

    -- Detected research document language (may be empty)
    language TEXT NOT NULL DEFAULT '',

    -- Artifact paths
    stats_path TEXT NOT NULL DEFAULT '',
    graph_path TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_inputs ON runs(vocab_hash, research_hash);
`
