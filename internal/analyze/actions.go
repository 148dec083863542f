// Package analyze implements the analyze and stats CLI verbs: the drivers
// that read documents from disk, run the pure extraction/counting/building
// pipeline, and write the artifacts.
package analyze

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dtnitsch/vocab-graph/internal/common"
	"github.com/dtnitsch/vocab-graph/models"
	"github.com/dtnitsch/vocab-graph/pkg/analytics"
	"github.com/dtnitsch/vocab-graph/pkg/caching"
	"github.com/dtnitsch/vocab-graph/pkg/db"
	"github.com/dtnitsch/vocab-graph/pkg/detector"
	"github.com/dtnitsch/vocab-graph/pkg/frequency"
	"github.com/dtnitsch/vocab-graph/pkg/graphmodel"
	"github.com/dtnitsch/vocab-graph/pkg/renderer"
	"github.com/dtnitsch/vocab-graph/pkg/report"
	"github.com/dtnitsch/vocab-graph/pkg/storage"
	"github.com/dtnitsch/vocab-graph/pkg/textextract"
	"github.com/dtnitsch/vocab-graph/pkg/vocab"
	"github.com/urfave/cli/v2"
)

// loadRunConfig merges the optional YAML config file with CLI flag
// overrides. Flags win over the file, the file wins over defaults.
func loadRunConfig(c *cli.Context) (*models.Config, error) {
	config := models.DefaultConfig()

	if c.IsSet("config") {
		fileConfig, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		config = fileConfig
	}

	if c.IsSet("vocab") {
		config.VocabPath = c.String("vocab")
	}
	if c.IsSet("research") {
		config.ResearchPath = c.String("research")
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("top") {
		config.TopK = c.Int("top")
	}
	if c.IsSet("renderer") {
		config.Renderer = c.String("renderer")
	}
	if c.IsSet("center-label") {
		config.CenterLabel = c.String("center-label")
	}

	if config.VocabPath == "" {
		return nil, fmt.Errorf("no vocabulary document provided via --vocab flag or config file")
	}
	if config.ResearchPath == "" {
		return nil, fmt.Errorf("no research document provided via --research flag or config file")
	}

	return config, nil
}

// loadDocuments reads both input documents and distills the research
// document to plain text when it is HTML. Missing documents surface as
// storage.ErrResourceUnavailable; nothing here retries.
func loadDocuments(config *models.Config, s *storage.Storage, logger *slog.Logger) (vocabText, researchText string, err error) {
	vocabText, err = s.ReadDocument(config.VocabPath)
	if err != nil {
		return "", "", err
	}

	researchText, err = s.ReadDocument(config.ResearchPath)
	if err != nil {
		return "", "", err
	}

	if textextract.IsHTMLDocument(config.ResearchPath, researchText) {
		logger.Info("Research document looks like HTML, distilling to plain text", "path", config.ResearchPath)
		plain, err := textextract.ExtractText(researchText)
		if err != nil {
			return "", "", fmt.Errorf("failed to distill HTML research document: %w", err)
		}
		researchText = plain
	}

	return vocabText, researchText, nil
}

// countWithCache returns the frequency map for the run, consulting the TTL
// result cache unless disabled. The cache payload is the usage-stats JSON
// itself, so a hit round-trips through the same serialization the artifact
// uses.
func countWithCache(c *cli.Context, config *models.Config, vocabText, researchText string, terms []string, logger *slog.Logger) (map[string]int, bool) {
	if c.Bool("no-cache") {
		return frequency.Count(researchText, terms), false
	}

	ttl, err := time.ParseDuration(config.CacheTTL)
	if err != nil || ttl <= 0 {
		return frequency.Count(researchText, terms), false
	}

	cache, err := caching.NewCache(filepath.Join(config.OutputDir, ".cache"), ttl)
	if err != nil {
		logger.Warn("Failed to initialize result cache, counting directly", "error", err)
		return frequency.Count(researchText, terms), false
	}

	key := common.RunKey(vocabText, researchText, config.TopK)
	if data, ok := cache.Get(key); ok {
		var freq map[string]int
		if err := json.Unmarshal(data, &freq); err == nil {
			logger.Info("Result cache hit", "key", common.ShortHash(key))
			return freq, true
		}
	}

	freq := frequency.Count(researchText, terms)
	if data, err := report.MarshalUsageStats(freq); err == nil {
		if err := cache.Set(key, data); err != nil {
			logger.Warn("Failed to write result cache", "error", err)
		}
	}
	return freq, false
}

func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := loadRunConfig(c)
	if err != nil {
		return err
	}

	s := &storage.Storage{}
	vocabText, researchText, err := loadDocuments(config, s, logger)
	if err != nil {
		return err
	}

	terms := vocab.ExtractTerms(vocabText)
	logger.Info("Extracted vocabulary terms", "count", len(terms))

	freq, cacheHit := countWithCache(c, config, vocabText, researchText, terms, logger)

	statsPath, err := report.WriteUsageStats(freq, filepath.Join(config.OutputDir, "usage_stats.json"), s)
	if err != nil {
		return err
	}
	logger.Info("Wrote usage statistics", "path", statsPath)

	model := graphmodel.Build(freq, graphmodel.Options{
		CenterLabel: config.CenterLabel,
		TopK:        config.TopK,
		CenterSize:  config.Sizing.Center,
		BaseSize:    config.Sizing.Base,
		SizeScale:   config.Sizing.Scale,
	})
	if model.IsEmpty() {
		logger.Info("No vocabulary terms found in the research document")
	}

	r, err := renderer.New(config.Renderer)
	if err != nil {
		return err
	}
	graphPath, err := r.RenderToFile(model, filepath.Join(config.OutputDir, "vocab_graph"))
	if err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	logger.Info("Rendered vocabulary graph", "path", graphPath, "renderer", config.Renderer)

	summary := report.NewRunSummary(freq)
	summary.VocabHash = common.ContentHash([]byte(vocabText))
	summary.ResearchHash = common.ContentHash([]byte(researchText))
	summary.Language = detector.NewDetector().DetectLanguage(researchText)
	summary.TopTerms = model.TopTerms
	summary.DocumentKeywords = (&analytics.Analytics{}).TopKeywords(researchText, 10)
	summary.StatsPath = statsPath
	summary.GraphPath = graphPath
	summary.CacheHit = cacheHit

	recordRun(c, summary, logger)

	output, err := summary.Marshal()
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// recordRun appends the run to the history database. History is a
// convenience, so failures degrade to a warning instead of failing the run.
func recordRun(c *cli.Context, summary *report.RunSummary, logger *slog.Logger) {
	var database *db.DB
	var err error
	if c.IsSet("db") {
		database, err = db.OpenAt(c.String("db"))
	} else {
		database, err = db.Open()
	}
	if err != nil {
		logger.Warn("Failed to open run history database", "error", err)
		return
	}
	defer database.Close()

	runID, err := database.RecordRun(db.Run{
		VocabHash:     summary.VocabHash,
		ResearchHash:  summary.ResearchHash,
		TermCount:     summary.TermCount,
		UsedTermCount: summary.UsedTermCount,
		TotalMatches:  summary.TotalMatches,
		TopTerms:      summary.TopTerms,
		Language:      summary.Language,
		StatsPath:     summary.StatsPath,
		GraphPath:     summary.GraphPath,
	})
	if err != nil {
		logger.Warn("Failed to record run", "error", err)
		return
	}
	logger.Info("Recorded run", "run_id", runID)
}

// StatsAction counts term usage and prints the key-ordered stats JSON to
// stdout without writing any artifacts.
func StatsAction(c *cli.Context) error {
	logLevel := slog.LevelError
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := loadRunConfig(c)
	if err != nil {
		return err
	}

	s := &storage.Storage{}
	vocabText, researchText, err := loadDocuments(config, s, logger)
	if err != nil {
		return err
	}

	terms := vocab.ExtractTerms(vocabText)
	freq := frequency.Count(researchText, terms)

	data, err := report.MarshalUsageStats(freq)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
