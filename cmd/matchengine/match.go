package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/puneetrinity/evalmatch/internal/config"
	"github.com/puneetrinity/evalmatch/internal/match"
	"github.com/puneetrinity/evalmatch/internal/observability"
	"github.com/puneetrinity/evalmatch/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job posting",
	Long:  "Score a resume JSON file against a job JSON file and print the full match result, including per-dimension scores, the skill breakdown and a generated explanation.",
	RunE:  runMatch,
}

var (
	matchResumeFile   string
	matchJobFile      string
	matchConfigFile   string
	matchTaxonomyFile string
	matchDatabaseURL  string
	matchAPIKey       string
	matchRedisAddr    string
	matchJSONLogs     bool
	matchVerbose      bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job JSON file (required)")
	matchCmd.Flags().StringVarP(&matchConfigFile, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVar(&matchTaxonomyFile, "taxonomy", "", "Path to skill taxonomy JSON file")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL URL for the skill taxonomy (or DATABASE_URL env var)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	matchCmd.Flags().StringVar(&matchRedisAddr, "redis", "", "Redis address for the embedding cache (or REDIS_ADDR env var)")
	matchCmd.Flags().BoolVar(&matchJSONLogs, "json-logs", false, "Emit logs as JSON")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed scoring output")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:       matchResumeFile,
		Job:          matchJobFile,
		TaxonomyFile: matchTaxonomyFile,
		DatabaseURL:  matchDatabaseURL,
		APIKey:       matchAPIKey,
		RedisAddr:    matchRedisAddr,
		Verbose:      matchVerbose,
	}

	if matchConfigFile != "" {
		fileCfg, err := config.LoadConfig(matchConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" || cfg.Job == "" {
		return fmt.Errorf("both --resume and --job are required")
	}

	logger, err := observability.NewLogger(matchJSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var resume types.ResumeData
	if err := readJSONFile(cfg.Resume, &resume); err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	var job types.JobData
	if err := readJSONFile(cfg.Job, &job); err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	ctx := context.Background()

	snapshot, err := buildSnapshot(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}
	logger.Debug("taxonomy loaded", zap.Int("skills", snapshot.Len()))

	embedder, cleanup, err := buildEmbedder(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create embedding provider: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	engine := match.NewEngine(snapshot, embedder, logger)
	result := engine.CalculateMatch(ctx, resume, job, cfg.EffectiveWeights())

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMatchResult(&result)
		printer.PrintSkillBreakdown(result.SkillBreakdown)
		printer.PrintExplanation(&result.Explanation)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))

	return nil
}

// readJSONFile reads and unmarshals a JSON file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
