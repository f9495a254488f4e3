package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/puneetrinity/evalmatch/internal/config"
	"github.com/puneetrinity/evalmatch/internal/llm"
	"github.com/puneetrinity/evalmatch/internal/observability"
	"github.com/puneetrinity/evalmatch/internal/skills"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <skill>...",
	Short: "Resolve raw skill strings against the taxonomy",
	Long:  "Resolve one or more raw skill strings to their canonical taxonomy entries, printing the normalized name, category, confidence and resolution method for each.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

var (
	resolveTaxonomyFile string
	resolveDatabaseURL  string
	resolveAPIKeyFlag   string
	resolveValidate     bool
	resolveJSONLogs     bool
	resolveVerbose      bool
)

func init() {
	resolveCmd.Flags().StringVar(&resolveTaxonomyFile, "taxonomy", "", "Path to skill taxonomy JSON file")
	resolveCmd.Flags().StringVar(&resolveDatabaseURL, "db-url", "", "PostgreSQL URL for the skill taxonomy (or DATABASE_URL env var)")
	resolveCmd.Flags().StringVar(&resolveAPIKeyFlag, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	resolveCmd.Flags().BoolVar(&resolveValidate, "validate", false, "Ask the LLM whether each string is a genuine skill")
	resolveCmd.Flags().BoolVar(&resolveJSONLogs, "json-logs", false, "Emit logs as JSON")
	resolveCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "Print debug logging")

	rootCmd.AddCommand(resolveCmd)
}

// resolveOutput is the printed result for one input skill.
type resolveOutput struct {
	Input      string             `json:"input"`
	Normalized string             `json:"normalized"`
	Category   string             `json:"category"`
	Confidence float64            `json:"confidence"`
	Method     string             `json:"method"`
	Judgment   *llm.SkillJudgment `json:"judgment,omitempty"`
}

func runResolve(_ *cobra.Command, args []string) error {
	cfg := config.Config{
		TaxonomyFile: resolveTaxonomyFile,
		DatabaseURL:  resolveDatabaseURL,
		APIKey:       resolveAPIKeyFlag,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(resolveJSONLogs, resolveVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	snapshot, err := buildSnapshot(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	embedder, cleanup, err := buildEmbedder(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create embedding provider: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	var client llm.Client
	if resolveValidate {
		apiKey := resolveAPIKey(resolveAPIKeyFlag, cfg.APIKey)
		if apiKey == "" {
			return fmt.Errorf("--validate requires an API key (set GEMINI_API_KEY or use --api-key)")
		}
		gemini, err := llm.NewGeminiClient(ctx, apiKey, "")
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		client = gemini
		defer func() { _ = gemini.Close() }()
	}

	resolver := skills.NewResolver(snapshot, embedder, logger)

	outputs := make([]resolveOutput, 0, len(args))
	for _, raw := range args {
		resolution := resolver.Resolve(ctx, raw)
		output := resolveOutput{
			Input:      raw,
			Normalized: resolution.Normalized,
			Category:   string(resolution.Category),
			Confidence: resolution.Confidence,
			Method:     string(resolution.Method),
		}

		if client != nil {
			judgment, err := llm.ValidateSkill(ctx, client, raw)
			if err != nil {
				logger.Warn("skill validation unavailable", zap.String("skill", raw), zap.Error(err))
			} else {
				output.Judgment = judgment
			}
		}

		outputs = append(outputs, output)
	}

	jsonBytes, err := json.MarshalIndent(outputs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))

	return nil
}
