package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"dialogen/adapters/excel"
	"dialogen/adapters/jsonl"
	"dialogen/adapters/llm"
	"dialogen/adapters/postgres"
	"dialogen/app"
	"dialogen/domain/core"
	"dialogen/internal/config"
	"dialogen/internal/rng"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "dialogen",
		Short: "Labeled conversation dataset generator and miner",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newMineCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var count int
	var filename string
	var seed int64
	var toDB bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate persona-grounded conversations via the configured LLM",
		Long: `Generate conversations by sampling persona presets and scenario templates,
composing prompts and calling the configured chat completion endpoint.

Example: dialogen generate --count 50 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, count, filename, seed, toDB)
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of conversations to generate")
	cmd.Flags().StringVar(&filename, "output", "", "Output filename (default: timestamped)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for preset/scenario sampling (0 = time-based)")
	cmd.Flags().BoolVar(&toDB, "db", false, "Also persist records to DATABASE_URL")

	return cmd
}

func runGenerate(ctx context.Context, cfg *config.Config, count int, filename string, seed int64, toDB bool) error {
	client, err := llm.NewOpenAIClient(cfg.LLM)
	if err != nil {
		return err
	}

	var sampler *rand.Rand
	if seed != 0 {
		sampler = rand.New(rand.NewSource(seed))
	}
	service := app.NewGenerationService(client, cfg.Generation, cfg.LLM, sampler)

	records, err := service.GenerateBatch(ctx, count)
	if err != nil {
		return err
	}

	report := app.BuildReport(records, cfg.Generation, cfg.LLM)
	writer := jsonl.NewWriter(cfg.Output)
	path, err := writer.SaveRecords(records, filename, report)
	if err != nil {
		return err
	}
	fmt.Printf("saved %d/%d conversations to %s\n", len(records), count, path)

	if toDB {
		if cfg.Database.URL == "" {
			return fmt.Errorf("--db requires DATABASE_URL")
		}
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return err
		}
		runID := core.NewRunID()
		if err := postgres.NewRecordRepository(db).SaveRecords(ctx, runID, records); err != nil {
			return err
		}
		fmt.Printf("persisted run %s to database\n", runID)
	}
	return nil
}

func newMineCmd() *cobra.Command {
	var inputDir string
	var filename string
	var samplesPerLabel int
	var seed int64
	var runName string
	var toDB bool

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine labeled turn-taking samples from generated conversations",
		Long: `Merge all jsonl datasets in the input directory, group conversations by
scenario category and derive end-of-turn, continue-turn, interrupt and
continue-speak training samples.

Example: dialogen mine --input ./output --samples-per-label 100 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if inputDir == "" {
				inputDir = cfg.Output.Dir
			}
			if samplesPerLabel == 0 {
				samplesPerLabel = cfg.Mining.SamplesPerLabel
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Mining.Seed
			}
			return runMine(cmd.Context(), cfg, inputDir, filename, samplesPerLabel, seed, runName, toDB)
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "", "Directory holding *.jsonl datasets (default: OUTPUT_DIR)")
	cmd.Flags().StringVar(&filename, "output", "", "Output filename (default: timestamped)")
	cmd.Flags().IntVar(&samplesPerLabel, "samples-per-label", 0, "Quota per label class (default: MINE_SAMPLES_PER_LABEL)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Base seed for deterministic mining")
	cmd.Flags().StringVar(&runName, "run", "", "Run identifier; reusing one with the same seed reproduces a dataset (default: generated)")
	cmd.Flags().BoolVar(&toDB, "db", false, "Also persist samples to DATABASE_URL")

	return cmd
}

func runMine(ctx context.Context, cfg *config.Config, inputDir, filename string, samplesPerLabel int, seed int64, runName string, toDB bool) error {
	grouped, err := jsonl.MergeAndGroup(inputDir)
	if err != nil {
		return err
	}
	for _, cat := range grouped.Categories() {
		fmt.Printf("  %s: %d conversations\n", cat, len(grouped.Get(cat)))
	}

	runID := core.NewRunID()
	if runName != "" {
		if runID, err = core.ParseRunID(runName); err != nil {
			return err
		}
	}
	miner := app.NewMiningService(rng.New())
	result, err := miner.Mine(ctx, app.MiningRequest{
		RunID:           runID,
		Grouped:         grouped,
		SamplesPerLabel: samplesPerLabel,
		Seed:            seed,
	})
	if err != nil {
		return err
	}

	writer := jsonl.NewWriter(cfg.Output)
	path, err := writer.SaveSamples(result.Samples, filename)
	if err != nil {
		return err
	}

	fmt.Printf("mined %d samples to %s\n", len(result.Samples), path)
	for label, n := range result.LabelCounts {
		fmt.Printf("  %s: %d\n", label, n)
	}

	if toDB {
		if cfg.Database.URL == "" {
			return fmt.Errorf("--db requires DATABASE_URL")
		}
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return err
		}
		if err := postgres.NewSampleRepository(db).SaveSamples(ctx, runID, result.Samples); err != nil {
			return err
		}
		fmt.Printf("persisted run %s to database\n", runID)
	}
	return nil
}

func newReportCmd() *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "report [report.json]",
		Short: "Render a saved batch report, optionally as a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], xlsxPath)
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write the report as an Excel workbook to this path")

	return cmd
}

func runReport(reportPath, xlsxPath string) error {
	data, err := os.ReadFile(reportPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", core.ErrNotFound, reportPath)
		}
		return err
	}
	var report app.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("invalid report file: %w", err)
	}

	fmt.Printf("conversations: %d\n", report.Summary.TotalConversations)
	fmt.Printf("model: %s (temperature %.1f)\n", report.Summary.Config.Model, report.Summary.Config.Temperature)
	fmt.Printf("length: avg %.1f, min %.0f, max %.0f\n",
		report.Statistics.ConversationLength.Average,
		report.Statistics.ConversationLength.Min,
		report.Statistics.ConversationLength.Max)
	printDistribution("scenarios", report.Statistics.Scenarios)
	printDistribution("occupations", report.Statistics.Occupations)
	printDistribution("persona presets", report.Statistics.PersonaPresets)

	if xlsxPath != "" {
		if !strings.HasSuffix(xlsxPath, ".xlsx") {
			xlsxPath = xlsxPath + ".xlsx"
		}
		if err := os.MkdirAll(filepath.Dir(xlsxPath), 0o755); err != nil {
			return err
		}
		if err := excel.WriteReportXLSX(xlsxPath, &report); err != nil {
			return err
		}
		fmt.Printf("workbook written to %s\n", xlsxPath)
	}
	return nil
}

func printDistribution(name string, data map[string]int) {
	if len(data) == 0 {
		return
	}
	fmt.Printf("%s:\n", name)
	for k, v := range data {
		fmt.Printf("  %s: %d\n", k, v)
	}
}
