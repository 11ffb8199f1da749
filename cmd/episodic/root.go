package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tsawler/episodic"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "episodic",
		Short:         "Per-episode dialogue sentiment analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newAnalyzeCommand(&configFlag))
	rootCmd.AddCommand(newShowCommand(&configFlag))

	return rootCmd
}

func newAnalyzeCommand(configFlag *string) *cobra.Command {
	var forceCSV bool
	var exportPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fetch the dataset, score every episode and print the analysis table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.LogLevel, cfg.LogFormat)

			source := cfg.source()
			pipeline, err := episodic.NewPipeline(
				episodic.WithSource(source),
				episodic.WithSink(&episodic.CSVSink{Path: cfg.SummaryPath}),
				episodic.WithLogger(logger),
				episodic.WithLanguage(episodic.Language(cfg.Language)),
				episodic.WithExternalLexicon(cfg.LexiconPath),
				episodic.WithAffectNorms(cfg.NormsPath),
				episodic.WithPreview(cfg.Preview),
			)
			if err != nil {
				return err
			}

			started := time.Now()
			rows, err := pipeline.Run(cmd.Context())
			if err != nil {
				return err
			}

			if cfg.DatabaseRef != "" {
				store, err := episodic.OpenStore(cfg.DatabaseRef)
				if err != nil {
					return err
				}
				defer store.Close()

				sourceName := cfg.DatasetURL
				if cfg.DatasetFile != "" {
					sourceName = cfg.DatasetFile
				}
				runID, err := store.SaveRun(cmd.Context(), sourceName, started, rows)
				if err != nil {
					return err
				}
				logger.Info("run saved", "run_id", runID)
			}

			if exportPath != "" {
				if err := exportCSV(exportPath, rows); err != nil {
					return err
				}
			}

			return emit(cmd, rows, forceCSV)
		},
	}

	cmd.Flags().BoolVar(&forceCSV, "csv", false, "Emit CSV even when stdout is a terminal")
	cmd.Flags().StringVar(&exportPath, "export", "", "Also write the analysis table to this CSV file")

	return cmd
}

func newShowCommand(configFlag *string) *cobra.Command {
	var runID string
	var forceCSV bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a previously saved analysis run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configFlag)
			if err != nil {
				return err
			}
			if cfg.DatabaseRef == "" {
				return fmt.Errorf("show requires database_path in the config")
			}

			store, err := episodic.OpenStore(cfg.DatabaseRef)
			if err != nil {
				return err
			}
			defer store.Close()

			if runID == "" {
				runID, err = store.LastRun(cmd.Context())
				if err != nil {
					return err
				}
			}

			rows, err := store.Rows(cmd.Context(), runID)
			if err != nil {
				return err
			}
			return emit(cmd, rows, forceCSV)
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "Run ID to show (defaults to the most recent)")
	cmd.Flags().BoolVar(&forceCSV, "csv", false, "Emit CSV even when stdout is a terminal")

	return cmd
}

// emit writes rows to stdout: a table when attached to a terminal, CSV
// otherwise or when forced.
func emit(cmd *cobra.Command, rows []episodic.Row, forceCSV bool) error {
	out := cmd.OutOrStdout()
	if !forceCSV && isTerminal() {
		_, err := fmt.Fprintln(out, episodic.RenderTable(rows))
		return err
	}
	return episodic.WriteCSV(out, rows)
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func exportCSV(path string, rows []episodic.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := episodic.WriteCSV(f, rows); err != nil {
		return err
	}
	return f.Close()
}
