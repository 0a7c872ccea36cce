package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docbro/internal/config"
	"github.com/dgallion1/docbro/internal/convert"
	"github.com/dgallion1/docbro/internal/ignore"
	"github.com/dgallion1/docbro/internal/page"
	"github.com/dgallion1/docbro/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "docbro <project_path>",
	Short: "Generate HTML documentation from docbro docstrings",
	Long: `docbro scans a project for docstring blocks delimited by docbrostart and
docbroend, renders one HTML page per source file that has any, and writes an
index page linking them all.

Configuration is read from the environment:
  BASE_URL, PROJECT_NAME, OUTPUT_DIR, IGNORE_DIRS_FILE, IGNORE_FILES_FILE,
  MARKDOWN_EXTENSIONS, LOG_LEVEL, LOG_FORMAT`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		if _, err := build(cmd.Context(), cfg, log, args[0]); err != nil {
			log.Error("build failed", "error", err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Docbro has generated documentation for your project!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func loadConfig() (config.Config, *slog.Logger, error) {
	cfg := config.Load()
	log := cfg.Logger()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return cfg, log, err
	}
	return cfg, log, nil
}

func build(ctx context.Context, cfg config.Config, log *slog.Logger, projectPath string) (pipeline.Summary, error) {
	ign, err := ignore.Load(cfg.IgnoreDirsFile, cfg.IgnoreFilesFile)
	if err != nil {
		return pipeline.Summary{}, err
	}
	tmpl, err := page.New(cfg.BaseURL, cfg.ProjectName)
	if err != nil {
		return pipeline.Summary{}, err
	}
	b := pipeline.NewBuilder(cfg, convert.New(cfg.MarkdownExtensions...), tmpl, ign, log)
	return b.Run(ctx, projectPath)
}
