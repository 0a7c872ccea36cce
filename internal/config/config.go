package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Templating
	BaseURL     string
	ProjectName string

	// Output
	OutputDir string

	// Ignore lists, one name or glob per line
	IgnoreDirsFile  string
	IgnoreFilesFile string

	// Markdown extension sets passed to the converter
	MarkdownExtensions []string

	// Preview server
	Port         string
	DocbroAPIKey string

	// Logging
	LogLevel  slog.Level
	LogFormat string
}

func Load() Config {
	cfg := Config{
		BaseURL:     envOr("BASE_URL", "https://aadarsh-ram.github.io/delta-hack-23/"),
		ProjectName: envOr("PROJECT_NAME", "Sample Project"),

		OutputDir: envOr("OUTPUT_DIR", "docs"),

		IgnoreDirsFile:  envOr("IGNORE_DIRS_FILE", ".ignoredirs"),
		IgnoreFilesFile: envOr("IGNORE_FILES_FILE", ".ignorefiles"),

		MarkdownExtensions: envList("MARKDOWN_EXTENSIONS", []string{"extra", "smarty"}),

		Port:         envOr("PORT", "8090"),
		DocbroAPIKey: os.Getenv("DOCBRO_API_KEY"),

		LogLevel:  envLevel("LOG_LEVEL", slog.LevelInfo),
		LogFormat: envOr("LOG_FORMAT", "text"),
	}

	if cfg.LogFormat != "json" {
		cfg.LogFormat = "text"
	}

	return cfg
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ProjectName) == "" {
		return fmt.Errorf("PROJECT_NAME is required")
	}
	if strings.ContainsAny(c.ProjectName, `/\`) || c.ProjectName == "." || c.ProjectName == ".." {
		return fmt.Errorf("PROJECT_NAME %q must be a single path element", c.ProjectName)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("PORT %q is not a valid port", c.Port)
	}
	return nil
}

// Logger builds the process logger described by the config.
func (c Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(v)); err == nil {
			return l
		}
	}
	return fallback
}
