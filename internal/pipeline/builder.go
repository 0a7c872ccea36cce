package pipeline

import (
	"context"
	"fmt"
	"html"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/docbro/internal/config"
	"github.com/dgallion1/docbro/internal/convert"
	"github.com/dgallion1/docbro/internal/ignore"
	"github.com/dgallion1/docbro/internal/page"
	"github.com/dgallion1/docbro/internal/toc"
)

// IndexFile is the name of the generated table of contents page.
const IndexFile = "index.html"

// Builder turns a source tree into a static documentation site. A run is
// sequential and stops at the first error.
type Builder struct {
	cfg    config.Config
	conv   convert.Converter
	page   *page.Template
	ignore *ignore.Set
	log    *slog.Logger
}

// NewBuilder wires a builder. A nil ignore set excludes nothing.
func NewBuilder(cfg config.Config, conv convert.Converter, tmpl *page.Template, ign *ignore.Set, log *slog.Logger) *Builder {
	return &Builder{
		cfg:    cfg,
		conv:   conv,
		page:   tmpl,
		ignore: ign,
		log:    log,
	}
}

// Run regenerates the output directory from projectPath.
func (b *Builder) Run(ctx context.Context, projectPath string) (Summary, error) {
	start := time.Now()
	var sum Summary

	src, out, err := b.resolvePaths(projectPath)
	if err != nil {
		return sum, err
	}
	pagesRoot := filepath.Join(out, b.cfg.ProjectName)

	b.log.Info("building documentation", "project", src, "output", out)

	if err := os.RemoveAll(out); err != nil {
		return sum, fmt.Errorf("clear output: %w", err)
	}
	if err := os.MkdirAll(pagesRoot, 0o755); err != nil {
		return sum, fmt.Errorf("create output: %w", err)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != src && (path == out || b.ignore.SkipDir(d.Name())) {
				return filepath.SkipDir
			}
			if err := os.MkdirAll(filepath.Join(pagesRoot, rel), 0o755); err != nil {
				return fmt.Errorf("create %s: %w", rel, err)
			}
			return nil
		}

		if !d.Type().IsRegular() || b.ignore.SkipFile(d.Name()) {
			return nil
		}

		res, err := b.processFile(path, filepath.Join(pagesRoot, rel+toc.PageExt))
		if err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}
		res.Source = filepath.ToSlash(rel)
		if res.Status == StatusRendered {
			res.Page = filepath.ToSlash(filepath.Join(b.cfg.ProjectName, rel+toc.PageExt))
		}
		b.log.Debug("processed file", "file", res.Source, "status", res.Status, "records", res.Records)
		sum.add(res)
		return nil
	})
	if err != nil {
		return sum, err
	}

	if err := b.writeIndex(out); err != nil {
		return sum, err
	}

	sum.Duration = time.Since(start)
	b.log.Info("build complete",
		"files", sum.FilesScanned,
		"pages", sum.PagesWritten,
		"skipped", sum.FilesSkipped,
		"records", sum.Records,
		"duration_ms", sum.Duration.Milliseconds(),
	)
	return sum, nil
}

// resolvePaths returns absolute project and output paths, refusing an
// output directory that would delete the project when cleared.
func (b *Builder) resolvePaths(projectPath string) (string, string, error) {
	src, err := filepath.Abs(projectPath)
	if err != nil {
		return "", "", fmt.Errorf("resolve project: %w", err)
	}
	info, err := os.Stat(src)
	if err != nil {
		return "", "", fmt.Errorf("project: %w", err)
	}
	if !info.IsDir() {
		return "", "", fmt.Errorf("project %s is not a directory", src)
	}

	out, err := filepath.Abs(b.cfg.OutputDir)
	if err != nil {
		return "", "", fmt.Errorf("resolve output: %w", err)
	}
	if rel, err := filepath.Rel(out, src); err == nil && (rel == "." || !strings.HasPrefix(rel, "..")) {
		return "", "", fmt.Errorf("output dir %s contains the project %s", out, src)
	}
	return src, out, nil
}

// writeIndex renders the table of contents over every generated page.
func (b *Builder) writeIndex(out string) error {
	lines, err := toc.Generate(os.DirFS(out), b.cfg.ProjectName, url.PathEscape(b.cfg.ProjectName))
	if err != nil {
		return fmt.Errorf("toc: %w", err)
	}

	body, err := b.conv.Convert(strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("toc: %w", err)
	}
	header := []string{
		fmt.Sprintf("<h1>Documentation for %s</h1>\n", html.EscapeString(b.cfg.ProjectName)),
		"<h2>📁 / </h2>\n",
	}
	fragment := strings.Join(header, "\n") + body

	title := "Documentation for " + b.cfg.ProjectName
	return writeFile(filepath.Join(out, IndexFile), func(w io.Writer) error {
		return b.page.Render(w, title, fragment)
	})
}

// writeFile creates path and hands it to fill, reporting the close error
// when fill succeeds.
func writeFile(path string, fill func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return fill(f)
}
