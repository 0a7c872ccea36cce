package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/docbro/internal/convert"
	"github.com/dgallion1/docbro/internal/doctree"
	"github.com/dgallion1/docbro/internal/parser"
	"github.com/dgallion1/docbro/internal/render"
)

// processFile runs parse → render → convert → page for one source file and
// writes the page to dst. Files without records produce no page.
func (b *Builder) processFile(src, dst string) (FileResult, error) {
	// Phase 1: Parse
	records, err := parseFile(src)
	if err != nil {
		return FileResult{}, fmt.Errorf("parse: %w", err)
	}
	if len(records) == 0 {
		return FileResult{Status: StatusSkipped}, nil
	}

	// Phase 2: Markdown
	md, err := render.Markdown(records)
	if err != nil {
		return FileResult{}, err
	}

	// Phase 3: HTML
	fragment, err := b.conv.Convert(md)
	if err != nil {
		return FileResult{}, err
	}

	// Phase 4: Page
	title := convert.Title(fragment)
	err = writeFile(dst, func(w io.Writer) error {
		return b.page.Render(w, title, fragment)
	})
	if err != nil {
		return FileResult{}, err
	}

	return FileResult{Status: StatusRendered, Records: len(records)}, nil
}

func parseFile(path string) ([]doctree.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.Parse(f)
}
