package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter turns Markdown text into an HTML fragment.
type Converter interface {
	Convert(markdown string) (string, error)
}

// DefaultExtensions mirrors the extension set docbro pages are written for.
var DefaultExtensions = []string{"extra", "smarty"}

// extensionSets maps a configured name to the goldmark extenders that cover it.
// "extra" bundles tables, footnotes and definition lists; fenced code is core
// CommonMark. "smarty" is typographic punctuation.
var extensionSets = map[string][]goldmark.Extender{
	"extra":         {extension.Table, extension.Footnote, extension.DefinitionList},
	"smarty":        {extension.Typographer},
	"gfm":           {extension.GFM},
	"table":         {extension.Table},
	"tables":        {extension.Table},
	"footnote":      {extension.Footnote},
	"footnotes":     {extension.Footnote},
	"definition":    {extension.DefinitionList},
	"strikethrough": {extension.Strikethrough},
	"linkify":       {extension.Linkify},
}

// Goldmark is a Converter backed by a single configured goldmark engine.
type Goldmark struct {
	md goldmark.Markdown
}

// New builds a converter for the named extension sets. Unknown names are
// ignored; no names means DefaultExtensions.
func New(names ...string) *Goldmark {
	if len(names) == 0 {
		names = DefaultExtensions
	}

	var exts []goldmark.Extender
	seen := map[string]bool{}
	attrs := false
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if key == "extra" {
			attrs = true
		}
		exts = append(exts, extensionSets[key]...)
	}

	parserOpts := []parser.Option{}
	if attrs {
		parserOpts = append(parserOpts, parser.WithAttribute())
	}

	return &Goldmark{
		md: goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithParserOptions(parserOpts...),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Convert renders markdown as an HTML5 fragment.
func (g *Goldmark) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}
