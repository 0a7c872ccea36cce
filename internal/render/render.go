package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgallion1/docbro/internal/doctree"
)

// ErrEmptyInput is returned when there is no summary record to render.
var ErrEmptyInput = errors.New("render: no docstring records")

// Fallback text for absent sections.
const (
	NoDescription = "No description provided"
	NoParameters  = "No parameters provided"
	NoReturns     = "No return value provided"
	NoRaises      = "No exceptions provided"
)

// Markdown renders the records of one source file. The first record is the
// file summary; its params and raises are not rendered.
func Markdown(records []doctree.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrEmptyInput
	}

	var out []string
	summary := records[0]
	out = append(out, "# "+summary.Name)
	out = append(out, "## Description")
	if summary.Description != "" {
		out = append(out, summary.Description)
	}
	if summary.Markdown != "" {
		out = append(out, "#### Markdown Content", summary.Markdown)
	}

	out = append(out, "## Functions")
	for _, rec := range records[1:] {
		out = appendEntity(out, rec)
	}

	return strings.Join(out, "\n"), nil
}

func appendEntity(out []string, rec doctree.Record) []string {
	out = append(out, fmt.Sprintf("### `%s`", rec.Name))
	out = append(out, orDefault(rec.Description, NoDescription))

	if rec.Markdown != "" {
		out = append(out, "#### Markdown Content", rec.Markdown)
	}

	out = append(out, "#### Parameters")
	if len(rec.Params) == 0 {
		out = append(out, NoParameters)
	}
	for _, p := range rec.Params {
		out = append(out, fmt.Sprintf("- `%s`: %s", p.Name, p.Description))
	}

	out = append(out, "#### Returns", orDefault(rec.Returns, NoReturns))

	out = append(out, "#### Raises")
	if len(rec.Raises) == 0 {
		out = append(out, NoRaises)
	}
	for _, r := range rec.Raises {
		out = append(out, fmt.Sprintf("- `%s`: %s", r.Type, r.Description))
	}
	return out
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
