package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docbro/internal/doctree"
)

// Tag markers recognized at the start of a (whitespace-trimmed) line.
const (
	StartTag      = "docbrostart"
	EndTag        = "docbroend"
	MarkdownStart = ":markdown_start:"
	MarkdownEnd   = ":markdown_end:"
)

// MalformedDirectiveError reports a directive line inside a tag block that
// does not have the <prefix>:<keyword>:<value> shape.
type MalformedDirectiveError struct {
	Line   int    // 1-based line number
	Text   string // The offending line, trimmed
	Reason string
}

func (e *MalformedDirectiveError) Error() string {
	return fmt.Sprintf("line %d: malformed directive %q: %s", e.Line, e.Text, e.Reason)
}

// Parse reads r line by line and returns the docstring records it contains.
// Lines of any length are accepted.
func Parse(r io.Reader) ([]doctree.Record, error) {
	br := bufio.NewReader(r)

	m := NewMachine()
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read: %w", err)
		}
		if line != "" || err == nil {
			if ferr := m.Feed(strings.TrimSuffix(line, "\n")); ferr != nil {
				return nil, ferr
			}
		}
		if err != nil {
			break
		}
	}
	return m.Records(), nil
}

// ParseLines is Parse over an already split sequence of lines.
func ParseLines(lines []string) ([]doctree.Record, error) {
	m := NewMachine()
	for _, line := range lines {
		if err := m.Feed(line); err != nil {
			return nil, err
		}
	}
	return m.Records(), nil
}
