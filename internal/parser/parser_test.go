package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLines_SingleRecord(t *testing.T) {
	lines := []string{
		"docbrostart",
		"x:name:Add",
		"x:description:Adds two numbers",
		"x:returns:The sum",
		"docbroend",
	}
	recs, err := ParseLines(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.Name != "Add" || r.Description != "Adds two numbers" || r.Returns != "The sum" {
		t.Errorf("unexpected record: %+v", r)
	}
	if len(r.Params) != 0 || len(r.Raises) != 0 {
		t.Errorf("expected no params or raises, got %+v", r)
	}
}

func TestParseLines_ParamsAndRaisesKeepOrder(t *testing.T) {
	lines := []string{
		"docbrostart",
		"x:name:Add",
		"x:param a:first operand",
		"x:param b:second operand",
		"x:raises TypeError:when operands differ",
		"x:raises OverflowError:when too large",
		"docbroend",
	}
	recs, err := ParseLines(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := recs[0]
	if len(r.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(r.Params))
	}
	if r.Params[0].Name != "a" || r.Params[0].Description != "first operand" {
		t.Errorf("param[0]: got %+v", r.Params[0])
	}
	if r.Params[1].Name != "b" || r.Params[1].Description != "second operand" {
		t.Errorf("param[1]: got %+v", r.Params[1])
	}
	if len(r.Raises) != 2 || r.Raises[0].Type != "TypeError" || r.Raises[1].Type != "OverflowError" {
		t.Errorf("unexpected raises: %+v", r.Raises)
	}
}

func TestParseLines_UnterminatedBlockDiscarded(t *testing.T) {
	lines := []string{
		"docbrostart",
		"x:name:Module",
		"docbroend",
		"docbrostart",
		"x:name:Dangling",
	}
	recs, err := ParseLines(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Name != "Module" {
		t.Errorf("expected %q, got %q", "Module", recs[0].Name)
	}
}

func TestParseLines_MarkdownBlockVerbatim(t *testing.T) {
	lines := []string{
		"    docbrostart",
		"    x:name:Module",
		"    :markdown_start:",
		"    ## Usage",
		"",
		"    x:name:NotADirective",
		"        indented code",
		"    :markdown_end:",
		"    docbroend",
	}
	recs, err := ParseLines(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	want := "## Usage\n\nx:name:NotADirective\n    indented code"
	if recs[0].Markdown != want {
		t.Errorf("expected markdown %q, got %q", want, recs[0].Markdown)
	}
	if recs[0].Name != "Module" {
		t.Errorf("markdown content must not be interpreted, name = %q", recs[0].Name)
	}
}

func TestParseLines_ValueKeepsColons(t *testing.T) {
	recs, err := ParseLines([]string{
		"docbrostart",
		"# :description: see http://example.com: it works",
		"docbroend",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "see http://example.com: it works"
	if recs[0].Description != want {
		t.Errorf("expected %q, got %q", want, recs[0].Description)
	}
}

func TestParseLines_UnknownKeywordIgnored(t *testing.T) {
	recs, err := ParseLines([]string{
		"docbrostart",
		"x:name:F",
		"x:author:someone",
		"x::empty keyword",
		"docbroend",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recs[0].Name != "F" || recs[0].Description != "" {
		t.Errorf("unexpected record: %+v", recs[0])
	}
}

func TestParseLines_LastScalarWins(t *testing.T) {
	recs, err := ParseLines([]string{
		"docbrostart",
		"x:name:First",
		"x:name:Second",
		"docbroend",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recs[0].Name != "Second" {
		t.Errorf("expected %q, got %q", "Second", recs[0].Name)
	}
}

func TestParseLines_MalformedDirective(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no colons", "just words"},
		{"one colon", "x:name"},
		{"param without name", "x:param:orphan"},
		{"raises without type", "x:raises :orphan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLines([]string{"docbrostart", "x:name:F", tt.line, "docbroend"})
			var mde *MalformedDirectiveError
			if !errors.As(err, &mde) {
				t.Fatalf("expected MalformedDirectiveError, got %v", err)
			}
			if mde.Line != 3 {
				t.Errorf("expected line 3, got %d", mde.Line)
			}
		})
	}
}

func TestParseLines_OutsideBlockIgnored(t *testing.T) {
	recs, err := ParseLines([]string{
		"def add(a, b):",
		"docbroend",
		":markdown_start:",
		"return a + b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected 0 records, got %d", len(recs))
	}
}

func TestParse_Reader(t *testing.T) {
	src := "\"\"\"\ndocbrostart\r\n:name:mathutils\r\n:description:Math helpers\r\ndocbroend\n\"\"\"\n" +
		"def add(a, b):\n    '''\n    docbrostart\n    :name:add\n    :param a:left\n    docbroend\n    '''\n"
	recs, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Name != "mathutils" || recs[0].Description != "Math helpers" {
		t.Errorf("unexpected summary: %+v", recs[0])
	}
	if recs[1].Name != "add" || len(recs[1].Params) != 1 {
		t.Errorf("unexpected entity: %+v", recs[1])
	}
}

func TestMachine_Transitions(t *testing.T) {
	m := NewMachine()
	steps := []struct {
		line string
		want State
	}{
		{"text", StateIdle},
		{"docbrostart", StateInTag},
		{"docbrostart", StateInTag},
		{":markdown_start:", StateInTagMarkdown},
		{"docbroend", StateInTagMarkdown},
		{":markdown_end:", StateInTag},
		{"docbroend", StateIdle},
	}
	for i, s := range steps {
		if err := m.Feed(s.line); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if m.State() != s.want {
			t.Fatalf("step %d (%q): expected state %s, got %s", i, s.line, s.want, m.State())
		}
	}
	if len(m.Records()) != 1 {
		t.Fatalf("expected 1 record, got %d", len(m.Records()))
	}
	if got := m.Records()[0].Markdown; got != "docbroend" {
		t.Errorf("expected markdown %q, got %q", "docbroend", got)
	}
}

func TestParse_VeryLongLine(t *testing.T) {
	src := strings.Repeat("a", 2<<20) + "\ndocbrostart\n:name:m\n:description:" +
		strings.Repeat("d", 2<<20) + "\ndocbroend\n"
	recs, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Name != "m" {
		t.Errorf("expected name %q, got %q", "m", recs[0].Name)
	}
	if len(recs[0].Description) != 2<<20 {
		t.Errorf("expected description of %d bytes, got %d", 2<<20, len(recs[0].Description))
	}
}

func TestParse_NoTrailingNewline(t *testing.T) {
	recs, err := Parse(strings.NewReader("docbrostart\n:name:m\ndocbroend"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].Name != "m" {
		t.Errorf("expected one record named %q, got %+v", "m", recs)
	}
}

func TestParse_MalformedLineNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("x\r\ndocbrostart\r\nbroken\r\n"))
	var mde *MalformedDirectiveError
	if !errors.As(err, &mde) {
		t.Fatalf("expected MalformedDirectiveError, got %v", err)
	}
	if mde.Line != 3 || mde.Text != "broken" {
		t.Errorf("expected line 3 %q, got line %d %q", "broken", mde.Line, mde.Text)
	}
}
