package parser

import (
	"strings"

	"github.com/dgallion1/docbro/internal/doctree"
)

// State is the position of the parser relative to tag blocks.
type State int

const (
	StateIdle State = iota
	StateInTag
	StateInTagMarkdown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInTag:
		return "in_tag"
	case StateInTagMarkdown:
		return "in_tag_markdown"
	default:
		return "unknown"
	}
}

// Machine is the line-driven docstring parser. Feed it lines in order and
// collect the sealed records with Records. A block still open when input
// ends is dropped.
type Machine struct {
	state    State
	line     int
	current  doctree.Record
	mdBuf    []string
	mdIndent string
	records  []doctree.Record
}

// NewMachine returns a machine in the idle state.
func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Records returns the records sealed so far.
func (m *Machine) Records() []doctree.Record {
	return m.records
}

// Feed advances the machine by one input line.
func (m *Machine) Feed(raw string) error {
	m.line++
	raw = strings.TrimSuffix(raw, "\r")
	line := strings.TrimSpace(raw)

	switch m.state {
	case StateIdle:
		if strings.HasPrefix(line, StartTag) {
			m.state = StateInTag
		}
		return nil

	case StateInTagMarkdown:
		if strings.HasPrefix(line, MarkdownEnd) {
			m.current.Markdown = strings.Join(m.mdBuf, "\n")
			m.mdBuf = nil
			m.state = StateInTag
			return nil
		}
		m.mdBuf = append(m.mdBuf, strings.TrimPrefix(raw, m.mdIndent))
		return nil
	}

	// StateInTag
	switch {
	case strings.HasPrefix(line, EndTag):
		m.records = append(m.records, m.current)
		m.current = doctree.Record{}
		m.state = StateIdle
	case strings.HasPrefix(line, MarkdownStart):
		m.mdIndent = raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
		m.mdBuf = nil
		m.state = StateInTagMarkdown
	case strings.HasPrefix(line, StartTag), line == "":
		// Blocks don't nest.
	default:
		d, err := parseDirective(m.line, line)
		if err != nil {
			return err
		}
		d.apply(&m.current)
	}
	return nil
}
