package parser

import (
	"strings"

	"github.com/dgallion1/docbro/internal/doctree"
)

// DirectiveKind identifies the keyword of a directive line.
type DirectiveKind int

const (
	DirectiveUnknown DirectiveKind = iota
	DirectiveName
	DirectiveDescription
	DirectiveReturns
	DirectiveParam
	DirectiveRaises
)

// Directive is one decoded <prefix>:<keyword>:<value> line.
type Directive struct {
	Kind  DirectiveKind
	Ident string // Parameter name or error type for param/raises
	Value string
}

func parseDirective(lineNo int, line string) (Directive, error) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 3 {
		return Directive{}, &MalformedDirectiveError{
			Line:   lineNo,
			Text:   line,
			Reason: "expected <prefix>:<keyword>:<value>",
		}
	}

	d := Directive{Value: strings.TrimSpace(parts[2])}
	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return d, nil
	}

	switch fields[0] {
	case "name":
		d.Kind = DirectiveName
	case "description":
		d.Kind = DirectiveDescription
	case "returns":
		d.Kind = DirectiveReturns
	case "param", "raises":
		if len(fields) < 2 {
			return Directive{}, &MalformedDirectiveError{
				Line:   lineNo,
				Text:   line,
				Reason: fields[0] + " requires an identifier",
			}
		}
		d.Kind = DirectiveParam
		if fields[0] == "raises" {
			d.Kind = DirectiveRaises
		}
		d.Ident = fields[1]
	default:
		d.Kind = DirectiveUnknown
	}
	return d, nil
}

func (d Directive) apply(rec *doctree.Record) {
	switch d.Kind {
	case DirectiveName:
		rec.Name = d.Value
	case DirectiveDescription:
		rec.Description = d.Value
	case DirectiveReturns:
		rec.Returns = d.Value
	case DirectiveParam:
		rec.Params = append(rec.Params, doctree.Param{Name: d.Ident, Description: d.Value})
	case DirectiveRaises:
		rec.Raises = append(rec.Raises, doctree.Raise{Type: d.Ident, Description: d.Value})
	default:
		// Unrecognized keywords are ignored.
	}
}
