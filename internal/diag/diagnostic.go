package diag

import "github.com/tarn-lang/tarn/internal/span"

// Stage identifies which front-end phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable machine identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexInvalidInt        Code = "lex::invalid_int"
	CodeLexInvalidFloat      Code = "lex::invalid_float"
	CodeLexEmptyChar         Code = "lex::empty_char"
	CodeLexMultiChar         Code = "lex::multi_char"
	CodeLexUnknownEscape     Code = "lex::unknown_escape"
	CodeLexUnterminatedChar  Code = "lex::unterminated_char"
	CodeLexInvalidNumberChar Code = "lex::invalid_number_char"
	CodeLexInvalidToken      Code = "lex::invalid_token"

	// Parser errors
	CodeParseUnexpectedToken   Code = "parse::unexpected_token"
	CodeParseUnexpectedEOF     Code = "parse::unexpected_eof"
	CodeParseExpectedType      Code = "parse::expected_type"
	CodeParseExpectedPrimary   Code = "parse::expected_primary"
	CodeParseExpectedDelimiter Code = "parse::expected_delimiter"
	CodeParseExpectedLiteral   Code = "parse::expected_literal"
)

// LabeledSpan is a source span with an optional label. Primary spans are
// emphasized by the formatter; secondary spans give context.
type LabeledSpan struct {
	Span  span.Span
	Label string
	Style string // "primary" or "secondary"
}

// Diagnostic is a front-end diagnostic surfaced to end-users. The renderer
// reconstructs the annotated excerpt from the labeled spans alone.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Labels   []LabeledSpan
	Notes    []string
	Help     string
}

// New constructs an error-severity diagnostic with one primary span.
func New(stage Stage, code Code, msg string, primary span.Span) Diagnostic {
	return Diagnostic{
		Stage:    stage,
		Severity: SeverityError,
		Code:     code,
		Message:  msg,
		Labels:   []LabeledSpan{{Span: primary, Style: "primary"}},
	}
}

// Primary returns the diagnostic's primary span, or the zero span if it has
// no labels.
func (d Diagnostic) Primary() span.Span {
	for _, l := range d.Labels {
		if l.Style == "primary" {
			return l.Span
		}
	}
	if len(d.Labels) > 0 {
		return d.Labels[0].Span
	}
	return span.Span{}
}

// WithPrimarySpan adds a primary labeled span.
func (d Diagnostic) WithPrimarySpan(sp span.Span, label string) Diagnostic {
	d.Labels = append(d.Labels, LabeledSpan{Span: sp, Label: label, Style: "primary"})
	return d
}

// WithSecondarySpan adds a secondary labeled span.
func (d Diagnostic) WithSecondarySpan(sp span.Span, label string) Diagnostic {
	d.Labels = append(d.Labels, LabeledSpan{Span: sp, Label: label, Style: "secondary"})
	return d
}

// WithLabel sets the label on the most recently added span.
func (d Diagnostic) WithLabel(label string) Diagnostic {
	if len(d.Labels) > 0 {
		d.Labels[len(d.Labels)-1].Label = label
	}
	return d
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}
