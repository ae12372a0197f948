package parser

import (
	"fmt"

	"github.com/tarn-lang/tarn/internal/diag"
	"github.com/tarn-lang/tarn/internal/lexer"
	"github.com/tarn-lang/tarn/internal/span"
)

type ParseErrorKind int

const (
	ErrUnexpectedToken ParseErrorKind = iota
	ErrUnexpectedEOF
	ErrExpectedType
	ErrExpectedPrimary
	ErrExpectedDelimiter
	ErrExpectedLiteral
)

// ParseError is the single error a failed parse surfaces. The parser never
// logs or prints; callers fan the error out to the diagnostic renderer.
type ParseError struct {
	Kind     ParseErrorKind
	Message  string
	Span     span.Span
	Expected string
	Found    string
	Opened   string    // opening delimiter lexeme, for ErrExpectedDelimiter
	OpenSpan span.Span // where the unmatched delimiter was opened
}

func (e *ParseError) Error() string {
	return e.Message
}

func unexpectedToken(expected string, found span.Spanned[lexer.Token]) *ParseError {
	return &ParseError{
		Kind:     ErrUnexpectedToken,
		Message:  fmt.Sprintf("expected %s, found %s", expected, found.Inner.Describe()),
		Span:     found.Span,
		Expected: expected,
		Found:    found.Inner.Describe(),
	}
}

func unexpectedEOF(sp span.Span) *ParseError {
	return &ParseError{
		Kind:    ErrUnexpectedEOF,
		Message: "unexpected end of input",
		Span:    sp,
	}
}

func expectedType(found span.Spanned[lexer.Token]) *ParseError {
	return &ParseError{
		Kind:    ErrExpectedType,
		Message: fmt.Sprintf("expected a type, found %s", found.Inner.Describe()),
		Span:    found.Span,
		Found:   found.Inner.Describe(),
	}
}

func expectedPrimary(found span.Spanned[lexer.Token]) *ParseError {
	return &ParseError{
		Kind:    ErrExpectedPrimary,
		Message: fmt.Sprintf("expected an expression, found %s", found.Inner.Describe()),
		Span:    found.Span,
		Found:   found.Inner.Describe(),
	}
}

func expectedDelimiter(opened string, openSpan span.Span, expected string, end span.Spanned[lexer.Token]) *ParseError {
	return &ParseError{
		Kind:     ErrExpectedDelimiter,
		Message:  fmt.Sprintf("expected `%s` to close `%s`, found %s", expected, opened, end.Inner.Describe()),
		Span:     end.Span,
		Expected: expected,
		Found:    end.Inner.Describe(),
		Opened:   opened,
		OpenSpan: openSpan,
	}
}

func (k ParseErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnexpectedToken:
		return diag.CodeParseUnexpectedToken
	case ErrUnexpectedEOF:
		return diag.CodeParseUnexpectedEOF
	case ErrExpectedType:
		return diag.CodeParseExpectedType
	case ErrExpectedPrimary:
		return diag.CodeParseExpectedPrimary
	case ErrExpectedDelimiter:
		return diag.CodeParseExpectedDelimiter
	case ErrExpectedLiteral:
		return diag.CodeParseExpectedLiteral
	default:
		return diag.Code("parse::unknown_error")
	}
}

// ToDiagnostic converts the parse error into the shared diagnostic structure.
func (e *ParseError) ToDiagnostic() diag.Diagnostic {
	d := diag.New(diag.StageParser, e.Kind.diagnosticCode(), e.Message, e.Span)

	switch e.Kind {
	case ErrUnexpectedToken:
		d = d.WithLabel(fmt.Sprintf("expected %s here", e.Expected))
	case ErrUnexpectedEOF:
		d = d.WithLabel("the input ends here").
			WithHelp("an expression is required at this position")
	case ErrExpectedType:
		d = d.WithLabel("not a type").
			WithHelp("the type keywords are `int`, `bool`, `char`, `real` and `unit`")
	case ErrExpectedPrimary:
		d = d.WithLabel("expected an expression here")
	case ErrExpectedDelimiter:
		d = d.WithLabel(fmt.Sprintf("expected `%s` here", e.Expected)).
			WithSecondarySpan(e.OpenSpan, fmt.Sprintf("unclosed `%s` opened here", e.Opened))
	case ErrExpectedLiteral:
		d = d.WithLabel("expected a literal here")
	}

	return d
}
