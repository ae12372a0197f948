package lexer

import (
	"github.com/tarn-lang/tarn/internal/diag"
	"github.com/tarn-lang/tarn/internal/span"
)

type LexErrorKind int

const (
	ErrInvalidInt LexErrorKind = iota
	ErrInvalidFloat
	ErrEmptyChar
	ErrMultiChar
	ErrUnknownEscape
	ErrUnterminatedChar
	ErrInvalidNumberChar
	ErrInvalidToken
)

// LexError describes one lexical error. The lexer records every error it
// encounters and keeps scanning; errors are values, never printed here.
type LexError struct {
	Kind    LexErrorKind
	Message string
	Span    span.Span
	Escape  rune // offending escape character for ErrUnknownEscape
}

func (e LexError) Error() string {
	return e.Message
}

func (k LexErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrInvalidInt:
		return diag.CodeLexInvalidInt
	case ErrInvalidFloat:
		return diag.CodeLexInvalidFloat
	case ErrEmptyChar:
		return diag.CodeLexEmptyChar
	case ErrMultiChar:
		return diag.CodeLexMultiChar
	case ErrUnknownEscape:
		return diag.CodeLexUnknownEscape
	case ErrUnterminatedChar:
		return diag.CodeLexUnterminatedChar
	case ErrInvalidNumberChar:
		return diag.CodeLexInvalidNumberChar
	case ErrInvalidToken:
		return diag.CodeLexInvalidToken
	default:
		return diag.Code("lex::unknown_error")
	}
}

func (k LexErrorKind) help() string {
	switch k {
	case ErrInvalidInt:
		return "ensure the integer is within valid range"
	case ErrInvalidFloat:
		return "check the float format (e.g., 1.0, 1e10, .5)"
	case ErrEmptyChar:
		return "character literals must contain exactly one character, e.g., 'a'"
	case ErrMultiChar:
		return "keep only one character in the literal"
	case ErrUnknownEscape:
		return `valid escape sequences are: \', \", \\, \n, \r, \t, \0`
	case ErrUnterminatedChar:
		return "add a closing ' before the end of input"
	case ErrInvalidNumberChar:
		return "separate the number from the following name with whitespace"
	case ErrInvalidToken:
		return "this character or sequence is not recognized"
	default:
		return ""
	}
}

// ToDiagnostic converts a lexer error into the shared diagnostic structure.
func (e LexError) ToDiagnostic() diag.Diagnostic {
	return diag.New(diag.StageLexer, e.Kind.diagnosticCode(), e.Message, e.Span).
		WithHelp(e.Kind.help())
}
