package lexer

import (
	"testing"

	"github.com/tarn-lang/tarn/internal/span"
)

func lexAll(t *testing.T, input string) []span.Spanned[Token] {
	t.Helper()

	tokens, errs := Lex(1, input)
	if len(errs) > 0 {
		for _, err := range errs {
			t.Errorf("unexpected lex error: %s at %s", err.Message, err.Span)
		}
		t.Fatalf("lexer reported %d error(s)", len(errs))
	}
	return tokens
}

func TestNextToken_Basic(t *testing.T) {
	input := `val x = 10`

	tests := []struct {
		expectedType TokenType
		expectedRaw  string
	}{
		{VAL, "val"},
		{IDENT, "x"},
		{EQ, "="},
		{INT, "10"},
		{EOF, ""},
	}

	l := New(1, input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Inner.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Inner.Type)
		}

		if tok.Inner.Raw != tt.expectedRaw {
			t.Fatalf("tests[%d] - raw wrong. expected=%q, got=%q",
				i, tt.expectedRaw, tok.Inner.Raw)
		}
	}
}

func TestNextToken_Operators(t *testing.T) {
	input := `, ( ) = <> : := :: ~ + - * > >= < <= && || &`

	tests := []TokenType{
		COMMA, LPAREN, RPAREN, EQ, NOT_EQ, COLON, COLON_EQ, CONS,
		TILDE, PLUS, MINUS, STAR, GT, GE, LT, LE, AND, OR, AMP,
		EOF,
	}

	l := New(1, input)

	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Inner.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, expected, tok.Inner.Type)
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	input := `fun val let in end if then else not mut while do mod div int bool real char unit true false`

	tests := []TokenType{
		FUN, VAL, LET, IN, END, IF, THEN, ELSE, NOT, MUT, WHILE, DO,
		MOD, DIV, KW_INT, KW_BOOL, KW_REAL, KW_CHAR, KW_UNIT, TRUE, FALSE,
		EOF,
	}

	l := New(1, input)

	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Inner.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, expected, tok.Inner.Type)
		}
	}
}

func TestKeywordIdentifierDisjointness(t *testing.T) {
	// Any input equal to a reserved keyword tokenizes as the keyword.
	for lexeme, expected := range keywords {
		tokens := lexAll(t, lexeme)
		if tokens[0].Inner.Type != expected {
			t.Fatalf("%q lexed as %q, expected keyword %q", lexeme, tokens[0].Inner.Type, expected)
		}
	}

	// A keyword with a suffix is an identifier again.
	tokens := lexAll(t, "valx lets iff")
	for i := 0; i < 3; i++ {
		if tokens[i].Inner.Type != IDENT {
			t.Fatalf("token %d: expected IDENT, got %q", i, tokens[i].Inner.Type)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	tokens := lexAll(t, "foo _bar Baz qux_42")

	expected := []string{"foo", "_bar", "Baz", "qux_42"}
	for i, raw := range expected {
		if tokens[i].Inner.Type != IDENT {
			t.Fatalf("token %d: expected IDENT, got %q", i, tokens[i].Inner.Type)
		}
		if tokens[i].Inner.Raw != raw {
			t.Fatalf("token %d: expected raw %q, got %q", i, raw, tokens[i].Inner.Raw)
		}
		if got := tokens[i].Inner.Ident.String(); got != raw {
			t.Fatalf("token %d: interned symbol resolves to %q, expected %q", i, got, raw)
		}
	}
}

func TestIdentifierInterning(t *testing.T) {
	tokens := lexAll(t, "counter other counter")

	if tokens[0].Inner.Ident != tokens[2].Inner.Ident {
		t.Fatalf("same lexeme must intern to the same symbol")
	}
	if tokens[0].Inner.Ident == tokens[1].Inner.Ident {
		t.Fatalf("distinct lexemes must intern to distinct symbols")
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input        string
		expectedType TokenType
		expectedInt  uint64
		expectedReal float64
	}{
		{"0", INT, 0, 0},
		{"42", INT, 42, 0},
		{"18446744073709551615", INT, 18446744073709551615, 0}, // max uint64
		{"3.14", REAL, 0, 3.14},
		{"1.", REAL, 0, 1.0},
		{".5", REAL, 0, 0.5},
		{"1e9", REAL, 0, 1e9},
		{"1E9", REAL, 0, 1e9},
		{"2.5e-3", REAL, 0, 2.5e-3},
		{".25e+2", REAL, 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lexAll(t, tt.input)

			tok := tokens[0].Inner
			if tok.Type != tt.expectedType {
				t.Fatalf("tokentype wrong. expected=%q, got=%q", tt.expectedType, tok.Type)
			}
			if tt.expectedType == INT && tok.Int != tt.expectedInt {
				t.Fatalf("int payload wrong. expected=%d, got=%d", tt.expectedInt, tok.Int)
			}
			if tt.expectedType == REAL && tok.Real != tt.expectedReal {
				t.Fatalf("real payload wrong. expected=%g, got=%g", tt.expectedReal, tok.Real)
			}
			if tokens[0].Span != span.New(1, 0, len(tt.input)) {
				t.Fatalf("span wrong. got=%v", tokens[0].Span)
			}
		})
	}
}

func TestSecondDotTerminatesNumber(t *testing.T) {
	// "1.2.3" is REAL 1.2 followed by REAL .3; at most one dot per literal.
	tokens := lexAll(t, "1.2.3")

	if tokens[0].Inner.Type != REAL || tokens[0].Inner.Real != 1.2 {
		t.Fatalf("expected REAL 1.2, got %q %g", tokens[0].Inner.Type, tokens[0].Inner.Real)
	}
	if tokens[1].Inner.Type != REAL || tokens[1].Inner.Real != 0.3 {
		t.Fatalf("expected REAL .3, got %q %g", tokens[1].Inner.Type, tokens[1].Inner.Real)
	}
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected rune
	}{
		{`'a'`, 'a'},
		{`'Z'`, 'Z'},
		{`' '`, ' '},
		{`'\n'`, '\n'},
		{`'\r'`, '\r'},
		{`'\t'`, '\t'},
		{`'\0'`, 0},
		{`'\\'`, '\\'},
		{`'\''`, '\''},
		{`'\"'`, '"'},
		{`'λ'`, 'λ'},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lexAll(t, tt.input)

			tok := tokens[0].Inner
			if tok.Type != CHAR {
				t.Fatalf("tokentype wrong. expected=CHAR, got=%q", tok.Type)
			}
			if tok.Char != tt.expected {
				t.Fatalf("char payload wrong. expected=%q, got=%q", tt.expected, tok.Char)
			}
			if tokens[0].Span != span.New(1, 0, len(tt.input)) {
				t.Fatalf("span wrong. got=%v", tokens[0].Span)
			}
		})
	}
}

func TestTokenSpans(t *testing.T) {
	input := "val x := 'a'"
	tokens := lexAll(t, input)

	// Offsets are non-decreasing and every span substrings to the lexeme.
	prev := -1
	for _, tok := range tokens {
		if tok.Span.Start < prev {
			t.Fatalf("token start %d is before previous start %d", tok.Span.Start, prev)
		}
		prev = tok.Span.Start

		if tok.Inner.Type == EOF {
			continue
		}
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Inner.Raw {
			t.Fatalf("span %v yields %q, raw is %q", tok.Span, got, tok.Inner.Raw)
		}
	}
}

func TestSingleEOF(t *testing.T) {
	for _, input := range []string{"", "   \t\n\f ", "val x = 1"} {
		tokens := lexAll(t, input)

		eofs := 0
		for _, tok := range tokens {
			if tok.Inner.Type == EOF {
				eofs++
			}
		}
		if eofs != 1 {
			t.Fatalf("input %q: expected exactly one EOF, got %d", input, eofs)
		}

		last := tokens[len(tokens)-1]
		if last.Inner.Type != EOF {
			t.Fatalf("input %q: last token is %q, not EOF", input, last.Inner.Type)
		}
		if last.Span != span.New(1, len(input), len(input)) {
			t.Fatalf("input %q: EOF span is %v, expected [%d,%d)", input, last.Span, len(input), len(input))
		}
	}
}

func TestLexIsIdempotent(t *testing.T) {
	input := "let val x : int = ~1 in x * 2 end"

	first, errs1 := Lex(1, input)
	second, errs2 := Lex(1, input)

	if len(errs1) != 0 || len(errs2) != 0 {
		t.Fatalf("unexpected errors: %v %v", errs1, errs2)
	}
	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("token %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBorrowIntroIsTwoTokens(t *testing.T) {
	tokens := lexAll(t, "& mut x")

	expected := []TokenType{AMP, MUT, IDENT, EOF}
	for i, typ := range expected {
		if tokens[i].Inner.Type != typ {
			t.Fatalf("token %d: expected %q, got %q", i, typ, tokens[i].Inner.Type)
		}
	}
}
