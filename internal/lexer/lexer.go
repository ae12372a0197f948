package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tarn-lang/tarn/internal/interner"
	"github.com/tarn-lang/tarn/internal/span"
)

// Lexer converts source bytes into span-tagged tokens. It is a greedy,
// longest-match state machine over byte offsets; spans index the original
// input directly. Errors are accumulated in Errors and scanning continues
// from the next boundary, so a single bad literal never hides the rest of
// the file.
type Lexer struct {
	src   span.SourceID
	input string
	pos   int

	Errors []LexError
}

// New creates a lexer for the given source.
func New(src span.SourceID, input string) *Lexer {
	return &Lexer{src: src, input: input}
}

// Lex scans the whole input. On success it returns the tokens in source
// order, terminated by a single EOF token whose span is [len, len). If any
// lexical error was recorded the error list is returned instead.
func Lex(src span.SourceID, input string) ([]span.Spanned[Token], []LexError) {
	l := New(src, input)

	var tokens []span.Spanned[Token]
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Inner.Type == EOF {
			break
		}
	}

	if len(l.Errors) > 0 {
		return nil, l.Errors
	}
	return tokens, nil
}

func (l *Lexer) addError(kind LexErrorKind, msg string, sp span.Span) {
	l.Errors = append(l.Errors, LexError{
		Kind:    kind,
		Message: msg,
		Span:    sp,
	})
}

// peek returns the byte at the current position, or 0 at end of input.
func (l *Lexer) peek() byte {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *Lexer) spanFrom(start int) span.Span {
	return span.New(l.src, start, l.pos)
}

// emit builds a token whose raw text is everything consumed since start.
func (l *Lexer) emit(tt TokenType, start int) span.Spanned[Token] {
	return span.NewSpanned(Token{Type: tt, Raw: l.input[start:l.pos]}, l.spanFrom(start))
}

// NextToken returns the next token from the input. Invalid input is recorded
// in Errors and skipped; the returned token is always the next valid one, or
// EOF once the input is exhausted.
func (l *Lexer) NextToken() span.Spanned[Token] {
	for {
		l.skipWhitespace()

		if l.pos >= len(l.input) {
			end := len(l.input)
			return span.NewSpanned(Token{Type: EOF}, span.New(l.src, end, end))
		}

		start := l.pos
		ch := l.input[l.pos]

		switch ch {
		case ',':
			l.pos++
			return l.emit(COMMA, start)
		case '(':
			l.pos++
			return l.emit(LPAREN, start)
		case ')':
			l.pos++
			return l.emit(RPAREN, start)
		case '=':
			l.pos++
			return l.emit(EQ, start)
		case '~':
			l.pos++
			return l.emit(TILDE, start)
		case '+':
			l.pos++
			return l.emit(PLUS, start)
		case '-':
			l.pos++
			return l.emit(MINUS, start)
		case '*':
			l.pos++
			return l.emit(STAR, start)

		case ':':
			l.pos++
			switch l.peek() {
			case ':':
				l.pos++
				return l.emit(CONS, start)
			case '=':
				l.pos++
				return l.emit(COLON_EQ, start)
			}
			return l.emit(COLON, start)

		case '<':
			l.pos++
			switch l.peek() {
			case '>':
				l.pos++
				return l.emit(NOT_EQ, start)
			case '=':
				l.pos++
				return l.emit(LE, start)
			}
			return l.emit(LT, start)

		case '>':
			l.pos++
			if l.peek() == '=' {
				l.pos++
				return l.emit(GE, start)
			}
			return l.emit(GT, start)

		case '&':
			l.pos++
			if l.peek() == '&' {
				l.pos++
				return l.emit(AND, start)
			}
			return l.emit(AMP, start)

		case '|':
			l.pos++
			if l.peek() == '|' {
				l.pos++
				return l.emit(OR, start)
			}
			// A lone '|' is not a token.
			l.addError(ErrInvalidToken, "invalid token `|`", l.spanFrom(start))
			continue

		case '\'':
			tok, ok := l.scanChar(start)
			if !ok {
				continue
			}
			return span.NewSpanned(tok, l.spanFrom(start))

		case '.':
			if isDigit(l.peekAt(1)) {
				tok, ok := l.scanNumber(start)
				if !ok {
					continue
				}
				return span.NewSpanned(tok, l.spanFrom(start))
			}
			l.pos++
			l.addError(ErrInvalidToken, "invalid token `.`", l.spanFrom(start))
			continue

		default:
			switch {
			case isDigit(ch):
				tok, ok := l.scanNumber(start)
				if !ok {
					continue
				}
				return span.NewSpanned(tok, l.spanFrom(start))

			case isIdentStart(ch):
				return l.scanIdent(start)

			default:
				_, size := utf8.DecodeRuneInString(l.input[l.pos:])
				l.pos += size
				l.addError(ErrInvalidToken,
					"invalid token "+strconv.Quote(l.input[start:l.pos]),
					l.spanFrom(start))
				continue
			}
		}
	}
}

// Whitespace is space, tab, newline and form feed.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\f':
			l.pos++
		default:
			return
		}
	}
}

// scanIdent reads an identifier and reclassifies it against the keyword
// table. Identifier payloads are interned so equality downstream is a single
// integer comparison.
func (l *Lexer) scanIdent(start int) span.Spanned[Token] {
	for isIdentPart(l.peek()) {
		l.pos++
	}

	lexeme := l.input[start:l.pos]
	tokType := LookupIdent(lexeme)

	tok := Token{Type: tokType, Raw: lexeme}
	if tokType == IDENT {
		tok.Ident = interner.Intern(lexeme)
	}
	return span.NewSpanned(tok, l.spanFrom(start))
}

// scanNumber reads a maximal run matching digit+('.'digit*)?([eE][+-]?digit+)?
// or '.'digit+([eE]...)?. The '.' and exponent are consumed at most once; a
// second '.' terminates the run. The lexeme is a real iff it contains '.',
// 'e' or 'E', otherwise a 64-bit natural.
func (l *Lexer) scanNumber(start int) (Token, bool) {
	if l.peek() == '.' {
		l.pos++ // leading dot, digit guaranteed by caller
		l.scanDigits()
	} else {
		l.scanDigits()
		if l.peek() == '.' {
			l.pos++
			l.scanDigits()
		}
	}

	// The exponent is consumed only when it is complete: [eE][+-]?digit+.
	if c := l.peek(); c == 'e' || c == 'E' {
		i := l.pos + 1
		if b := l.peekAt(1); b == '+' || b == '-' {
			i++
		}
		if i < len(l.input) && isDigit(l.input[i]) {
			l.pos = i
			l.scanDigits()
		}
	}

	// A name character glued to a number is a malformed literal, not two
	// tokens. Consume the tail so the error covers the whole blob.
	if isIdentStart(l.peek()) {
		for isIdentPart(l.peek()) {
			l.pos++
		}
		l.addError(ErrInvalidNumberChar,
			"invalid character in number literal "+strconv.Quote(l.input[start:l.pos]),
			l.spanFrom(start))
		return Token{}, false
	}

	lexeme := l.input[start:l.pos]

	if strings.ContainsAny(lexeme, ".eE") {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			l.addError(ErrInvalidFloat,
				"invalid float literal "+strconv.Quote(lexeme),
				l.spanFrom(start))
			return Token{}, false
		}
		return Token{Type: REAL, Raw: lexeme, Real: value}, true
	}

	value, err := strconv.ParseUint(lexeme, 10, 64)
	if err != nil {
		// Overflow is an error, never a saturated token.
		l.addError(ErrInvalidInt,
			"invalid integer literal "+strconv.Quote(lexeme),
			l.spanFrom(start))
		return Token{}, false
	}
	return Token{Type: INT, Raw: lexeme, Int: value}, true
}

func (l *Lexer) scanDigits() {
	for isDigit(l.peek()) {
		l.pos++
	}
}

// scanChar reads '<payload>' where payload is one scalar or a backslash
// escape. On error the closing quote is still consumed when present, so
// scanning resynchronizes after the literal.
func (l *Lexer) scanChar(start int) (Token, bool) {
	l.pos++ // opening quote

	if l.peek() == '\'' {
		l.pos++
		l.addError(ErrEmptyChar, "character literal cannot be empty", l.spanFrom(start))
		return Token{}, false
	}

	var value rune
	scalars := 0
	badEscape := rune(-1)

	for {
		if l.pos >= len(l.input) || l.input[l.pos] == '\n' {
			l.addError(ErrUnterminatedChar, "unterminated character literal", l.spanFrom(start))
			return Token{}, false
		}

		if l.input[l.pos] == '\'' {
			l.pos++
			break
		}

		if l.input[l.pos] == '\\' {
			l.pos++
			if l.pos >= len(l.input) {
				l.addError(ErrUnterminatedChar, "unterminated character literal", l.spanFrom(start))
				return Token{}, false
			}
			esc, size := utf8.DecodeRuneInString(l.input[l.pos:])
			l.pos += size

			decoded, ok := decodeEscape(esc)
			if !ok && badEscape < 0 {
				badEscape = esc
			}
			value = decoded
			scalars++
			continue
		}

		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += size
		value = r
		scalars++
	}

	if scalars > 1 {
		l.addError(ErrMultiChar,
			"character literal must contain exactly one character",
			l.spanFrom(start))
		return Token{}, false
	}
	if badEscape >= 0 {
		l.Errors = append(l.Errors, LexError{
			Kind:    ErrUnknownEscape,
			Message: "unknown escape sequence in character literal",
			Span:    l.spanFrom(start),
			Escape:  badEscape,
		})
		return Token{}, false
	}

	return Token{Type: CHAR, Raw: l.input[start:l.pos], Char: value}, true
}

func decodeEscape(c rune) (rune, bool) {
	switch c {
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '0':
		return 0, true
	default:
		return c, false
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Identifiers are ASCII: [a-zA-Z_][a-zA-Z0-9_]*.
func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
