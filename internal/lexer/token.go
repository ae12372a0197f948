package lexer

import "github.com/tarn-lang/tarn/internal/interner"

// TokenType represents the type of a token.
type TokenType string

// Token represents a lexical token. Payload fields are owned copies so AST
// nodes never alias source bytes; only the field matching Type is meaningful.
type Token struct {
	Type  TokenType
	Raw   string          // exact bytes from source
	Int   uint64          // INT payload
	Real  float64         // REAL payload
	Char  rune            // CHAR payload (decoded)
	Ident interner.Symbol // IDENT payload (interned)
}

// Token type constants
const (
	// Special tokens
	EOF TokenType = "EOF"

	// Identifiers and literals
	IDENT TokenType = "IDENT" // x, foo_bar, ...
	INT   TokenType = "INT"   // 42
	REAL  TokenType = "REAL"  // 3.14, 1e9, .5
	CHAR  TokenType = "CHAR"  // 'a', '\n'

	// Operators and punctuation
	COMMA    TokenType = ","
	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	EQ       TokenType = "="
	NOT_EQ   TokenType = "<>"
	COLON    TokenType = ":"
	COLON_EQ TokenType = ":="
	CONS     TokenType = "::"
	TILDE    TokenType = "~"
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	STAR     TokenType = "*"
	GT       TokenType = ">"
	GE       TokenType = ">="
	LT       TokenType = "<"
	LE       TokenType = "<="
	AND      TokenType = "&&"
	OR       TokenType = "||"
	AMP      TokenType = "&" // borrow intro; "& mut" is two tokens

	// Keywords
	FUN     TokenType = "FUN"
	VAL     TokenType = "VAL"
	LET     TokenType = "LET"
	IN      TokenType = "IN"
	END     TokenType = "END"
	IF      TokenType = "IF"
	THEN    TokenType = "THEN"
	ELSE    TokenType = "ELSE"
	NOT     TokenType = "NOT"
	MUT     TokenType = "MUT"
	WHILE   TokenType = "WHILE"
	DO      TokenType = "DO"
	MOD     TokenType = "MOD"
	DIV     TokenType = "DIV"
	TRUE    TokenType = "TRUE"
	FALSE   TokenType = "FALSE"
	KW_INT  TokenType = "KW_INT"  // type keyword `int`
	KW_BOOL TokenType = "KW_BOOL" // type keyword `bool`
	KW_REAL TokenType = "KW_REAL" // type keyword `real`
	KW_CHAR TokenType = "KW_CHAR" // type keyword `char`
	KW_UNIT TokenType = "KW_UNIT" // type keyword `unit`
)

var keywords = map[string]TokenType{
	"fun":   FUN,
	"val":   VAL,
	"let":   LET,
	"in":    IN,
	"end":   END,
	"if":    IF,
	"then":  THEN,
	"else":  ELSE,
	"not":   NOT,
	"mut":   MUT,
	"while": WHILE,
	"do":    DO,
	"mod":   MOD,
	"div":   DIV,
	"true":  TRUE,
	"false": FALSE,
	"int":   KW_INT,
	"bool":  KW_BOOL,
	"real":  KW_REAL,
	"char":  KW_CHAR,
	"unit":  KW_UNIT,
}

// LookupIdent checks if the identifier is a keyword.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Describe returns the human-readable form used in diagnostics.
func (tt TokenType) Describe() string {
	switch tt {
	case EOF:
		return "end of input"
	case IDENT:
		return "identifier"
	case INT:
		return "integer literal"
	case REAL:
		return "real literal"
	case CHAR:
		return "character literal"
	case FUN, VAL, LET, IN, END, IF, THEN, ELSE, NOT, MUT, WHILE, DO, MOD, DIV, TRUE, FALSE:
		return "`" + keywordLexeme(tt) + "`"
	case KW_INT, KW_BOOL, KW_REAL, KW_CHAR, KW_UNIT:
		return "`" + keywordLexeme(tt) + "`"
	default:
		return "`" + string(tt) + "`"
	}
}

func keywordLexeme(tt TokenType) string {
	for lexeme, typ := range keywords {
		if typ == tt {
			return lexeme
		}
	}
	return string(tt)
}

// Describe returns the human-readable form of the token for diagnostics.
func (t Token) Describe() string {
	if t.Type == EOF {
		return "end of input"
	}
	if t.Raw != "" {
		return "`" + t.Raw + "`"
	}
	return t.Type.Describe()
}
