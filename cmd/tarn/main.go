package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tarn-lang/tarn/internal/ast"
	"github.com/tarn-lang/tarn/internal/diag"
	"github.com/tarn-lang/tarn/internal/lexer"
	"github.com/tarn-lang/tarn/internal/parser"
	"github.com/tarn-lang/tarn/internal/source"
	"github.com/tarn-lang/tarn/internal/span"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tarn <command> [options]\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  lex <file>      Tokenize a Tarn source file and print the tokens\n")
		fmt.Fprintf(os.Stderr, "  parse <file>    Parse a Tarn source file and print the AST\n")
		fmt.Fprintf(os.Stderr, "  expr <text>     Parse a single expression given on the command line\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "lex":
		runLex(args)
	case "parse":
		runParse(args)
	case "expr":
		runExpr(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func loadFile(store *source.Store, path string) span.SourceID {
	src, err := store.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tarn: %v\n", err)
		os.Exit(1)
	}
	return src
}

// tokenize runs the lexer and renders any errors; on failure it exits 1.
func tokenize(store *source.Store, src span.SourceID) []span.Spanned[lexer.Token] {
	text, _ := store.Text(src)
	tokens, lexErrs := lexer.Lex(src, text)
	if len(lexErrs) > 0 {
		f := diag.NewFormatter(store, os.Stderr)
		for _, e := range lexErrs {
			f.Format(e.ToDiagnostic())
		}
		os.Exit(1)
	}
	return tokens
}

func runLex(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: tarn lex <file>\n")
		os.Exit(1)
	}

	store := source.NewStore()
	src := loadFile(store, args[0])

	for _, tok := range tokenize(store, src) {
		fmt.Printf("%-8s %-10s %s\n", tok.Span, tok.Inner.Type, tok.Inner.Raw)
	}
}

func runParse(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: tarn parse <file>\n")
		os.Exit(1)
	}

	store := source.NewStore()
	src := loadFile(store, args[0])

	prog, err := parser.New(tokenize(store, src)).ParseProgram()
	if err != nil {
		exitWithParseError(store, err)
	}
	fmt.Println(ast.Dump(prog))
}

func runExpr(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: tarn expr <text>\n")
		os.Exit(1)
	}

	store := source.NewStore()
	src := store.Add("<expr>", args[0])

	expr, err := parser.New(tokenize(store, src)).ParseExpr()
	if err != nil {
		exitWithParseError(store, err)
	}
	fmt.Println(ast.Dump(expr))
}

func exitWithParseError(store *source.Store, err error) {
	if perr, ok := err.(*parser.ParseError); ok {
		diag.NewFormatter(store, os.Stderr).Format(perr.ToDiagnostic())
	} else {
		fmt.Fprintf(os.Stderr, "tarn: %v\n", err)
	}
	os.Exit(1)
}
