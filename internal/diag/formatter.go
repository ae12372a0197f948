package diag

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tarn-lang/tarn/internal/source"
)

// Formatter renders diagnostics in a Rust-style format with source snippets.
// Spans are resolved to line/column coordinates through the source store.
type Formatter struct {
	store *source.Store
	w     io.Writer
}

// NewFormatter creates a formatter that writes rendered diagnostics to w.
func NewFormatter(store *source.Store, w io.Writer) *Formatter {
	return &Formatter{store: store, w: w}
}

// Format renders a single diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	primary := d.Primary()
	text, ok := f.store.Text(primary.Src)
	if !ok {
		f.printTrailer(d)
		return
	}

	lines := strings.Split(text, "\n")
	starts := lineStarts(text)

	pl, _ := locate(starts, primary.Start)
	pc := runeColumn(lines[pl-1], primary.Start-starts[pl-1])
	fmt.Fprintf(f.w, "  --> %s:%d:%d\n", f.store.Name(primary.Src), pl, pc)

	// Group labels by the line their span starts on.
	labelsByLine := make(map[int][]LabeledSpan)
	for _, label := range d.Labels {
		if label.Span.Src != primary.Src {
			continue
		}
		line, _ := locate(starts, label.Span.Start)
		labelsByLine[line] = append(labelsByLine[line], label)
	}

	lineNumbers := make([]int, 0, len(labelsByLine))
	for line := range labelsByLine {
		lineNumbers = append(lineNumbers, line)
	}
	sort.Ints(lineNumbers)

	width := len(fmt.Sprintf("%d", lineNumbers[len(lineNumbers)-1]))
	gutter := strings.Repeat(" ", width)

	fmt.Fprintf(f.w, "   %s |\n", gutter)
	for _, line := range lineNumbers {
		content := ""
		if line-1 < len(lines) {
			content = lines[line-1]
		}
		fmt.Fprintf(f.w, " %*d | %s\n", width, line, content)
		f.printUnderlines(gutter, starts, line, content, labelsByLine[line])
	}
	fmt.Fprintf(f.w, "   %s |\n", gutter)

	f.printTrailer(d)
}

// FormatAll renders each diagnostic in order.
func (f *Formatter) FormatAll(ds []Diagnostic) {
	for i, d := range ds {
		if i > 0 {
			fmt.Fprintln(f.w)
		}
		f.Format(d)
	}
}

func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityError)
	}

	if d.Code != "" {
		fmt.Fprintf(f.w, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(f.w, "%s: %s\n", severity, d.Message)
	}
}

// printUnderlines prints the caret line for all labels starting on line.
// Primary labels get '^', secondary ones '~'.
func (f *Formatter) printUnderlines(gutter string, starts []int, line int, content string, labels []LabeledSpan) {
	lineStart := starts[line-1]

	// Underline cells are runes, not bytes, so carets stay under the spanned
	// characters when the line holds multi-byte runes. One extra cell so an
	// empty span at the end of the line still gets a caret (the parser points
	// there on unexpected EOF).
	underline := make([]byte, utf8.RuneCountInString(content)+1)
	for i := range underline {
		underline[i] = ' '
	}

	mark := func(l LabeledSpan, ch byte) {
		byteFrom := clamp(l.Span.Start-lineStart, 0, len(content))
		byteTo := clamp(l.Span.End-lineStart, byteFrom, len(content))

		from := utf8.RuneCountInString(content[:byteFrom])
		to := from + utf8.RuneCountInString(content[byteFrom:byteTo])
		if to == from {
			to = from + 1
		}
		for i := from; i < to && i < len(underline); i++ {
			if ch == '^' || underline[i] == ' ' {
				underline[i] = ch
			}
		}
	}

	for _, l := range labels {
		if l.Style == "primary" {
			mark(l, '^')
		}
	}
	for _, l := range labels {
		if l.Style != "primary" {
			mark(l, '~')
		}
	}

	trimmed := strings.TrimRight(string(underline), " ")
	if trimmed == "" {
		return
	}

	fmt.Fprintf(f.w, "   %s | %s", gutter, trimmed)
	for _, l := range labels {
		if l.Label != "" {
			fmt.Fprintf(f.w, " %s", l.Label)
			break
		}
	}
	fmt.Fprintln(f.w)
}

func (f *Formatter) printTrailer(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.w, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.w, "help: %s\n", d.Help)
	}
}

// lineStarts returns the byte offset of the first character of every line.
func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// locate maps a byte offset to 1-based line and byte column numbers.
func locate(starts []int, offset int) (line, column int) {
	idx := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	if idx < 0 {
		idx = 0
	}
	return idx + 1, offset - starts[idx] + 1
}

// runeColumn converts a byte offset within a line to a 1-based rune column.
func runeColumn(line string, byteOff int) int {
	byteOff = clamp(byteOff, 0, len(line))
	return utf8.RuneCountInString(line[:byteOff]) + 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
