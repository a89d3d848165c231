package comments

import (
	"fmt"
	"io"
	"strings"
)

// Block is one contiguous comment found in a file. StartLine is the 1-based
// line number of the first line of the comment. Text holds the comment's
// lines, trimmed of surrounding whitespace, each terminated by a newline.
// For line comments the leading "//" marker is stripped from each line; for
// block comments the lines (including the "/*" and "*/" lines) are kept as
// written.
type Block struct {
	StartLine int
	Text      string
}

type scanState int

const (
	noComment scanState = iota
	inLineComment
	inBlockComment
)

// Extractor walks the lines of a single file and emits comment blocks one at
// a time. It is a single-use cursor: create a fresh Extractor per file.
//
// Recognition is deliberately line-oriented, not a real lexer. A run of lines
// whose trimmed text starts with "//" forms a line-comment block. A line
// starting with "/*" without a "*/" on the same line opens a block comment,
// closed by a line that is exactly "*/". Everything else is invisible: code
// with a trailing comment, single-line "/* ... */", nested block comments,
// and comment-like text inside string literals are all out of scope.
type Extractor struct {
	lines []string
	pos   int
	warn  io.Writer
}

// NewExtractor returns an Extractor over the full content of one file.
// Diagnostics for comments left open at end of file are written to warn.
func NewExtractor(content string, warn io.Writer) *Extractor {
	if warn == nil {
		warn = io.Discard
	}
	return &Extractor{lines: splitLines(content), warn: warn}
}

// Next returns the next comment block. The second return value is false once
// the file is exhausted; a true return always carries a fully-formed block.
func (e *Extractor) Next() (Block, bool) {
	state := noComment
	start := 0
	var collected []string

	for e.pos < len(e.lines) {
		line := e.lines[e.pos]

		switch state {
		case noComment:
			if strings.HasPrefix(line, "//") {
				collected = append(collected, strings.TrimSpace(strings.TrimPrefix(line, "//")))
				start = e.pos + 1
				state = inLineComment
			} else if strings.HasPrefix(line, "/*") && !strings.Contains(line, "*/") {
				collected = append(collected, line)
				start = e.pos + 1
				state = inBlockComment
			}
			e.pos++

		case inLineComment:
			if !strings.HasPrefix(line, "//") {
				// End of the run. The terminating line is left in place so
				// the next call can consider it as the start of a new block.
				return Block{StartLine: start, Text: joinLines(collected)}, true
			}
			collected = append(collected, strings.TrimSpace(strings.TrimPrefix(line, "//")))
			e.pos++

		case inBlockComment:
			collected = append(collected, line)
			e.pos++
			if line == "*/" {
				return Block{StartLine: start, Text: joinLines(collected)}, true
			}
		}
	}

	if state != noComment {
		fmt.Fprintf(e.warn, "unterminated comment at end of file (opened at line %d)\n", start)
		return Block{StartLine: start, Text: joinLines(collected)}, true
	}
	return Block{}, false
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

func joinLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
