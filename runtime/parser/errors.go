package parser

import (
	"fmt"
	"strings"
)

// ErrorType represents different categories of parsing errors
type ErrorType int

const (
	ErrInvalidCharacter ErrorType = iota
	ErrUnexpectedEOF
	ErrNumberParse
	ErrSyntax
	ErrEmptyFile
)

func (t ErrorType) String() string {
	switch t {
	case ErrInvalidCharacter:
		return "invalid character"
	case ErrUnexpectedEOF:
		return "unexpected EOF"
	case ErrNumberParse:
		return "number parse error"
	case ErrSyntax:
		return "syntax error"
	case ErrEmptyFile:
		return "empty file"
	default:
		return "error"
	}
}

// Error is a parse error with location and enough context to render a
// source snippet. Line and Col are zero when no position is meaningful
// (unexpected EOF, empty file).
type Error struct {
	Type    ErrorType
	Message string
	Line    int
	Col     int
	Input   string
}

// Error returns the formatted error message with line/column and code snippet
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Type.String()
	}
	snippet := e.createCodeSnippet()
	if snippet == "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s\n%s", e.Type, e.Message, snippet)
}

// createCodeSnippet creates a code snippet showing the error location
func (e *Error) createCodeSnippet() string {
	if e.Input == "" || e.Line == 0 {
		return ""
	}

	lines := strings.Split(e.Input, "\n")
	if e.Line > len(lines) {
		return ""
	}

	lineContent := lines[e.Line-1]

	// Rust/Clang style: location pointer, then the line, then a caret
	var snippet strings.Builder
	snippet.WriteString(fmt.Sprintf("  --> %d:%d\n", e.Line, e.Col))
	snippet.WriteString("   |\n")
	snippet.WriteString(fmt.Sprintf("%2d | %s\n", e.Line, lineContent))
	snippet.WriteString("   | ")
	if e.Col > 0 && e.Col <= len(lineContent)+1 {
		snippet.WriteString(strings.Repeat(" ", e.Col-1) + "^")
	}

	return snippet.String()
}

func (p *parser) invalidCharacterError(c rune) error {
	return &Error{
		Type:    ErrInvalidCharacter,
		Message: fmt.Sprintf("found invalid character %q at %d:%d", c, p.line, p.col),
		Line:    p.line,
		Col:     p.col,
		Input:   p.input,
	}
}

func (p *parser) syntaxErrorAt(line, col int, format string, args ...any) error {
	return &Error{
		Type:    ErrSyntax,
		Message: fmt.Sprintf(format, args...) + fmt.Sprintf(" at %d:%d", line, col),
		Line:    line,
		Col:     col,
		Input:   p.input,
	}
}

func (p *parser) numberParseError(line, col int) error {
	return &Error{
		Type:    ErrNumberParse,
		Message: fmt.Sprintf("failed to parse number at %d:%d", line, col),
		Line:    line,
		Col:     col,
		Input:   p.input,
	}
}

func (p *parser) unexpectedEOFError() error {
	return &Error{
		Type:  ErrUnexpectedEOF,
		Input: p.input,
	}
}
