package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/labra-lang/labra/runtime/interp"
	"github.com/labra-lang/labra/runtime/parser"
)

// Exit code constants
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitParseError       = 3
	ExitRuntimeError     = 4
)

// exitCodeFor maps an error to the process exit code
func exitCodeFor(err error) int {
	var parseErr *parser.Error
	var runtimeErr *interp.Error
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &parseErr):
		return ExitParseError
	case errors.As(err, &runtimeErr):
		return ExitRuntimeError
	case errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitInvalidArguments
	}
}

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	var runtimeErr *interp.Error
	_, _ = fmt.Fprintf(w, "%s%v\n", Colorize("error: ", ColorRed, useColor), err)
	if errors.As(err, &runtimeErr) && runtimeErr.Line > 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Colorize(fmt.Sprintf("  raised by the expression starting on line %d", runtimeErr.Line), ColorGray, useColor))
	}
}
