package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryBuild   Category = "build"
	CategoryTree    Category = "tree"
	CategoryConfig  Category = "config"
	CategoryPublish Category = "publish"
	CategoryCLI     Category = "cli"
)

// Location represents a position in a source file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// SkoomaError is a structured error with an optional source location and
// fix suggestion.
type SkoomaError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (build, tree, config, ...).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the source position where the error occurred.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example shows the correct usage.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SkoomaError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *SkoomaError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a SkoomaError with the same code. It lets
// callers match errors against sentinels created with New.
func (e *SkoomaError) Is(target error) bool {
	t, ok := target.(*SkoomaError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithLocation adds a source location and reads the surrounding lines.
func (e *SkoomaError) WithLocation(file string, line, column int) *SkoomaError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SkoomaError) WithSuggestion(s string) *SkoomaError {
	e.Suggestion = s
	return e
}

// WithExample adds a usage example to the error.
func (e *SkoomaError) WithExample(ex string) *SkoomaError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *SkoomaError) WithDetail(d string) *SkoomaError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *SkoomaError) Wrap(err error) *SkoomaError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the given line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a SkoomaError from a registered error code.
func New(code string) *SkoomaError {
	template, ok := registry[code]
	if !ok {
		return &SkoomaError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &SkoomaError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a SkoomaError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *SkoomaError {
	return &SkoomaError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a SkoomaError.
func FromError(err error, code string) *SkoomaError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SkoomaError); ok {
		return se
	}
	return New(code).Wrap(err)
}

// HasCode reports whether any error in err's chain is a SkoomaError with
// the given code.
func HasCode(err error, code string) bool {
	var se *SkoomaError
	for err != nil {
		if !stderrors.As(err, &se) {
			return false
		}
		if se.Code == code {
			return true
		}
		err = se.Wrapped
	}
	return false
}
