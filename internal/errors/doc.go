// Package errors provides structured, actionable error messages for skooma.
//
// Each error has a unique code (e.g., "E001") that maps to a category and a
// short message. Errors can carry a detail line, a source location with the
// surrounding lines of a tree document, a hint and an example.
//
// # Error Categories
//
//   - build: arguments the element builder cannot interpret
//   - tree: malformed JSON/YAML tree documents
//   - config: skooma.json problems
//   - publish: upload failures
//   - cli: command-line usage errors
//
// # Usage
//
//	err := errors.New("E101").
//	    WithLocation("pages/index.yaml", 12, 3).
//	    WithSuggestion("Elements are mappings with a $tag key")
//
//	fmt.Println(err.Format())
//
// SkoomaError implements Is by code, so a template created with New can be
// used as a sentinel:
//
//	var ErrUnsupportedArgument = errors.New("E001")
//	errors.Is(err, ErrUnsupportedArgument)
package errors
