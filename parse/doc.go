// Package parse converts source text into ir document trees.
//
// Both formats go through the same YAML parser (JSON is a subset of
// YAML flow syntax), which keeps object field order intact. A source
// may contain several documents separated by ---; Parse returns the
// ordered collection. Anchors, aliases and << merge keys are resolved
// during conversion, matching what a safe YAML load produces.
//
// Empty or whitespace-only input is rejected with ErrEmptySource for
// both formats; syntax failures are wrapped in ErrParse with the
// underlying parser message preserved.
package parse
