// Package validate proves that canonicalization was lossless. It
// recursively pairs an original tree with its sorted counterpart and
// reports every discrepancy as a typed, human-readable entry carrying
// a JSONPath-style location. An empty report is the pass condition.
package validate
