// Package canon produces the deterministic ordering of a document
// tree: object entries by key, scalar-only arrays by value with nulls
// last, and optionally object arrays and whole document collections by
// first-key value. Children are canonicalized independently of their
// siblings, and input trees are never mutated.
//
// Cross-type orderings compare by textual rendering on purpose: it is
// a simple total order, at the cost of numbers and strings
// interleaving where a field mixes types.
package canon
