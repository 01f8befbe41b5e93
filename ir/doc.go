// Package ir holds the in-memory representation of parsed documents.
//
// A document is a tree of [Node] values, a tagged union over null,
// bool, number, string, array and object. Objects keep their fields in
// parallel Fields/Values slices so that key order is explicit; nothing
// in this package reorders an object.
//
// Trees are treated as values: consumers that change shape (such as
// canonicalization) clone rather than mutate, so a parsed tree can be
// compared against its transformed result.
//
// [Compare] defines a total order over nodes, used both for
// deterministic equality checks and as a tie-breaker in tests.
package ir
