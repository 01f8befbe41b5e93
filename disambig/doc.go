// Package disambig prevents the permissive format's implicit-typing
// rules from silently reinterpreting ambiguous bare tokens.
//
// It works in two layers. Before parsing, [Policy.Rewrite] applies
// targeted line-oriented text rewrites that quote token shapes a YAML
// parser would otherwise coerce: digits:digits values, sequence items
// starting with '!', and the closed boolean-like word set
// {off, no, n, on, yes, y}. During AST conversion the parse package
// consults the same Policy as a second line of defense, so a shape the
// rewrite missed still lands as a string.
//
// The rewriting is raw text in, raw text out; nothing downstream of
// this package knows it is regex-based.
package disambig
