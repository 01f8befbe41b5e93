package parse

import (
	"github.com/kvendingoldo/ordnung/disambig"
	"github.com/kvendingoldo/ordnung/format"
)

type parseOpts struct {
	format format.Format
	policy *disambig.Policy
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParsePolicy installs a disambiguation policy for this parse only.
// The policy is consulted twice: its text rewrites run before parsing
// permissive input, and its type-construction overrides run during AST
// conversion. Without a policy the parser's own typing rules apply.
func ParsePolicy(p *disambig.Policy) ParseOption {
	return func(o *parseOpts) { o.policy = p }
}
