package disambig

import (
	"regexp"
	"strings"
)

// ambiguousWords are the bare tokens historically auto-coerced to
// boolean by permissive YAML parsers (the "Norway problem"). The set is
// closed: these and only these words are force-quoted.
var ambiguousWords = map[string]bool{
	"off": true,
	"no":  true,
	"n":   true,
	"on":  true,
	"yes": true,
	"y":   true,
}

const wordAlt = `off|no|n|on|yes|y`

// Policy holds the disambiguation rules for one parse. It is immutable
// after construction and safe for concurrent use, so independent
// documents can share one value without coordination.
type Policy struct {
	rules []rewriteRule
	time  *regexp.Regexp
}

type rewriteRule struct {
	re *regexp.Regexp
	// replacement quotes the value group, preserving indentation and
	// any trailing inline comment byte-for-byte.
	repl string
}

// NewPolicy returns the default disambiguation policy.
func NewPolicy() *Policy {
	const (
		seqPrefix = `^(\s*-\s+)`
		mapPrefix = `^(\s*(?:-\s+)?[^#\s][^:#]*?:\s+)`
		trailer   = `(\s*(?:#.*)?)$`
		quoted    = `${1}'${2}'${3}`
	)
	mk := func(prefix, value string) rewriteRule {
		return rewriteRule{
			re:   regexp.MustCompile(prefix + `(` + value + `)` + trailer),
			repl: quoted,
		}
	}
	return &Policy{
		rules: []rewriteRule{
			// digits:digits looks like a sexagesimal or time value
			mk(seqPrefix, `\d{1,5}:\d{1,5}`),
			mk(mapPrefix, `\d{1,5}:\d{1,5}`),
			// a leading ! in a sequence item is most likely an
			// exclusion glob, not a tag directive
			mk(seqPrefix, `!\S+`),
			// the Norway problem set
			mk(seqPrefix, `(?:`+wordAlt+`)`),
			mk(mapPrefix, `(?:`+wordAlt+`)`),
		},
		time: regexp.MustCompile(`^\d{1,5}:\d{1,5}$`),
	}
}

// Rewrite quotes ambiguous bare tokens in permissive-format source text
// so the parser is forced to treat them as strings. Already-quoted
// values are left alone; indentation and inline comments are preserved
// byte-for-byte. Rewrite never fails: if the result is still
// unparseable the error surfaces from the parser.
func (p *Policy) Rewrite(src []byte) []byte {
	lines := strings.Split(string(src), "\n")
	for i, line := range lines {
		for _, rule := range p.rules {
			if rule.re.MatchString(line) {
				line = rule.re.ReplaceAllString(line, rule.repl)
				break
			}
		}
		lines[i] = line
	}
	return []byte(strings.Join(lines, "\n"))
}

// IsAmbiguousWord reports whether s is in the closed boolean-like word
// set. Used both as a parser-level override (a bool the parser resolved
// from such a word stays a string) and by the YAML encoder, which
// re-quotes strings equal to these words for round-trip safety.
func (p *Policy) IsAmbiguousWord(s string) bool {
	return ambiguousWords[s]
}

// IsTimeLike reports whether s has the digits:digits shape that naive
// parsers resolve to a time-like or base-60 value.
func (p *Policy) IsTimeLike(s string) bool {
	return p.time.MatchString(s)
}

// BoolFromLiteral recognizes only the literal tokens true/false as
// booleans. Any other literal the parser resolved to a boolean is
// reported as not-a-bool and should be kept as its literal text.
func (p *Policy) BoolFromLiteral(lit string) (value, ok bool) {
	switch lit {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
