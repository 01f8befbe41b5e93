package encode

import (
	"github.com/kvendingoldo/ordnung/disambig"
	"github.com/kvendingoldo/ordnung/format"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeJSON() EncodeOption {
	return EncodeFormat(format.JSONFormat)
}

func EncodeYAML() EncodeOption {
	return EncodeFormat(format.YAMLFormat)
}

// Indent sets the indentation width. The default is 2.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodePolicy makes YAML output re-quote any string scalar whose text
// matches the policy's ambiguous-word set, so the rendered text parses
// back to the same string.
func EncodePolicy(p *disambig.Policy) EncodeOption {
	return func(es *EncState) { es.quoteWord = p.IsAmbiguousWord }
}
