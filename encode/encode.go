package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kvendingoldo/ordnung/format"
	"github.com/kvendingoldo/ordnung/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format
	indent int

	quoteWord func(string) bool
}

// Encode renders a document collection to w. Rendering never reorders
// anything: field and element order is taken from the trees as given.
//
// JSON renders exactly one document. YAML renders a single document
// plainly; a collection of length > 1, or of length 1 whose sole
// element is a sequence, is rendered with an explicit --- delimiter
// before each document.
func Encode(docs []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 1 {
		return fmt.Errorf("%w: indent %d is not positive", ErrEncoding, es.indent)
	}
	if len(docs) == 0 {
		return fmt.Errorf("%w: no documents", ErrEncoding)
	}
	var sb strings.Builder
	switch es.format {
	case format.JSONFormat:
		if len(docs) != 1 {
			return fmt.Errorf("%w: json output requires exactly 1 document, got %d",
				ErrEncoding, len(docs))
		}
		encodeJSON(&sb, docs[0], es, 0)
		sb.WriteByte('\n')
	case format.YAMLFormat:
		multi := len(docs) > 1 || (len(docs) == 1 && docs[0].Type == ir.ArrayType)
		for _, doc := range docs {
			if multi {
				sb.WriteString("---\n")
			}
			encodeYAMLDoc(&sb, doc, es)
		}
	default:
		return fmt.Errorf("%w: unknown format %d", ErrEncoding, es.format)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders a collection and returns it as text.
func String(docs []*ir.Node, opts ...EncodeOption) (string, error) {
	var sb strings.Builder
	if err := Encode(docs, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}
