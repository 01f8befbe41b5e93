package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/kvendingoldo/ordnung/ir"
)

func encodeJSON(sb *strings.Builder, n *ir.Node, es *EncState, depth int) {
	switch n.Type {
	case ir.NullType:
		sb.WriteString("null")
	case ir.BoolType:
		sb.WriteString(strconv.FormatBool(n.Bool))
	case ir.NumberType:
		sb.WriteString(jsonNumber(n))
	case ir.StringType:
		jsonQuote(sb, n.String)
	case ir.ArrayType:
		if len(n.Values) == 0 {
			sb.WriteString("[]")
			return
		}
		inner := strings.Repeat(" ", es.indent*(depth+1))
		sb.WriteString("[\n")
		for i, v := range n.Values {
			if i > 0 {
				sb.WriteString(",\n")
			}
			sb.WriteString(inner)
			encodeJSON(sb, v, es, depth+1)
		}
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", es.indent*depth))
		sb.WriteByte(']')
	case ir.ObjectType:
		if len(n.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		inner := strings.Repeat(" ", es.indent*(depth+1))
		sb.WriteString("{\n")
		for i := range n.Fields {
			if i > 0 {
				sb.WriteString(",\n")
			}
			sb.WriteString(inner)
			jsonQuote(sb, n.Fields[i].String)
			sb.WriteString(": ")
			encodeJSON(sb, n.Values[i], es, depth+1)
		}
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", es.indent*depth))
		sb.WriteByte('}')
	}
}

func jsonNumber(n *ir.Node) string {
	if n.Int64 != nil {
		return strconv.FormatInt(*n.Int64, 10)
	}
	if n.Float64 != nil {
		f := *n.Float64
		switch {
		case math.IsNaN(f):
			return "NaN"
		case math.IsInf(f, 1):
			return "Infinity"
		case math.IsInf(f, -1):
			return "-Infinity"
		}
		return floatString(f)
	}
	return n.Number
}

// floatString keeps a decimal point on integral floats so a float
// stays a float across a re-parse.
func floatString(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// jsonQuote writes s as a JSON string, escaping only what JSON
// requires; non-ASCII text passes through unescaped.
func jsonQuote(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if r < 0x20 {
				sb.WriteString(`\u`)
				const hex = "0123456789abcdef"
				sb.WriteByte('0')
				sb.WriteByte('0')
				sb.WriteByte(hex[r>>4])
				sb.WriteByte(hex[r&0xf])
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}
