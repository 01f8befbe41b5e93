package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/kvendingoldo/ordnung/ir"
)

func encodeYAMLDoc(sb *strings.Builder, n *ir.Node, es *EncState) {
	switch n.Type {
	case ir.ObjectType:
		if len(n.Fields) == 0 {
			sb.WriteString("{}\n")
			return
		}
		yamlMapping(sb, n, "", es)
	case ir.ArrayType:
		if len(n.Values) == 0 {
			sb.WriteString("[]\n")
			return
		}
		yamlSequence(sb, n, "", es)
	case ir.NullType:
		// an empty rendering would be rejected as empty source on
		// re-load, so a null root stays explicit
		sb.WriteString("null\n")
	default:
		sb.WriteString(yamlScalar(n, es))
		sb.WriteByte('\n')
	}
}

func yamlMapping(sb *strings.Builder, n *ir.Node, pad string, es *EncState) {
	for i := range n.Fields {
		v := n.Values[i]
		sb.WriteString(pad)
		sb.WriteString(yamlString(n.Fields[i].String, es))
		switch {
		case v.Type == ir.NullType:
			// null renders as an explicit empty value
			sb.WriteString(":\n")
		case v.Type.IsScalar():
			sb.WriteString(": ")
			sb.WriteString(yamlScalar(v, es))
			sb.WriteByte('\n')
		case len(v.Values) == 0:
			if v.Type == ir.ObjectType {
				sb.WriteString(": {}\n")
			} else {
				sb.WriteString(": []\n")
			}
		case v.Type == ir.ObjectType:
			sb.WriteString(":\n")
			yamlMapping(sb, v, pad+indentPad(es), es)
		default:
			sb.WriteString(":\n")
			yamlSequence(sb, v, pad+indentPad(es), es)
		}
	}
}

func yamlSequence(sb *strings.Builder, n *ir.Node, pad string, es *EncState) {
	dash := dashPad(es)
	contPad := pad + strings.Repeat(" ", len(dash))
	for _, v := range n.Values {
		switch {
		case v.Type == ir.NullType:
			sb.WriteString(pad)
			sb.WriteString("-\n")
		case v.Type.IsScalar():
			sb.WriteString(pad)
			sb.WriteString(dash)
			sb.WriteString(yamlScalar(v, es))
			sb.WriteByte('\n')
		case len(v.Values) == 0:
			sb.WriteString(pad)
			sb.WriteString(dash)
			if v.Type == ir.ObjectType {
				sb.WriteString("{}\n")
			} else {
				sb.WriteString("[]\n")
			}
		default:
			// render the compound at the continuation indent, then
			// fold its first line onto the dash line
			var tmp strings.Builder
			if v.Type == ir.ObjectType {
				yamlMapping(&tmp, v, contPad, es)
			} else {
				yamlSequence(&tmp, v, contPad, es)
			}
			body := tmp.String()
			sb.WriteString(pad)
			sb.WriteString(dash)
			sb.WriteString(body[len(contPad):])
		}
	}
}

func indentPad(es *EncState) string {
	return strings.Repeat(" ", es.indent)
}

// dashPad is "-" padded to the indent width, two columns minimum.
func dashPad(es *EncState) string {
	return "-" + strings.Repeat(" ", max(es.indent, 2)-1)
}

func yamlScalar(n *ir.Node, es *EncState) string {
	switch n.Type {
	case ir.BoolType:
		return strconv.FormatBool(n.Bool)
	case ir.NumberType:
		return yamlNumber(n)
	case ir.StringType:
		return yamlString(n.String, es)
	}
	return ""
}

func yamlNumber(n *ir.Node) string {
	if n.Float64 != nil {
		f := *n.Float64
		switch {
		case math.IsNaN(f):
			return ".nan"
		case math.IsInf(f, 1):
			return ".inf"
		case math.IsInf(f, -1):
			return "-.inf"
		}
	}
	return jsonNumber(n)
}

func yamlString(s string, es *EncState) string {
	if !needsQuote(s, es) {
		return s
	}
	if strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 }) {
		return strconv.Quote(s)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// needsQuote reports whether a bare rendering of s would parse back as
// something other than the string s.
func needsQuote(s string, es *EncState) bool {
	if s == "" {
		return true
	}
	// round-trip safety: a string equal to an ambiguous boolean-like
	// word must re-parse as that same string
	if es.quoteWord != nil && es.quoteWord(s) {
		return true
	}
	switch strings.ToLower(s) {
	case "y", "n", "yes", "no", "on", "off", "true", "false", "null", "~":
		return true
	}
	if looksNumeric(s) || looksTimeLike(s) {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	switch s[0] {
	case '!', '&', '*', '?', '|', '>', '%', '@', '`', '"', '\'', '#',
		'[', ']', '{', '}', ',':
		return true
	case '-':
		if len(s) == 1 || s[1] == ' ' {
			return true
		}
	}
	if strings.Contains(s, ": ") || strings.HasSuffix(s, ":") {
		return true
	}
	if strings.Contains(s, " #") || strings.ContainsAny(s, "\n\t") {
		return true
	}
	return false
}

func looksNumeric(s string) bool {
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseInt(s, 0, 64); err == nil {
		return true
	}
	return false
}

func looksTimeLike(s string) bool {
	before, after, found := strings.Cut(s, ":")
	return found && allDigits(before) && allDigits(after)
}

func allDigits(s string) bool {
	if s == "" || len(s) > 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
