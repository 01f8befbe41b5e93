package ir

import (
	"strconv"
	"strings"
)

// ScalarString returns the textual rendering of a scalar node, used as
// a sort key so numeric and string scalars interleave in one
// deterministic lexicographic order. Null renders as the empty string;
// callers order nulls separately.
func ScalarString(y *Node) string {
	if y == nil {
		return ""
	}
	switch y.Type {
	case NullType:
		return ""
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		return NumberString(y)
	case StringType:
		return y.String
	}
	return ""
}

// NumberString renders a number node's canonical text.
func NumberString(y *Node) string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	default:
		return y.Number
	}
}

// Render returns a compact one-line rendering of any node, for
// diagnostics. It is not a codec output format.
func (y *Node) Render() string {
	var sb strings.Builder
	renderTo(&sb, y)
	return sb.String()
}

func renderTo(sb *strings.Builder, y *Node) {
	if y == nil {
		sb.WriteString("null")
		return
	}
	switch y.Type {
	case NullType:
		sb.WriteString("null")
	case BoolType:
		sb.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		sb.WriteString(NumberString(y))
	case StringType:
		sb.WriteString(strconv.Quote(y.String))
	case ArrayType:
		sb.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			renderTo(sb, v)
		}
		sb.WriteByte(']')
	case ObjectType:
		sb.WriteByte('{')
		for i := range y.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(y.Fields[i].String))
			sb.WriteString(": ")
			renderTo(sb, y.Values[i])
		}
		sb.WriteByte('}')
	}
}
