package parse

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/kvendingoldo/ordnung/disambig"
	"github.com/kvendingoldo/ordnung/ir"
)

var (
	ErrParse = errors.New("parse error")

	// ErrEmptySource is returned for empty or whitespace-only input,
	// for both formats.
	ErrEmptySource = errors.New("source is empty")
)

// Parse converts source text into a document collection. JSON input
// yields exactly one document. YAML input may yield several (multi-
// document source); a single resulting document is a length-1
// collection, never wrapped in an extra sequence layer.
func Parse(src []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	if strings.TrimSpace(string(src)) == "" {
		return nil, ErrEmptySource
	}
	if pOpts.format.IsYAML() && pOpts.policy != nil {
		src = pOpts.policy.Rewrite(src)
	}
	// duplicates are legal in permissive input; converter.mapping
	// resolves them with last-value-wins
	file, err := parser.ParseBytes(src, 0, parser.AllowDuplicateMapKey())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(file.Docs) == 0 {
		return nil, ErrEmptySource
	}
	if pOpts.format.IsJSON() && len(file.Docs) > 1 {
		return nil, fmt.Errorf("%w: %s input contains %d documents, want 1",
			ErrParse, pOpts.format, len(file.Docs))
	}
	cv := &converter{
		policy:  pOpts.policy,
		anchors: map[string]*ir.Node{},
	}
	docs := make([]*ir.Node, 0, len(file.Docs))
	for _, doc := range file.Docs {
		if doc.Body == nil {
			docs = append(docs, ir.Null())
			continue
		}
		node, err := cv.node(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		docs = append(docs, node)
	}
	return docs, nil
}

type converter struct {
	policy  *disambig.Policy
	anchors map[string]*ir.Node
}

func (c *converter) node(n ast.Node) (*ir.Node, error) {
	switch n := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return c.boolNode(n), nil
	case *ast.IntegerNode:
		return c.intNode(n), nil
	case *ast.FloatNode:
		return ir.FromFloat(n.Value), nil
	case *ast.InfinityNode:
		return ir.FromFloat(n.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.StringNode:
		return ir.FromString(n.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(n.Value.Value), nil
	case *ast.SequenceNode:
		return c.sequence(n)
	case *ast.MappingNode:
		return c.mapping(n.Values)
	case *ast.MappingValueNode:
		return c.mapping([]*ast.MappingValueNode{n})
	case *ast.AnchorNode:
		return c.anchor(n)
	case *ast.AliasNode:
		return c.alias(n)
	case *ast.TagNode:
		return c.tag(n)
	default:
		return nil, fmt.Errorf("unsupported node %T at %s", n, n.GetToken().Position)
	}
}

// boolNode applies the parser-level boolean override: only the literal
// tokens true/false construct booleans, the ambiguous word set stays
// string, and anything else keeps the parser's reading.
func (c *converter) boolNode(n *ast.BoolNode) *ir.Node {
	if c.policy == nil {
		return ir.FromBool(n.Value)
	}
	lit := n.GetToken().Value
	if v, ok := c.policy.BoolFromLiteral(lit); ok {
		return ir.FromBool(v)
	}
	if c.policy.IsAmbiguousWord(lit) {
		return ir.FromString(lit)
	}
	return ir.FromBool(n.Value)
}

// intNode suppresses time-like construction: a digits:digits literal
// the parser resolved as a base-60 integer stays a string.
func (c *converter) intNode(n *ast.IntegerNode) *ir.Node {
	lit := n.GetToken().Value
	if c.policy != nil && c.policy.IsTimeLike(lit) {
		return ir.FromString(lit)
	}
	switch v := n.Value.(type) {
	case int64:
		return ir.FromInt(v)
	case uint64:
		if v <= math.MaxInt64 {
			return ir.FromInt(int64(v))
		}
		return &ir.Node{Type: ir.NumberType, Number: lit}
	case int:
		return ir.FromInt(int64(v))
	default:
		return &ir.Node{Type: ir.NumberType, Number: lit}
	}
}

func (c *converter) sequence(n *ast.SequenceNode) (*ir.Node, error) {
	vals := make([]*ir.Node, 0, len(n.Values))
	for _, v := range n.Values {
		if v == nil {
			vals = append(vals, ir.Null())
			continue
		}
		node, err := c.node(v)
		if err != nil {
			return nil, err
		}
		vals = append(vals, node)
	}
	return ir.FromSlice(vals), nil
}

func (c *converter) mapping(kvs []*ast.MappingValueNode) (*ir.Node, error) {
	var (
		pairs  []ir.KeyVal
		merged []ir.KeyVal
		index  = map[string]int{}
	)
	explicit := map[string]bool{}
	for _, kv := range kvs {
		if _, isMerge := kv.Key.(*ast.MergeKeyNode); isMerge {
			continue
		}
		explicit[keyText(kv.Key)] = true
	}
	for _, kv := range kvs {
		if _, isMerge := kv.Key.(*ast.MergeKeyNode); isMerge {
			m, err := c.mergeSources(kv.Value)
			if err != nil {
				return nil, err
			}
			merged = append(merged, m...)
			continue
		}
		key := keyText(kv.Key)
		var val *ir.Node
		if kv.Value == nil {
			val = ir.Null()
		} else {
			var err error
			val, err = c.node(kv.Value)
			if err != nil {
				return nil, err
			}
		}
		if at, ok := index[key]; ok {
			// duplicate key: first position, last value
			pairs[at].Val = val
			continue
		}
		index[key] = len(pairs)
		pairs = append(pairs, ir.KeyVal{Key: key, Val: val})
	}
	if len(merged) == 0 {
		return ir.FromKeyVals(pairs), nil
	}
	// merged keys precede explicit pairs; explicit keys and earlier
	// merge sources take precedence
	res := make([]ir.KeyVal, 0, len(merged)+len(pairs))
	seen := map[string]bool{}
	for _, kv := range merged {
		if explicit[kv.Key] || seen[kv.Key] {
			continue
		}
		seen[kv.Key] = true
		res = append(res, kv)
	}
	res = append(res, pairs...)
	return ir.FromKeyVals(res), nil
}

// mergeSources flattens the value of a << merge key: either one
// mapping or a sequence of mappings.
func (c *converter) mergeSources(v ast.Node) ([]ir.KeyVal, error) {
	node, err := c.node(v)
	if err != nil {
		return nil, err
	}
	sources := []*ir.Node{node}
	if node.Type == ir.ArrayType {
		sources = node.Values
	}
	var res []ir.KeyVal
	for _, src := range sources {
		if src.Type != ir.ObjectType {
			return nil, fmt.Errorf("merge key value is %s, want Object", src.Type)
		}
		for i := range src.Fields {
			res = append(res, ir.KeyVal{Key: src.Fields[i].String, Val: src.Values[i]})
		}
	}
	return res, nil
}

func (c *converter) anchor(n *ast.AnchorNode) (*ir.Node, error) {
	node, err := c.node(n.Value)
	if err != nil {
		return nil, err
	}
	c.anchors[n.Name.GetToken().Value] = node
	return node, nil
}

func (c *converter) alias(n *ast.AliasNode) (*ir.Node, error) {
	name := n.Value.GetToken().Value
	node, ok := c.anchors[name]
	if !ok {
		return nil, fmt.Errorf("unknown anchor %q at %s", name, n.GetToken().Position)
	}
	return node.Clone(), nil
}

// tag resolves standard type tags; any unrecognized tag takes the
// token's literal text as a string rather than failing.
func (c *converter) tag(n *ast.TagNode) (*ir.Node, error) {
	switch n.Start.Value {
	case "!!str":
		return ir.FromString(literalText(n.Value)), nil
	case "!!null":
		return ir.Null(), nil
	case "!!bool", "!!int", "!!float", "!!seq", "!!map":
		return c.node(n.Value)
	default:
		return ir.FromString(literalText(n.Value)), nil
	}
}

func keyText(k ast.MapKeyNode) string {
	if s, ok := k.(*ast.StringNode); ok {
		return s.Value
	}
	return k.GetToken().Value
}

func literalText(n ast.Node) string {
	if s, ok := n.(*ast.StringNode); ok {
		return s.Value
	}
	return n.GetToken().Value
}
