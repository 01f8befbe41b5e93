package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kvendingoldo/ordnung/ir"
)

// Kind classifies a discrepancy between an original tree and its
// canonicalized form.
type Kind int

const (
	TypeMismatch Kind = iota
	MissingKeys
	ExtraKeys
	LengthMismatch
	MissingElements
	ExtraElements
	UnmatchedElement
	ValueMismatch
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		TypeMismatch:     "TypeMismatch",
		MissingKeys:      "MissingKeys",
		ExtraKeys:        "ExtraKeys",
		LengthMismatch:   "LengthMismatch",
		MissingElements:  "MissingElements",
		ExtraElements:    "ExtraElements",
		UnmatchedElement: "UnmatchedElement",
		ValueMismatch:    "ValueMismatch",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Discrepancy is one human-readable difference at a path within the
// document.
type Discrepancy struct {
	Kind   Kind
	Path   string
	Detail string
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Path, d.Kind, d.Detail)
}

// Validate certifies that sorted is a content-preserving rearrangement
// of orig: no keys added or removed, no values altered, no elements
// lost. Ordering differences are expected and never reported. The
// returned list is empty exactly when validation passes; Validate
// itself never fails.
func Validate(orig, sorted *ir.Node) []Discrepancy {
	return nodes(orig, sorted, "$", nil)
}

// Docs validates a document collection pairwise. The collection may
// have been reordered, so elements are matched the way compound array
// elements are.
func Docs(orig, sorted []*ir.Node) []Discrepancy {
	return nodes(ir.FromSlice(orig), ir.FromSlice(sorted), "$", nil)
}

func nodes(a, b *ir.Node, path string, ds []Discrepancy) []Discrepancy {
	if a.Type != b.Type {
		return append(ds, Discrepancy{
			Kind:   TypeMismatch,
			Path:   path,
			Detail: fmt.Sprintf("%s became %s", a.Type, b.Type),
		})
	}
	switch a.Type {
	case ir.ObjectType:
		return objects(a, b, path, ds)
	case ir.ArrayType:
		return arrays(a, b, path, ds)
	default:
		if ir.Compare(a, b) != 0 {
			return append(ds, Discrepancy{
				Kind:   ValueMismatch,
				Path:   path,
				Detail: fmt.Sprintf("%s became %s", a.Render(), b.Render()),
			})
		}
		return ds
	}
}

func objects(a, b *ir.Node, path string, ds []Discrepancy) []Discrepancy {
	aVals := objectMap(a)
	bVals := objectMap(b)
	var missing, extra []string
	for k := range aVals {
		if _, ok := bVals[k]; !ok {
			missing = append(missing, k)
		}
	}
	for k := range bVals {
		if _, ok := aVals[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	if len(missing) > 0 {
		ds = append(ds, Discrepancy{
			Kind:   MissingKeys,
			Path:   path,
			Detail: strings.Join(missing, ", "),
		})
	}
	if len(extra) > 0 {
		ds = append(ds, Discrepancy{
			Kind:   ExtraKeys,
			Path:   path,
			Detail: strings.Join(extra, ", "),
		})
	}
	// deterministic recursion order over the shared keys
	for i := range a.Fields {
		k := a.Fields[i].String
		bv, ok := bVals[k]
		if !ok {
			continue
		}
		ds = nodes(a.Values[i], bv, path+"."+k, ds)
	}
	return ds
}

func objectMap(n *ir.Node) map[string]*ir.Node {
	m := make(map[string]*ir.Node, len(n.Fields))
	for i := range n.Fields {
		m[n.Fields[i].String] = n.Values[i]
	}
	return m
}

func arrays(a, b *ir.Node, path string, ds []Discrepancy) []Discrepancy {
	if len(a.Values) != len(b.Values) {
		return append(ds, Discrepancy{
			Kind:   LengthMismatch,
			Path:   path,
			Detail: fmt.Sprintf("%d elements became %d", len(a.Values), len(b.Values)),
		})
	}
	if allScalars(a.Values) && allScalars(b.Values) {
		return scalarMultiset(a, b, path, ds)
	}
	return matchElements(a, b, path, ds)
}

func allScalars(vals []*ir.Node) bool {
	for _, v := range vals {
		if !v.Type.IsScalar() {
			return false
		}
	}
	return true
}

// scalarMultiset compares two scalar sequences as multisets of
// rendered values.
func scalarMultiset(a, b *ir.Node, path string, ds []Discrepancy) []Discrepancy {
	counts := map[string]int{}
	for _, v := range a.Values {
		counts[v.Render()]++
	}
	for _, v := range b.Values {
		counts[v.Render()]--
	}
	var missing, extra []string
	for r, c := range counts {
		for ; c > 0; c-- {
			missing = append(missing, r)
		}
		for ; c < 0; c++ {
			extra = append(extra, r)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	if len(missing) > 0 {
		ds = append(ds, Discrepancy{
			Kind:   MissingElements,
			Path:   path,
			Detail: strings.Join(missing, ", "),
		})
	}
	if len(extra) > 0 {
		ds = append(ds, Discrepancy{
			Kind:   ExtraElements,
			Path:   path,
			Detail: strings.Join(extra, ", "),
		})
	}
	return ds
}

// matchElements is the positional best-effort fallback for sequences
// with compound elements: each original element consumes the first
// remaining candidate it validates cleanly against. Quadratic in
// element count, exercised only for compound-element sequences.
func matchElements(a, b *ir.Node, path string, ds []Discrepancy) []Discrepancy {
	pool := make([]*ir.Node, len(b.Values))
	copy(pool, b.Values)
	for _, av := range a.Values {
		matched := -1
		for i, cand := range pool {
			if cand == nil {
				continue
			}
			if len(nodes(av, cand, path, nil)) == 0 {
				matched = i
				break
			}
		}
		if matched < 0 {
			ds = append(ds, Discrepancy{
				Kind:   UnmatchedElement,
				Path:   path,
				Detail: av.Render(),
			})
			continue
		}
		pool[matched] = nil
	}
	return ds
}
