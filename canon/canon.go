package canon

import (
	"slices"
	"strings"

	"github.com/kvendingoldo/ordnung/ir"
)

// Options configures canonicalization for one document's processing.
type Options struct {
	// SortArraysByFirstKey orders an array of objects by each
	// element's value at their shared first key.
	SortArraysByFirstKey bool
	// SortDocsByFirstKey orders a multi-document collection by each
	// document's value at its first key.
	SortDocsByFirstKey bool
}

// Sort returns the canonical form of a tree. The input is never
// mutated; every level of the result is a new value.
func Sort(n *ir.Node, opts Options) *ir.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.ObjectType:
		return sortObject(n, opts)
	case ir.ArrayType:
		return sortArray(n, opts)
	default:
		return n.Clone()
	}
}

// SortDocs canonicalizes every document of a collection independently
// and, when enabled, reorders the collection itself by (type name,
// string rendering) of each document's first-key value. Documents that
// are not objects, or are empty objects, sort to the end.
func SortDocs(docs []*ir.Node, opts Options) []*ir.Node {
	res := make([]*ir.Node, len(docs))
	for i, doc := range docs {
		res[i] = Sort(doc, opts)
	}
	if !opts.SortDocsByFirstKey || len(res) < 2 {
		return res
	}
	slices.SortStableFunc(res, func(a, b *ir.Node) int {
		keyedA, typeA, valA := docSortKey(a)
		keyedB, typeB, valB := docSortKey(b)
		if keyedA != keyedB {
			if keyedA {
				return -1
			}
			return 1
		}
		if c := strings.Compare(typeA, typeB); c != 0 {
			return c
		}
		return strings.Compare(valA, valB)
	})
	return res
}

func docSortKey(doc *ir.Node) (keyed bool, typeName, value string) {
	if _, ok := doc.FirstField(); !ok {
		return false, "", ""
	}
	v := doc.Values[0]
	return true, v.Type.String(), sortKeyString(v)
}

// sortObject reorders entries by ascending key and canonicalizes each
// value. Keys are unique, so the order is total without a tie-break.
func sortObject(n *ir.Node, opts Options) *ir.Node {
	kvs := make([]ir.KeyVal, len(n.Fields))
	for i := range n.Fields {
		kvs[i] = ir.KeyVal{Key: n.Fields[i].String, Val: Sort(n.Values[i], opts)}
	}
	slices.SortStableFunc(kvs, func(a, b ir.KeyVal) int {
		return strings.Compare(a.Key, b.Key)
	})
	return ir.FromKeyVals(kvs)
}

func sortArray(n *ir.Node, opts Options) *ir.Node {
	if allScalars(n.Values) {
		vals := make([]*ir.Node, len(n.Values))
		for i, v := range n.Values {
			vals[i] = v.Clone()
		}
		slices.SortStableFunc(vals, compareScalars)
		return ir.FromSlice(vals)
	}
	if opts.SortArraysByFirstKey {
		if key, ok := sharedFirstKey(n.Values); ok {
			return sortArrayByKey(n, key, opts)
		}
	}
	// mixed or compound elements: order preserved, elements
	// individually canonicalized
	vals := make([]*ir.Node, len(n.Values))
	for i, v := range n.Values {
		vals[i] = Sort(v, opts)
	}
	return ir.FromSlice(vals)
}

// sortArrayByKey decides array order from each element's
// pre-canonicalization value at the shared first key, then
// canonicalizes each element independently.
func sortArrayByKey(n *ir.Node, key string, opts Options) *ir.Node {
	vals := make([]*ir.Node, len(n.Values))
	copy(vals, n.Values)
	slices.SortStableFunc(vals, func(a, b *ir.Node) int {
		return compareSortValues(ir.Get(a, key), ir.Get(b, key))
	})
	for i, v := range vals {
		vals[i] = Sort(v, opts)
	}
	return ir.FromSlice(vals)
}

// sharedFirstKey reports the first (insertion-order) key shared by
// every element. It fails if any element is not an object, is an empty
// object, or disagrees on its first key.
func sharedFirstKey(vals []*ir.Node) (string, bool) {
	if len(vals) == 0 {
		return "", false
	}
	key, ok := vals[0].FirstField()
	if !ok {
		return "", false
	}
	for _, v := range vals[1:] {
		k, ok := v.FirstField()
		if !ok || k != key {
			return "", false
		}
	}
	return key, true
}

func allScalars(vals []*ir.Node) bool {
	for _, v := range vals {
		if !v.Type.IsScalar() {
			return false
		}
	}
	return true
}

// compareScalars orders scalars by (null-last, string rendering), so
// numeric and string values interleave in one deterministic
// lexicographic order and nulls sort after everything.
func compareScalars(a, b *ir.Node) int {
	return compareSortValues(a, b)
}

func compareSortValues(a, b *ir.Node) int {
	nullA := a == nil || a.Type == ir.NullType
	nullB := b == nil || b.Type == ir.NullType
	if nullA != nullB {
		if nullB {
			return -1
		}
		return 1
	}
	if nullA {
		return 0
	}
	return strings.Compare(sortKeyString(a), sortKeyString(b))
}

func sortKeyString(n *ir.Node) string {
	if n.Type.IsScalar() {
		return ir.ScalarString(n)
	}
	return n.Render()
}
