// Package textdiff renders a line-oriented unified diff between the
// current text of a file and its canonical rendering. It is a pure
// text utility at the tool boundary; nothing here understands document
// trees.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const contextLines = 3

type Options struct {
	FromLabel string
	ToLabel   string
	// Color wraps removals in red and additions in green.
	Color bool
}

type lineOp struct {
	op   diffpatch.Operation
	text string
}

// Unified returns a unified diff of from vs to, or the empty string if
// the texts are equal.
func Unified(from, to string, opts Options) string {
	if from == to {
		return ""
	}
	if opts.FromLabel == "" {
		opts.FromLabel = "original"
	}
	if opts.ToLabel == "" {
		opts.ToLabel = "sorted"
	}
	ops := lineOps(from, to)
	hunks := group(ops)
	if len(hunks) == 0 {
		return ""
	}

	red := func(s string) string { return s }
	green := red
	if opts.Color {
		red = func(s string) string { return color.New(color.FgRed).Sprint(s) }
		green = func(s string) string { return color.New(color.FgGreen).Sprint(s) }
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", opts.FromLabel, opts.ToLabel)
	for _, h := range hunks {
		fromStart, fromN, toStart, toN := h.ranges(ops)
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", fromStart, fromN, toStart, toN)
		for _, lo := range ops[h.lo:h.hi] {
			switch lo.op {
			case diffpatch.DiffDelete:
				sb.WriteString(red("-" + lo.text))
			case diffpatch.DiffInsert:
				sb.WriteString(green("+" + lo.text))
			default:
				sb.WriteString(" " + lo.text)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// lineOps runs the diff in line mode and flattens the result to one
// operation per line.
func lineOps(from, to string) []lineOp {
	dmp := diffpatch.New()
	c1, c2, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lines)
	var ops []lineOp
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			ops = append(ops, lineOp{op: d.Type, text: ln})
		}
	}
	return ops
}

type hunk struct{ lo, hi int }

// ranges computes the unified-diff line numbers of a hunk.
func (h hunk) ranges(ops []lineOp) (fromStart, fromN, toStart, toN int) {
	fromStart, toStart = 1, 1
	for _, lo := range ops[:h.lo] {
		switch lo.op {
		case diffpatch.DiffDelete:
			fromStart++
		case diffpatch.DiffInsert:
			toStart++
		default:
			fromStart++
			toStart++
		}
	}
	for _, lo := range ops[h.lo:h.hi] {
		switch lo.op {
		case diffpatch.DiffDelete:
			fromN++
		case diffpatch.DiffInsert:
			toN++
		default:
			fromN++
			toN++
		}
	}
	return fromStart, fromN, toStart, toN
}

// group clusters changed lines into hunks with surrounding context,
// merging hunks whose context would overlap.
func group(ops []lineOp) []hunk {
	var hunks []hunk
	for i, lo := range ops {
		if lo.op == diffpatch.DiffEqual {
			continue
		}
		lo0 := max(0, i-contextLines)
		hi0 := min(len(ops), i+contextLines+1)
		if n := len(hunks); n > 0 && lo0 <= hunks[n-1].hi {
			hunks[n-1].hi = hi0
			continue
		}
		hunks = append(hunks, hunk{lo: lo0, hi: hi0})
	}
	return hunks
}
