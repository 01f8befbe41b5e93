// Package ordnung canonicalizes YAML and JSON documents into a
// deterministic, sorted, round-trippable form: object keys
// alphabetized, scalar arrays ordered with nulls last, ambiguous YAML
// tokens pinned to strings, and (optionally) the result proven to be a
// lossless rearrangement of the input.
//
// The package composes format detection, the disambiguating codec, the
// canonical sorter and the structural validator per document. Each
// document's processing is independent and synchronous; callers may
// parallelize across documents freely.
package ordnung

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kvendingoldo/ordnung/canon"
	"github.com/kvendingoldo/ordnung/disambig"
	"github.com/kvendingoldo/ordnung/encode"
	"github.com/kvendingoldo/ordnung/format"
	"github.com/kvendingoldo/ordnung/parse"
	"github.com/kvendingoldo/ordnung/textdiff"
	"github.com/kvendingoldo/ordnung/validate"
)

// Request configures one document's canonicalization. It is immutable
// for the duration of processing.
type Request struct {
	// JSONIndent and YAMLIndent are the indentation widths for the
	// respective formats; both must be positive.
	JSONIndent int
	YAMLIndent int
	// SortArraysByFirstKey orders object arrays by their shared first
	// key's value.
	SortArraysByFirstKey bool
	// SortDocsByFirstKey orders multi-document collections by each
	// document's first-key value.
	SortDocsByFirstKey bool
	// Validate proves losslessness before any output is produced.
	Validate bool
}

func DefaultRequest() Request {
	return Request{JSONIndent: 2, YAMLIndent: 2}
}

func (r Request) indent(f format.Format) int {
	if f.IsJSON() {
		return r.JSONIndent
	}
	return r.YAMLIndent
}

// SortBytes canonicalizes a single source. name appears in errors
// only. The rendered canonical text is returned; nothing is written.
func SortBytes(name string, data []byte, f format.Format, req Request) ([]byte, error) {
	policy := disambig.NewPolicy()
	docs, err := parse.Parse(data,
		parse.ParseFormat(f),
		parse.ParsePolicy(policy),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, name, err)
	}
	sorted := canon.SortDocs(docs, canon.Options{
		SortArraysByFirstKey: req.SortArraysByFirstKey,
		SortDocsByFirstKey:   req.SortDocsByFirstKey,
	})
	if req.Validate {
		if report := validate.Docs(docs, sorted); len(report) > 0 {
			return nil, &ValidationError{Path: name, Report: report}
		}
	}
	text, err := encode.String(sorted,
		encode.EncodeFormat(f),
		encode.Indent(req.indent(f)),
		encode.EncodePolicy(policy),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSave, name, err)
	}
	return []byte(text), nil
}

// SortFile canonicalizes path and writes the result to outPath, or
// back to path when outPath is empty. The target is replaced
// atomically and only after parse, sort and (if requested) validation
// all succeed.
func SortFile(path, outPath string, req Request) error {
	data, f, err := loadFile(path)
	if err != nil {
		return err
	}
	out, err := SortBytes(path, data, f, req)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = path
	}
	if err := writeFileAtomic(outPath, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, outPath, err)
	}
	return nil
}

// CheckFile reports whether path is already canonical. On mismatch it
// also returns a unified diff of current vs canonical text. The file
// is never modified.
func CheckFile(path string, req Request, colorDiff bool) (bool, string, error) {
	data, f, err := loadFile(path)
	if err != nil {
		return false, "", err
	}
	out, err := SortBytes(path, data, f, req)
	if err != nil {
		return false, "", err
	}
	current := strings.TrimSpace(string(data))
	canonical := strings.TrimSpace(string(out))
	if current == canonical {
		return true, "", nil
	}
	diff := textdiff.Unified(current, canonical, textdiff.Options{
		FromLabel: path,
		ToLabel:   path + " (sorted)",
		Color:     colorDiff,
	})
	return false, diff, nil
}

func loadFile(path string) ([]byte, format.Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	f, err := format.Detect(path, data)
	if err != nil {
		return nil, 0, err
	}
	return data, f, nil
}

// writeFileAtomic writes via a temp file in the target directory and
// renames it into place, preserving an existing file's mode.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ordnung-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
