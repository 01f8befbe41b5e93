// Package finder resolves files, directories and glob patterns into
// the list of YAML/JSON files to process.
package finder

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type Options struct {
	// Recursive descends into subdirectories of directory inputs and
	// enables ** in patterns.
	Recursive bool
	// Pattern treats every input as a glob pattern.
	Pattern bool
	// Regex further filters matched paths.
	Regex string
}

var exts = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Find returns the matching YAML/JSON files for a mix of file,
// directory and glob-pattern inputs, deduplicated and sorted.
func Find(inputs []string, opts Options) ([]string, error) {
	var re *regexp.Regexp
	if opts.Regex != "" {
		var err error
		re, err = regexp.Compile(opts.Regex)
		if err != nil {
			return nil, err
		}
	}
	found := map[string]bool{}
	add := func(path string) {
		if !exts[strings.ToLower(filepath.Ext(path))] {
			return
		}
		if re != nil && !re.MatchString(path) {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		found[abs] = true
	}

	for _, in := range inputs {
		st, statErr := os.Stat(in)
		switch {
		case opts.Pattern || statErr != nil:
			matches, err := globMatches(in, opts.Recursive)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				if st, err := os.Stat(m); err == nil && st.Mode().IsRegular() {
					add(m)
				}
			}
		case st.IsDir():
			if err := findInDir(in, opts.Recursive, add); err != nil {
				return nil, err
			}
		default:
			add(in)
		}
	}

	res := make([]string, 0, len(found))
	for p := range found {
		res = append(res, p)
	}
	sort.Strings(res)
	return res, nil
}

// globMatches expands a pattern. ** spans directories only in
// recursive mode; otherwise each * matches within one path segment.
func globMatches(pattern string, recursive bool) ([]string, error) {
	if recursive {
		return doublestar.FilepathGlob(pattern)
	}
	return filepath.Glob(pattern)
}

func findInDir(dir string, recursive bool, add func(string)) error {
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.Type().IsRegular() {
				add(filepath.Join(dir, e.Name()))
			}
		}
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			add(path)
		}
		return nil
	})
}
