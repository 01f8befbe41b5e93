package finder

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func names(t *testing.T, paths []string) []string {
	t.Helper()
	res := make([]string, len(paths))
	for i, p := range paths {
		res[i] = filepath.Base(p)
	}
	return res
}

func eq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func testTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"))
	writeFile(t, filepath.Join(dir, "a.json"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, "sub", "c.yml"))
	writeFile(t, filepath.Join(dir, "sub", "deep", "d.yaml"))
	return dir
}

func TestFindDirectory(t *testing.T) {
	dir := testTree(t)

	got, err := Find([]string{dir}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.json", "b.yaml"}; !eq(names(t, got), want) {
		t.Errorf("non-recursive: got %v, want %v", names(t, got), want)
	}

	got, err = Find([]string{dir}, Options{Recursive: true})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.json", "b.yaml", "c.yml", "d.yaml"}; !eq(names(t, got), want) {
		t.Errorf("recursive: got %v, want %v", names(t, got), want)
	}
}

func TestFindSingleFile(t *testing.T) {
	dir := testTree(t)
	target := filepath.Join(dir, "b.yaml")
	got, err := Find([]string{target}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "b.yaml" {
		t.Errorf("got %v", got)
	}

	// a non-matching extension is skipped even when named directly
	got, err = Find([]string{filepath.Join(dir, "notes.txt")}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("txt file found: %v", got)
	}
}

func TestFindRegexFilter(t *testing.T) {
	dir := testTree(t)
	got, err := Find([]string{dir}, Options{Recursive: true, Regex: `\.ya?ml$`})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"b.yaml", "c.yml", "d.yaml"}; !eq(names(t, got), want) {
		t.Errorf("got %v, want %v", names(t, got), want)
	}

	if _, err := Find([]string{dir}, Options{Regex: "["}); err == nil {
		t.Error("bad regex accepted")
	}
}

func TestFindPattern(t *testing.T) {
	dir := testTree(t)

	t.Run("recursive doublestar", func(t *testing.T) {
		got, err := Find([]string{filepath.Join(dir, "**", "*.yaml")},
			Options{Pattern: true, Recursive: true})
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"b.yaml", "d.yaml"}; !eq(names(t, got), want) {
			t.Errorf("got %v, want %v", names(t, got), want)
		}
	})

	t.Run("non-recursive single segment", func(t *testing.T) {
		got, err := Find([]string{filepath.Join(dir, "*.yaml")}, Options{Pattern: true})
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"b.yaml"}; !eq(names(t, got), want) {
			t.Errorf("got %v, want %v", names(t, got), want)
		}

		// ** does not span directories without the recursive flag;
		// dir/**/*.yaml degenerates to dir/*/*.yaml, which nothing in
		// the tree matches
		got, err = Find([]string{filepath.Join(dir, "**", "*.yaml")}, Options{Pattern: true})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("got %v, want no matches", names(t, got))
		}
	})
}

func TestFindDeduplicates(t *testing.T) {
	dir := testTree(t)
	target := filepath.Join(dir, "a.json")
	got, err := Find([]string{target, target, dir}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.json", "b.yaml"}; !eq(names(t, got), want) {
		t.Errorf("got %v, want %v", names(t, got), want)
	}
}
