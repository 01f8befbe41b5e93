package textdiff

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestUnifiedEqual(t *testing.T) {
	if d := Unified("a\nb\n", "a\nb\n", Options{}); d != "" {
		t.Errorf("equal texts produced a diff:\n%s", d)
	}
}

func TestUnifiedLabels(t *testing.T) {
	d := Unified("a\n", "b\n", Options{FromLabel: "x.yaml", ToLabel: "x.yaml (sorted)"})
	if !strings.HasPrefix(d, "--- x.yaml\n+++ x.yaml (sorted)\n") {
		t.Errorf("missing labels:\n%s", d)
	}
	d = Unified("a\n", "b\n", Options{})
	if !strings.HasPrefix(d, "--- original\n+++ sorted\n") {
		t.Errorf("missing default labels:\n%s", d)
	}
}

func TestUnifiedSingleChange(t *testing.T) {
	from := "one\ntwo\nthree\n"
	to := "one\n2\nthree\n"
	d := Unified(from, to, Options{})
	for _, want := range []string{"-two\n", "+2\n", " one\n", " three\n", "@@ -1,3 +1,3 @@\n"} {
		if !strings.Contains(d, want) {
			t.Errorf("diff missing %q:\n%s", want, d)
		}
	}
}

func TestUnifiedHunkRanges(t *testing.T) {
	var from, to strings.Builder
	for i := 0; i < 20; i++ {
		line := lineName(i)
		from.WriteString(line + "\n")
		if i == 10 {
			to.WriteString("changed\n")
		} else {
			to.WriteString(line + "\n")
		}
	}
	d := Unified(from.String(), to.String(), Options{})
	if !strings.Contains(d, "@@ -8,7 +8,7 @@\n") {
		t.Errorf("hunk header wrong:\n%s", d)
	}
	// unchanged lines far from the change stay out of the hunk
	if strings.Contains(d, " "+lineName(0)+"\n") {
		t.Errorf("distant context included:\n%s", d)
	}
}

func TestUnifiedMergesNearbyChanges(t *testing.T) {
	from := "a\nb\nc\nd\ne\nf\ng\n"
	to := "a\nB\nc\nd\ne\nF\ng\n"
	d := Unified(from, to, Options{})
	if n := strings.Count(d, "@@"); n != 2 { // one @@ pair per hunk
		t.Errorf("got %d @@ markers, want one merged hunk:\n%s", n, d)
	}
}

func TestUnifiedNoColorByDefault(t *testing.T) {
	d := Unified("a\n", "b\n", Options{})
	if strings.Contains(d, "\x1b[") {
		t.Errorf("uncolored diff contains escape codes: %q", d)
	}
}

func TestUnifiedColor(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	d := Unified("a\n", "b\n", Options{Color: true})
	if !strings.Contains(d, "\x1b[31m") {
		t.Errorf("removal not colored red: %q", d)
	}
	if !strings.Contains(d, "\x1b[32m") {
		t.Errorf("addition not colored green: %q", d)
	}
}

func lineName(i int) string {
	return "line" + string(rune('a'+i))
}
