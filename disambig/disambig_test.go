package disambig

import "testing"

func TestRewrite(t *testing.T) {
	p := NewPolicy()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"time mapping value", "time: 10:30", "time: '10:30'"},
		{"time short digits", "  start: 1:5", "  start: '1:5'"},
		{"time sequence item", "- 10:30", "- '10:30'"},
		{"time six digits untouched", "- 123456:12", "- 123456:12"},
		{"glob sequence item", "- !*.log", "- '!*.log'"},
		{"glob with path", "  - !build/**", "  - '!build/**'"},
		{"word off value", "mode: off", "mode: 'off'"},
		{"word yes item", "- yes", "- 'yes'"},
		{"word single letter", "opt: n", "opt: 'n'"},
		{"word in nested item", "- name: on", "- name: 'on'"},
		{"comment preserved", "- y  # keep me", "- 'y'  # keep me"},
		{"indent preserved", "    flag: no", "    flag: 'no'"},
		{"already quoted", "mode: 'off'", "mode: 'off'"},
		{"double quoted", `mode: "off"`, `mode: "off"`},
		{"word prefix untouched", "mode: offline", "mode: offline"},
		{"word key untouched", "no: problem", "no: problem"},
		{"true untouched", "enabled: true", "enabled: true"},
		{"plain int untouched", "count: 10", "count: 10"},
		{"url untouched", "url: http://x:80", "url: http://x:80"},
		{"comment line untouched", "# off", "# off"},
		{"multiline", "a: off\nb: 10:30\nc: ok", "a: 'off'\nb: '10:30'\nc: ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(p.Rewrite([]byte(tt.in))); got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	p := NewPolicy()
	for _, w := range []string{"off", "no", "n", "on", "yes", "y"} {
		if !p.IsAmbiguousWord(w) {
			t.Errorf("IsAmbiguousWord(%q) = false", w)
		}
	}
	for _, w := range []string{"Off", "YES", "true", "false", "maybe", ""} {
		if p.IsAmbiguousWord(w) {
			t.Errorf("IsAmbiguousWord(%q) = true", w)
		}
	}
	if !p.IsTimeLike("10:30") || !p.IsTimeLike("1:2") {
		t.Errorf("IsTimeLike rejected a digits:digits shape")
	}
	for _, s := range []string{"123456:1", "10:30:00", "a:1", "10:", ":30"} {
		if p.IsTimeLike(s) {
			t.Errorf("IsTimeLike(%q) = true", s)
		}
	}
}

func TestBoolFromLiteral(t *testing.T) {
	p := NewPolicy()
	if v, ok := p.BoolFromLiteral("true"); !ok || !v {
		t.Errorf("BoolFromLiteral(true) = %v, %v", v, ok)
	}
	if v, ok := p.BoolFromLiteral("false"); !ok || v {
		t.Errorf("BoolFromLiteral(false) = %v, %v", v, ok)
	}
	for _, lit := range []string{"True", "FALSE", "yes", "on", "off"} {
		if _, ok := p.BoolFromLiteral(lit); ok {
			t.Errorf("BoolFromLiteral(%q) recognized a non-literal bool", lit)
		}
	}
}
