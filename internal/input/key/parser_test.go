package key

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"A", NewRuneEvent('A', ModNone)},
		{"$", NewRuneEvent('$', ModNone)},
		{"0", NewRuneEvent('0', ModNone)},
		{"Ctrl+r", NewRuneEvent('r', ModCtrl)},
		{"ctrl+r", NewRuneEvent('r', ModCtrl)},
		{"Ctrl+Alt+x", NewRuneEvent('x', ModCtrl|ModAlt)},
		{"Escape", NewSpecialEvent(KeyEscape, ModNone)},
		{"Esc", NewSpecialEvent(KeyEscape, ModNone)},
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"Backspace", NewSpecialEvent(KeyBackspace, ModNone)},
		{"Space", NewRuneEvent(' ', ModNone)},
		{"Ctrl+Space", NewRuneEvent(' ', ModCtrl)},
		{"ArrowLeft", NewSpecialEvent(KeyLeft, ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, spec := range []string{"", "Bogus", "Wat+x", "NotAKey"} {
		if _, err := Parse(spec); err == nil {
			t.Errorf("Parse(%q) expected error", spec)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	specs := []string{"a", "$", "Ctrl+r", "Escape", "Ctrl+Alt+x", "Backspace"}
	for _, spec := range specs {
		ev, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", spec, err)
		}
		if got := ev.Encode(); got != spec {
			t.Errorf("round trip %q -> %q", spec, got)
		}
	}
}
