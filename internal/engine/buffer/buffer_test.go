package buffer

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLines int
	}{
		{"empty", "", 1},
		{"single line", "hello", 1},
		{"two lines", "a\nb", 2},
		{"trailing newline", "a\n", 2},
		{"blank lines", "\n\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.content)
			if got := b.LineCount(); got != tt.wantLines {
				t.Errorf("LineCount() = %d, want %d", got, tt.wantLines)
			}
			if got := b.Content(); got != tt.content {
				t.Errorf("Content() = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestSetContentNeverEmpty(t *testing.T) {
	b := New("a\nb\nc")
	b.SetContent("")
	if b.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", b.LineCount())
	}
	if b.Line(0) != "" {
		t.Errorf("Line(0) = %q, want empty", b.Line(0))
	}
}

func TestInsertLine(t *testing.T) {
	b := New("a\nc")
	b.InsertLineAfter(0, "b")
	if got := b.Content(); got != "a\nb\nc" {
		t.Errorf("after InsertLineAfter: %q", got)
	}

	b.InsertLineBefore(0, "start")
	if got := b.Content(); got != "start\na\nb\nc" {
		t.Errorf("after InsertLineBefore: %q", got)
	}

	b.InsertLineAfter(b.LineCount()-1, "end")
	if got := b.Content(); got != "start\na\nb\nc\nend" {
		t.Errorf("after tail InsertLineAfter: %q", got)
	}
}

func TestRemoveLine(t *testing.T) {
	b := New("a\nb\nc")
	b.RemoveLine(1)
	if got := b.Content(); got != "a\nc" {
		t.Errorf("after RemoveLine(1): %q", got)
	}
}

func TestSetLine(t *testing.T) {
	b := New("a\nb")
	b.SetLine(1, "replaced")
	if got := b.Line(1); got != "replaced" {
		t.Errorf("Line(1) = %q", got)
	}
	if got := b.LineLen(1); got != 8 {
		t.Errorf("LineLen(1) = %d", got)
	}
}

func TestRuneColumns(t *testing.T) {
	b := New("héllo")
	if got := b.LineLen(0); got != 5 {
		t.Errorf("LineLen = %d, want 5 (runes, not bytes)", got)
	}
}
