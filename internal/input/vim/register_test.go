package vim

import "testing"

func TestRegisterLinewiseConvention(t *testing.T) {
	r := NewRegister()
	if !r.IsEmpty() {
		t.Fatal("new register should be empty")
	}

	r.Set("hello")
	if r.IsLinewise() {
		t.Error("charwise content reported linewise")
	}

	r.SetLinewise([]string{"one", "two"})
	if !r.IsLinewise() {
		t.Error("linewise content not detected")
	}
	if got := r.Get(); got != "one\ntwo\n" {
		t.Errorf("Get() = %q", got)
	}
	if lines := r.Lines(); len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("Lines() = %v", lines)
	}
}

func TestRegisterOverwrite(t *testing.T) {
	r := NewRegister()
	r.SetLinewise([]string{"line"})
	r.Set("char")
	if r.IsLinewise() {
		t.Error("charwise overwrite should drop the linewise mark")
	}
	if r.Get() != "char" {
		t.Errorf("Get() = %q", r.Get())
	}
}
