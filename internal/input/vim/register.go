package vim

import "strings"

// Register is the single yank/delete slot. Linewise content carries a
// trailing newline; charwise content does not. That convention is the
// only type marker.
type Register struct {
	content string
}

// NewRegister returns an empty register.
func NewRegister() *Register {
	return &Register{}
}

// Set replaces the register contents.
func (r *Register) Set(content string) {
	r.content = content
}

// SetLinewise stores lines with the trailing newline that marks
// linewise content.
func (r *Register) SetLinewise(lines []string) {
	r.content = strings.Join(lines, "\n") + "\n"
}

// Get returns the register contents.
func (r *Register) Get() string {
	return r.content
}

// IsEmpty reports whether nothing has been yanked yet.
func (r *Register) IsEmpty() bool {
	return r.content == ""
}

// IsLinewise reports whether the contents paste as whole lines.
func (r *Register) IsLinewise() bool {
	return strings.HasSuffix(r.content, "\n")
}

// Lines returns linewise content split into lines, without the
// trailing empty element.
func (r *Register) Lines() []string {
	return strings.Split(strings.TrimSuffix(r.content, "\n"), "\n")
}
