package key

import "strings"

// Modifier is a bitmask of active modifier keys.
type Modifier uint8

const (
	// ModNone means no modifiers are active.
	ModNone Modifier = 0

	// ModShift is the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl is the Control key.
	ModCtrl

	// ModAlt is the Alt/Option key.
	ModAlt

	// ModMeta is the Meta/Command/Windows key.
	ModMeta
)

// HasShift returns true if Shift is active.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }

// HasCtrl returns true if Control is active.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt returns true if Alt is active.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// HasMeta returns true if Meta is active.
func (m Modifier) HasMeta() bool { return m&ModMeta != 0 }

// With returns the modifier set with mod added.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without returns the modifier set with mod removed.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// String returns a readable representation such as "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// modNameMap maps lowercase modifier names to flags.
var modNameMap = map[string]Modifier{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"c":     ModCtrl,
	"alt":   ModAlt,
	"a":     ModAlt,
	"meta":  ModMeta,
	"cmd":   ModMeta,
	"m":     ModMeta,
}

// ModifierFromName looks up a modifier by name (case-insensitive).
// Returns ModNone if the name is not a modifier.
func ModifierFromName(name string) Modifier {
	return modNameMap[strings.ToLower(name)]
}
