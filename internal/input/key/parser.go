package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Errors returned by Parse.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrUnknownKey  = errors.New("unknown key name")
	ErrTrailingSep = errors.New("key specification ends with separator")
)

// Parse converts a key specification string into an Event.
// The format mirrors Encode: modifier names joined to a key name with
// "+". Single characters are rune keys; longer names are looked up as
// special keys ("Escape", "Enter", "Space", ...).
//
//	Parse("a")          -> rune 'a'
//	Parse("Ctrl+r")     -> rune 'r' with ModCtrl
//	Parse("Escape")     -> KeyEscape
//	Parse("Ctrl+Space") -> rune ' ' with ModCtrl
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// A trailing "+" means the key itself is '+' (possibly "Ctrl++").
	keyPart := spec
	var mods Modifier
	if idx := strings.LastIndex(spec, "+"); idx >= 0 && idx < len(spec)-1 {
		keyPart = spec[idx+1:]
		for _, name := range strings.Split(spec[:idx], "+") {
			if name == "" {
				return Event{}, fmt.Errorf("%w: %q", ErrTrailingSep, spec)
			}
			mod := ModifierFromName(name)
			if mod == ModNone {
				return Event{}, fmt.Errorf("%w: modifier %q in %q", ErrUnknownKey, name, spec)
			}
			mods = mods.With(mod)
		}
	} else if strings.HasSuffix(spec, "+") && len(spec) > 1 {
		keyPart = "+"
		for _, name := range strings.Split(strings.TrimSuffix(spec, "++"), "+") {
			if name == "" {
				continue
			}
			mod := ModifierFromName(name)
			if mod == ModNone {
				return Event{}, fmt.Errorf("%w: modifier %q in %q", ErrUnknownKey, name, spec)
			}
			mods = mods.With(mod)
		}
	}

	// Single rune: a character key.
	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		return Event{Key: KeyRune, Rune: r, Modifiers: mods}, nil
	}

	// Space is delivered as a rune event.
	if strings.EqualFold(keyPart, "space") {
		return Event{Key: KeyRune, Rune: ' ', Modifiers: mods}, nil
	}

	k := KeyFromName(keyPart)
	if k == KeyNone {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownKey, keyPart)
	}
	return Event{Key: k, Modifiers: mods}, nil
}

// MustParse is Parse that panics on error, for static keymap tables.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}
