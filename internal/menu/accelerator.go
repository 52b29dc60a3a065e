package menu

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Modifier is a set of accelerator modifier keys.
type Modifier uint8

const (
	// ModCmdOrCtrl is Cmd on macOS and Ctrl elsewhere.
	ModCmdOrCtrl Modifier = 1 << iota
	ModShift
	ModAlt
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCmdOrCtrl, "CmdOrCtrl"},
	{ModShift, "Shift"},
	{ModAlt, "Alt"},
}

// Accelerator is a parsed keyboard shortcut such as "CmdOrCtrl+Shift+O".
type Accelerator struct {
	Modifiers Modifier
	Key       string
}

// ParseAccelerator parses modifier+...+key. At least one modifier is
// required; keys are A-Z, 0-9, "-" and "=".
func ParseAccelerator(s string) (Accelerator, error) {
	var acc Accelerator
	if strings.TrimSpace(s) == "" {
		return acc, fmt.Errorf("%w: empty", ErrInvalidAccelerator)
	}

	// "-" is a valid key, so split on "+" and treat the last part as the key.
	parts := strings.Split(s, "+")
	if len(parts) < 2 {
		return acc, fmt.Errorf("%w: %q has no modifier", ErrInvalidAccelerator, s)
	}

	for _, part := range parts[:len(parts)-1] {
		mod, ok := parseModifier(part)
		if !ok {
			return acc, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidAccelerator, part, s)
		}
		if acc.Modifiers&mod != 0 {
			return acc, fmt.Errorf("%w: modifier %q repeated in %q", ErrInvalidAccelerator, part, s)
		}
		acc.Modifiers |= mod
	}

	key := strings.ToUpper(strings.TrimSpace(parts[len(parts)-1]))
	if !validKey(key) {
		return acc, fmt.Errorf("%w: unsupported key %q in %q", ErrInvalidAccelerator, parts[len(parts)-1], s)
	}
	acc.Key = key

	return acc, nil
}

func parseModifier(s string) (Modifier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cmdorctrl", "commandorcontrol":
		return ModCmdOrCtrl, true
	case "shift":
		return ModShift, true
	case "alt", "option":
		return ModAlt, true
	}
	return 0, false
}

func validKey(k string) bool {
	if len(k) != 1 {
		return false
	}
	c := k[0]
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '='
}

// String returns the canonical form, modifiers in a fixed order.
func (a Accelerator) String() string {
	var b strings.Builder
	for _, m := range modifierNames {
		if a.Modifiers&m.mod != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(a.Key)
	return b.String()
}

// Shortcut converts the accelerator into the Fyne shortcut the desktop
// driver reports for that key combo. The driver turns plain CmdOrCtrl+Z, Y,
// A, C, X and V into the standard edit shortcuts before it looks for a
// matching menu item, so those are returned as such; everything else is a
// desktop.CustomShortcut.
func (a Accelerator) Shortcut() fyne.Shortcut {
	if a.Modifiers == ModCmdOrCtrl {
		switch fyne.KeyName(a.Key) {
		case fyne.KeyZ:
			return &fyne.ShortcutUndo{}
		case fyne.KeyY:
			return &fyne.ShortcutRedo{}
		case fyne.KeyA:
			return &fyne.ShortcutSelectAll{}
		case fyne.KeyC:
			return &fyne.ShortcutCopy{}
		case fyne.KeyX:
			return &fyne.ShortcutCut{}
		case fyne.KeyV:
			return &fyne.ShortcutPaste{}
		}
	}
	return a.CustomShortcut()
}

// CustomShortcut is the raw key combo, without the standard-shortcut mapping.
func (a Accelerator) CustomShortcut() *desktop.CustomShortcut {
	var mod fyne.KeyModifier
	if a.Modifiers&ModCmdOrCtrl != 0 {
		mod |= fyne.KeyModifierShortcutDefault
	}
	if a.Modifiers&ModShift != 0 {
		mod |= fyne.KeyModifierShift
	}
	if a.Modifiers&ModAlt != 0 {
		mod |= fyne.KeyModifierAlt
	}
	return &desktop.CustomShortcut{KeyName: fyne.KeyName(a.Key), Modifier: mod}
}
