package menu

import "fmt"

// Kind tells custom entries apart from separators and host-provided actions.
type Kind int

const (
	KindCustom Kind = iota
	KindSeparator
	KindQuit
	KindCut
	KindCopy
	KindPaste
)

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindSeparator:
		return "separator"
	case KindQuit:
		return "quit"
	case KindCut:
		return "cut"
	case KindCopy:
		return "copy"
	case KindPaste:
		return "paste"
	}
	return "unknown"
}

// Predefined reports whether the host supplies the behaviour of the entry.
func (k Kind) Predefined() bool {
	return k == KindQuit || k == KindCut || k == KindCopy || k == KindPaste
}

// Entry is one row of a menu group. ID is set only for KindCustom.
type Entry struct {
	Kind        Kind
	ID          EntryID
	Label       string
	Enabled     bool
	Accelerator string
}

type Group struct {
	Label   string
	Entries []Entry
}

// Spec is the ordered menu tree installed on the main window.
type Spec struct {
	Groups []Group
}

func custom(id EntryID, label, accel string) Entry {
	return Entry{Kind: KindCustom, ID: id, Label: label, Enabled: true, Accelerator: accel}
}

func predefined(kind Kind, label string) Entry {
	return Entry{Kind: kind, Label: label, Enabled: true}
}

func separator() Entry {
	return Entry{Kind: KindSeparator}
}

// Build returns the application menu: File, Edit and View, in that order.
// Every call returns a fresh, identical tree.
func Build() Spec {
	return Spec{Groups: []Group{
		{
			Label: "File",
			Entries: []Entry{
				custom(OpenFolder, "Open Folder", "CmdOrCtrl+Shift+O"),
				custom(New, "New", "CmdOrCtrl+N"),
				custom(Save, "Save", "CmdOrCtrl+S"),
				separator(),
				predefined(KindQuit, "Quit"),
			},
		},
		{
			Label: "Edit",
			Entries: []Entry{
				custom(Undo, "Undo", "CmdOrCtrl+Z"),
				custom(Redo, "Redo", "CmdOrCtrl+Shift+Z"),
				separator(),
				predefined(KindCut, "Cut"),
				predefined(KindCopy, "Copy"),
				predefined(KindPaste, "Paste"),
			},
		},
		{
			Label: "View",
			Entries: []Entry{
				custom(TogglePreview, "Toggle Preview", "CmdOrCtrl+E"),
				custom(ToggleSidebar, "Toggle Sidebar", "CmdOrCtrl+B"),
				custom(IncreaseFontSize, "Increase Font Size", "CmdOrCtrl+1"),
				custom(DecreaseFontSize, "Decrease Font Size", "CmdOrCtrl+-"),
			},
		},
	}}
}

// CustomIDs lists the custom entries in menu order.
func (s Spec) CustomIDs() []EntryID {
	var ids []EntryID
	for _, g := range s.Groups {
		for _, e := range g.Entries {
			if e.Kind == KindCustom {
				ids = append(ids, e.ID)
			}
		}
	}
	return ids
}

// Validate checks what the host would reject: custom entries without a
// dispatch mapping, ids used twice, and malformed or repeated accelerators.
func (s Spec) Validate() error {
	seenIDs := make(map[EntryID]bool)
	seenAccels := make(map[string]string)

	for _, g := range s.Groups {
		for _, e := range g.Entries {
			if e.Kind != KindCustom {
				continue
			}
			name := e.ID.String()
			if !e.ID.Valid() {
				return &MenuError{Op: "validate", Entry: e.Label, Err: ErrUnmappedEntry}
			}
			if seenIDs[e.ID] {
				return &MenuError{Op: "validate", Entry: name, Err: ErrDuplicateEntry}
			}
			seenIDs[e.ID] = true

			if e.Accelerator == "" {
				continue
			}
			acc, err := ParseAccelerator(e.Accelerator)
			if err != nil {
				return &MenuError{Op: "validate", Entry: name, Err: err}
			}
			if other, ok := seenAccels[acc.String()]; ok {
				return &MenuError{
					Op:    "validate",
					Entry: name,
					Err:   fmt.Errorf("%w: %s already used by %q", ErrDuplicateAccelerator, acc, other),
				}
			}
			seenAccels[acc.String()] = name
		}
	}
	return nil
}
