package menu

// EntryID names a custom menu entry. The set is closed: every value has a
// signal and a description, so a custom entry cannot be left undispatched.
type EntryID int

const (
	OpenFolder EntryID = iota + 1
	New
	Save
	Undo
	Redo
	TogglePreview
	ToggleSidebar
	IncreaseFontSize
	DecreaseFontSize
)

// Signal is the name of a message broadcast to the presentation layer.
type Signal string

const (
	SignalOpenFolder       Signal = "menu-open-folder"
	SignalNew              Signal = "menu-new"
	SignalSave             Signal = "menu-save"
	SignalUndo             Signal = "menu-undo"
	SignalRedo             Signal = "menu-redo"
	SignalTogglePreview    Signal = "menu-toggle-preview"
	SignalToggleSidebar    Signal = "menu-toggle-sidebar"
	SignalIncreaseFontSize Signal = "menu-increase-font-size"
	SignalDecreaseFontSize Signal = "menu-decrease-font-size"
)

// AllEntryIDs returns every custom entry id in menu order.
func AllEntryIDs() []EntryID {
	return []EntryID{
		OpenFolder, New, Save,
		Undo, Redo,
		TogglePreview, ToggleSidebar, IncreaseFontSize, DecreaseFontSize,
	}
}

// ParseEntryID maps the wire form of an id ("toggle-preview") back to its tag.
func ParseEntryID(s string) (EntryID, bool) {
	for _, id := range AllEntryIDs() {
		if id.String() == s {
			return id, true
		}
	}
	return 0, false
}

func (id EntryID) Valid() bool {
	return id.Signal() != ""
}

func (id EntryID) String() string {
	switch id {
	case OpenFolder:
		return "open-folder"
	case New:
		return "new"
	case Save:
		return "save"
	case Undo:
		return "undo"
	case Redo:
		return "redo"
	case TogglePreview:
		return "toggle-preview"
	case ToggleSidebar:
		return "toggle-sidebar"
	case IncreaseFontSize:
		return "increase-font-size"
	case DecreaseFontSize:
		return "decrease-font-size"
	}
	return ""
}

func (id EntryID) Signal() Signal {
	switch id {
	case OpenFolder:
		return SignalOpenFolder
	case New:
		return SignalNew
	case Save:
		return SignalSave
	case Undo:
		return SignalUndo
	case Redo:
		return SignalRedo
	case TogglePreview:
		return SignalTogglePreview
	case ToggleSidebar:
		return SignalToggleSidebar
	case IncreaseFontSize:
		return SignalIncreaseFontSize
	case DecreaseFontSize:
		return SignalDecreaseFontSize
	}
	return ""
}

// Description is the human-readable line logged when the entry is activated.
func (id EntryID) Description() string {
	switch id {
	case OpenFolder:
		return "Open folder requested"
	case New:
		return "New file requested"
	case Save:
		return "Save file requested"
	case Undo:
		return "Undo requested"
	case Redo:
		return "Redo requested"
	case TogglePreview:
		return "Toggle preview requested"
	case ToggleSidebar:
		return "Toggle sidebar requested"
	case IncreaseFontSize:
		return "Increase font size requested"
	case DecreaseFontSize:
		return "Decrease font size requested"
	}
	return ""
}
