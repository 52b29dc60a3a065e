package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"mdnotes/internal/menu"
)

// Toolbar mirrors the most used menu entries. Buttons go through the same
// activation path as the menu, so they emit the same signals.
type Toolbar struct {
	container *fyne.Container
	buttons   map[menu.EntryID]*widget.Button
	activate  func(menu.EntryID)
}

var toolbarEntries = []struct {
	id    menu.EntryID
	label string
	icon  fyne.Resource
}{
	{menu.OpenFolder, "Open Folder", theme.FolderOpenIcon()},
	{menu.New, "New", theme.DocumentCreateIcon()},
	{menu.Save, "Save", theme.DocumentSaveIcon()},
	{menu.TogglePreview, "Preview", theme.VisibilityIcon()},
	{menu.ToggleSidebar, "Sidebar", theme.MenuIcon()},
}

func NewToolbar(activate func(menu.EntryID)) *Toolbar {
	t := &Toolbar{
		buttons:  make(map[menu.EntryID]*widget.Button),
		activate: activate,
	}
	t.createComponents()
	t.buildLayout()
	return t
}

func (t *Toolbar) createComponents() {
	for _, e := range toolbarEntries {
		id := e.id
		t.buttons[id] = widget.NewButtonWithIcon(e.label, e.icon, func() {
			if t.activate != nil {
				t.activate(id)
			}
		})
	}
}

func (t *Toolbar) buildLayout() {
	objects := make([]fyne.CanvasObject, 0, len(toolbarEntries)+1)
	for i, e := range toolbarEntries {
		if i == 3 {
			objects = append(objects, widget.NewSeparator())
		}
		objects = append(objects, t.buttons[e.id])
	}
	t.container = container.NewHBox(objects...)
}

// Button returns the button bound to id, or nil.
func (t *Toolbar) Button(id menu.EntryID) *widget.Button {
	return t.buttons[id]
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
