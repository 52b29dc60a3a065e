// Package menu builds the application menu and relays menu activations to
// the presentation layer as named signals.
package menu

import (
	"fyne.io/fyne/v2"

	"mdnotes/internal/logger"
)

const component = "MenuController"

// Emitter is the event channel of the main window.
type Emitter interface {
	Emit(name string, payload interface{}) error
}

// Host supplies the behaviour of predefined entries. fyne.App satisfies it.
type Host interface {
	Quit()
	Clipboard() fyne.Clipboard
}

// Controller installs the menu and turns activations into signals. It holds
// no per-event state; the dispatch table is read-only after construction.
type Controller struct {
	host    Host
	emitter Emitter
	table   DispatchTable
	log     logger.Logger
}

func NewController(host Host, emitter Emitter, log logger.Logger) *Controller {
	return &Controller{
		host:    host,
		emitter: emitter,
		table:   NewDispatchTable(),
		log:     log,
	}
}

// Table returns the dispatch table used by OnActivated.
func (c *Controller) Table() DispatchTable {
	return c.table
}

// Install validates spec and sets it as the main menu of window. Any error is
// a *MenuError and should abort startup.
func (c *Controller) Install(window fyne.Window, spec Spec) error {
	if window == nil {
		return &MenuError{Op: "install", Err: ErrNoWindow}
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	mainMenu := c.mainMenu(window, spec)
	window.SetMainMenu(mainMenu)

	c.log.Info(component, "menu installed", map[string]interface{}{
		"groups":  len(spec.Groups),
		"entries": len(spec.CustomIDs()),
	})
	return nil
}

// OnActivated handles an activation carrying a raw entry id. Unknown ids are
// ignored.
func (c *Controller) OnActivated(id string) {
	if _, ok := c.table.Lookup(id); !ok {
		c.log.Debug(component, "ignoring unmapped menu id", map[string]interface{}{
			"id": id,
		})
		return
	}
	entry, _ := ParseEntryID(id)
	c.Activate(entry)
}

// Activate emits the signal of a custom entry. A failed emit is logged and
// does not stop the shell.
func (c *Controller) Activate(id EntryID) {
	signal := id.Signal()
	if signal == "" {
		return
	}

	c.log.Info(component, id.Description(), map[string]interface{}{
		"id":     id.String(),
		"signal": string(signal),
	})

	if err := c.emitter.Emit(string(signal), nil); err != nil {
		c.log.Error(component, err, map[string]interface{}{
			"id":     id.String(),
			"signal": string(signal),
		})
	}
}

func (c *Controller) mainMenu(window fyne.Window, spec Spec) *fyne.MainMenu {
	menus := make([]*fyne.Menu, 0, len(spec.Groups))
	for _, g := range spec.Groups {
		items := make([]*fyne.MenuItem, 0, len(g.Entries))
		for _, e := range g.Entries {
			items = append(items, c.menuItem(window, e))
		}
		menus = append(menus, fyne.NewMenu(g.Label, items...))
	}
	return fyne.NewMainMenu(menus...)
}

func (c *Controller) menuItem(window fyne.Window, e Entry) *fyne.MenuItem {
	var item *fyne.MenuItem

	switch e.Kind {
	case KindSeparator:
		return fyne.NewMenuItemSeparator()
	case KindQuit:
		item = fyne.NewMenuItem(e.Label, c.host.Quit)
		item.IsQuit = true
	case KindCut:
		item = fyne.NewMenuItem(e.Label, func() {
			c.typeShortcut(window, &fyne.ShortcutCut{Clipboard: c.host.Clipboard()})
		})
	case KindCopy:
		item = fyne.NewMenuItem(e.Label, func() {
			c.typeShortcut(window, &fyne.ShortcutCopy{Clipboard: c.host.Clipboard()})
		})
	case KindPaste:
		item = fyne.NewMenuItem(e.Label, func() {
			c.typeShortcut(window, &fyne.ShortcutPaste{Clipboard: c.host.Clipboard()})
		})
	default:
		id := e.ID
		item = fyne.NewMenuItem(e.Label, func() {
			c.Activate(id)
		})
		if e.Accelerator != "" {
			// Validate has already accepted every accelerator.
			acc, _ := ParseAccelerator(e.Accelerator)
			item.Shortcut = acc.Shortcut()
		}
	}

	item.Disabled = !e.Enabled
	return item
}

// typeShortcut forwards an edit shortcut to the focused widget, if it takes
// shortcuts.
func (c *Controller) typeShortcut(window fyne.Window, sc fyne.Shortcut) {
	focused := window.Canvas().Focused()
	if focused == nil {
		return
	}
	if target, ok := focused.(fyne.Shortcutable); ok {
		target.TypedShortcut(sc)
	}
}
