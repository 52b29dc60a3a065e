package views

import (
	"fmt"
	"sync"

	"mdnotes/internal/menu"
	"mdnotes/internal/signals"
	"mdnotes/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const viewID = "main-view"

// MainView is the presentation layer of the shell: an editor surface, a
// toolbar and a status bar that reports the signals it receives.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	editor        *widget.Entry
	statusBar     *components.StatusBar

	mu       sync.Mutex
	received int
	last     string
}

// NewMainView builds the view and sets it as the window content. activate
// is called by toolbar buttons.
func NewMainView(window fyne.Window, activate func(menu.EntryID)) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(activate)
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents(activate func(menu.EntryID)) {
	mv.toolbar = components.NewToolbar(activate)
	mv.editor = widget.NewMultiLineEntry()
	mv.editor.SetPlaceHolder("# Untitled")
	mv.editor.Wrapping = fyne.TextWrapWord
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		mv.editor,                   // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// Subscribe registers the view for every menu signal on bus.
func (mv *MainView) Subscribe(bus *signals.Bus) {
	for _, id := range menu.AllEntryIDs() {
		bus.Subscribe(string(id.Signal()), mv)
	}
}

// Handle records a signal and shows it in the status bar. It runs on the bus
// worker goroutine.
func (mv *MainView) Handle(event signals.Event) {
	mv.mu.Lock()
	mv.received++
	mv.last = event.Name
	count := mv.received
	mv.mu.Unlock()

	mv.statusBar.SetStatus(fmt.Sprintf("Last action: %s", event.Name))
	mv.statusBar.SetSignalCount(count)
}

func (mv *MainView) GetID() string {
	return viewID
}

// LastSignal returns the name of the last signal handled and the total count.
func (mv *MainView) LastSignal() (string, int) {
	mv.mu.Lock()
	defer mv.mu.Unlock()
	return mv.last, mv.received
}

func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

func (mv *MainView) Show() {
	mv.window.Show()
}

// Shutdown marks the status bar; the window itself is closed by the
// application.
func (mv *MainView) Shutdown() {
	mv.statusBar.SetStatus("Shutting down")
}
