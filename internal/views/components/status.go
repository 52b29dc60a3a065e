package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the last signal received from the shell.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.countLabel = widget.NewLabel("Signals: 0")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countLabel,
	)
}

// SetStatus is safe to call from any goroutine.
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetSignalCount is safe to call from any goroutine.
func (sb *StatusBar) SetSignalCount(n int) {
	fyne.Do(func() {
		sb.countLabel.SetText(fmt.Sprintf("Signals: %d", n))
	})
}

func (sb *StatusBar) GetSignalCount() string {
	return sb.countLabel.Text
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
