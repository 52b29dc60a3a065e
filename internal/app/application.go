package app

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"mdnotes/internal/config"
	"mdnotes/internal/logger"
	"mdnotes/internal/menu"
	"mdnotes/internal/shutdown"
	"mdnotes/internal/signals"
	"mdnotes/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "mdnotes"
	AppVersion = "1.0.0"

	// MainWindow is the logical name of the window that owns the menu and
	// the signal bus.
	MainWindow = "main"

	shutdownTimeout = 5 * time.Second
)

var ErrWindowNotFound = errors.New("window not found")

// Application is the context object built at startup and handed to every
// component that needs the window, the bus or the menu.
type Application struct {
	fyneApp fyne.App
	cfg     *config.Config
	logger  logger.Logger

	mu      sync.RWMutex
	windows map[string]fyne.Window

	bus      *signals.Bus
	menu     *menu.Controller
	view     *views.MainView
	shutdown *shutdown.Manager

	quit func()
}

// NewApplication creates the Fyne application described by cfg and sets up
// the shell. A returned error is fatal.
func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(cfg.AppID)
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      cfg.AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return New(fyneApp, cfg, log)
}

// New sets up the shell on an existing Fyne application.
func New(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	a := &Application{
		fyneApp:  fyneApp,
		cfg:      cfg,
		logger:   log,
		windows:  make(map[string]fyne.Window),
		shutdown: shutdown.NewManager(log, shutdownTimeout),
	}
	a.quit = func() { fyne.Do(fyneApp.Quit) }

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"app_id":        cfg.AppID,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"go_version":    runtime.Version(),
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()
	a.RegisterWindow(MainWindow, window)

	if err := a.setup(); err != nil {
		window.Close()
		return nil, err
	}

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

func (a *Application) setup() error {
	main, err := a.Window(MainWindow)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	a.bus = signals.NewBus(a.cfg.SignalBuffer, a.logger)
	a.shutdown.Register("signal bus", a.bus)

	a.menu = menu.NewController(a.fyneApp, a.bus, a.logger)

	a.view = views.NewMainView(main, a.menu.Activate)
	a.view.Subscribe(a.bus)
	a.shutdown.Register("main view", a.view)

	if err := a.menu.Install(main, menu.Build()); err != nil {
		a.bus.Shutdown()
		return fmt.Errorf("setup: %w", err)
	}
	return nil
}

// RegisterWindow makes w reachable by name.
func (a *Application) RegisterWindow(name string, w fyne.Window) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.windows[name] = w
}

// Window returns the window registered under name.
func (a *Application) Window(name string) (fyne.Window, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	w, ok := a.windows[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWindowNotFound, name)
	}
	return w, nil
}

func (a *Application) Bus() *signals.Bus {
	return a.bus
}

func (a *Application) Menu() *menu.Controller {
	return a.menu
}

func (a *Application) View() *views.MainView {
	return a.view
}

// Run shows the main window and blocks in the Fyne event loop.
func (a *Application) Run() error {
	stop := a.shutdown.Listen()
	defer stop()

	main, err := a.Window(MainWindow)
	if err != nil {
		return err
	}

	exited := make(chan struct{})
	go a.quitOnShutdown(exited)

	main.SetOnClosed(func() {
		a.logger.Info("Application", "main window closed", nil)
		a.shutdown.Shutdown()
	})

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	close(exited)

	a.shutdown.Shutdown()
	return nil
}

// quitOnShutdown stops the event loop when a shutdown starts while it is
// still running. Once exited is closed the loop is gone and nothing is sent.
func (a *Application) quitOnShutdown(exited <-chan struct{}) {
	select {
	case <-a.shutdown.Done():
		select {
		case <-exited:
			return
		default:
		}
		a.quit()
	case <-exited:
	}
}

// Shutdown stops the bus and the view. Safe to call more than once.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}
