package app

import (
	"fmt"

	"deskkit/internal/actions"
	"deskkit/internal/catalog"
	"deskkit/internal/config"
	"deskkit/internal/eventbus"
	"deskkit/internal/gui/bind"
	"deskkit/internal/gui/splash"
	"deskkit/internal/logger"
	"deskkit/internal/recent"
	"deskkit/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	AppName       = "Deskkit"
	AppID         = "io.deskkit.viewer"
	AppVersion    = "1.0.0"
	WindowWidth   = 960
	WindowHeight  = 640
	busBufferSize = 256
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     config.Config
	logger  logger.Logger

	bus      *eventbus.Bus
	catalog  *catalog.Catalog
	actions  *Actions
	recent   *recent.Store
	binder   *bind.Binder
	splash   *splash.Manager
	shutdown *shutdown.Manager

	status   *widget.Label
	docLabel *widget.Label
	document *Document
}

func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	bus := eventbus.NewBus(busBufferSize)
	bus.OnPanic(func(id string, recovered interface{}) {
		log.Error("EventBus", fmt.Errorf("handler panic: %v", recovered), map[string]interface{}{
			"handler": id,
		})
	})

	cat, err := catalog.New(log)
	if err != nil {
		bus.Shutdown()
		return nil, fmt.Errorf("load message catalog: %w", err)
	}

	ctx := cat.Context(cfg.Locale, cfg.Product)
	acts, err := BuildActions(ctx, cat, cfg)
	if err != nil {
		bus.Shutdown()
		return nil, err
	}

	window := fyneApp.NewWindow(cfg.Product)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	a := &Application{
		fyneApp:  fyneApp,
		window:   window,
		cfg:      cfg,
		logger:   log,
		bus:      bus,
		catalog:  cat,
		actions:  acts,
		recent:   recent.NewStore(cfg.RecentFile, cfg.MRUSize, log),
		binder:   bind.New(window, log),
		splash:   splash.NewManager(fyneApp, bus, log, cfg.Splash.MinDisplay.Duration),
		shutdown: shutdown.NewManager(log),
		status:   widget.NewLabel(""),
		docLabel: widget.NewLabel(""),
	}

	a.setupHandlers()
	a.loadRecent()
	a.setDocument(nil)
	a.setupLifecycle()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":  AppVersion,
		"locale":   ctx.Locale.String(),
		"mru_size": cfg.MRUSize,
	})
	return a, nil
}

func (a *Application) Actions() *Actions {
	return a.actions
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Document() *Document {
	return a.document
}

func (a *Application) loadRecent() {
	files, err := a.recent.Load()
	if err != nil {
		a.logger.Warning("Application", "recent files unreadable, starting empty", map[string]interface{}{
			"path":  a.recent.Path(),
			"error": err.Error(),
		})
	}
	a.actions.Recent.Refresh(files)
}

func (a *Application) mainMenu() *fyne.MainMenu {
	fileMenu := a.binder.Menu("File", bind.Section(a.actions.FileMenu()...))
	viewMenu := a.binder.Menu("View", a.actions.View.Collection())
	return fyne.NewMainMenu(fileMenu, viewMenu)
}

func (a *Application) content() fyne.CanvasObject {
	toolbar := container.NewHBox(
		a.binder.Bar(a.actions.LoadView()),
		widget.NewSeparator(),
		a.binder.Bar(a.actions.ExportView()),
	)

	view := a.actions.View
	settings := container.NewVBox(
		a.binder.Control(view.Grid),
		a.binder.Control(view.Sidebar),
		a.binder.Control(view.Theme),
		a.binder.Control(view.Units),
		a.binder.Control(view.Zoom),
		a.binder.Control(view.Date),
		a.binder.Control(view.Accent),
	)

	return container.NewBorder(
		toolbar,
		a.status,
		nil,
		settings,
		container.NewCenter(a.docLabel),
	)
}

// Run shows the splash, builds the main window and blocks in the event loop.
func (a *Application) Run() error {
	if a.cfg.Splash.Enabled {
		a.splash.Show(splash.Content(a.cfg.Product, AppVersion, a.fyneApp.Metadata().Icon))
	}

	a.window.SetMainMenu(a.mainMenu())
	a.window.SetContent(a.content())
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.window.Show()
	a.splash.Hide()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	return nil
}

func (a *Application) setStatus(status string) {
	a.status.SetText(status)
}

func (a *Application) publishActivation(ev actions.Event) {
	a.bus.Publish(eventbus.Event{
		Type:      eventbus.ActionActivated,
		Timestamp: ev.Time,
		Data: map[string]interface{}{
			"kind":  string(ev.Action.Kind()),
			"verb":  ev.Action.Verb().String(),
			"label": ev.Action.Label(),
			"value": ev.Value,
		},
	})
}
