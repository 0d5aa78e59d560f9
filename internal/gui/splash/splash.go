package splash

import (
	"sync"
	"time"

	"deskkit/internal/eventbus"
	"deskkit/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

type Publisher interface {
	Publish(event eventbus.Event) bool
}

// Manager shows a splash window while the application assembles its main
// window and keeps it up for at least minDisplay.
type Manager struct {
	app        fyne.App
	bus        Publisher
	logger     logger.Logger
	minDisplay time.Duration

	mu      sync.Mutex
	window  fyne.Window
	shownAt time.Time
	showing bool
	timer   *time.Timer
}

func NewManager(app fyne.App, bus Publisher, log logger.Logger, minDisplay time.Duration) *Manager {
	return &Manager{
		app:        app,
		bus:        bus,
		logger:     log,
		minDisplay: minDisplay,
	}
}

// Content is the default splash layout: title, subtitle and an activity bar.
func Content(title, subtitle string, logo fyne.Resource) fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	items := []fyne.CanvasObject{heading, widget.NewLabelWithStyle(subtitle, fyne.TextAlignCenter, fyne.TextStyle{})}
	if logo != nil {
		icon := widget.NewIcon(logo)
		items = append([]fyne.CanvasObject{icon}, items...)
	}
	items = append(items, widget.NewProgressBarInfinite())
	return container.NewPadded(container.NewVBox(items...))
}

// Show opens the splash window. Drivers without splash support only emit
// the lifecycle event.
func (m *Manager) Show(content fyne.CanvasObject) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.showing {
		return
	}
	m.showing = true
	m.shownAt = time.Now()

	if drv, ok := m.app.Driver().(desktop.Driver); ok {
		m.window = drv.CreateSplashWindow()
		m.window.SetContent(content)
		m.window.Show()
	} else {
		m.logger.Debug("Splash", "driver has no splash window support", nil)
	}

	m.bus.Publish(eventbus.Event{Type: eventbus.SplashShown, Data: map[string]interface{}{
		"window": m.window != nil,
	}})
}

// Hide closes the splash once the minimum display time has elapsed. It
// returns the delay applied.
func (m *Manager) Hide() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.showing || m.timer != nil {
		return 0
	}

	remaining := m.minDisplay - time.Since(m.shownAt)
	if remaining <= 0 {
		m.closeLocked()
		return 0
	}

	m.timer = time.AfterFunc(remaining, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.closeLocked()
	})
	return remaining
}

// Shutdown closes the splash immediately. It is safe to call from any
// goroutine.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
	}
	m.closeLocked()
}

func (m *Manager) Showing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.showing
}

// closeLocked updates state at once; the window itself is closed on the
// UI goroutine.
func (m *Manager) closeLocked() {
	if !m.showing {
		return
	}
	m.showing = false
	m.timer = nil

	if w := m.window; w != nil {
		m.window = nil
		fyne.Do(w.Close)
	}

	m.bus.Publish(eventbus.Event{Type: eventbus.SplashHidden, Data: map[string]interface{}{
		"shown_for": time.Since(m.shownAt).String(),
	}})
	m.logger.Debug("Splash", "hidden", nil)
}
