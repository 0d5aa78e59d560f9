package app

import (
	"deskkit/internal/eventbus"
	"deskkit/internal/shutdown"

	"fyne.io/fyne/v2"
)

func (a *Application) setupLifecycle() {
	a.bus.Subscribe(eventbus.ActionActivated, eventbus.HandlerFunc{ID: "activation-log", Fn: func(e eventbus.Event) {
		a.logger.Debug("Application", "action activated", e.Data)
	}})
	for _, t := range []string{eventbus.SplashShown, eventbus.SplashHidden, eventbus.RecentChanged} {
		a.bus.Subscribe(t, eventbus.HandlerFunc{ID: "lifecycle-log", Fn: func(e eventbus.Event) {
			a.logger.Debug("Application", e.Type, e.Data)
		}})
	}

	// Registered first so it stops last and sees every other component's events.
	a.shutdown.Register("event-bus", shutdown.Func(a.bus.Shutdown))
	a.shutdown.Register("splash", a.splash)

	if err := a.recent.Watch(a.shutdown.Context(), a.onRecentChanged); err != nil {
		a.logger.Warning("Application", "recent files will not sync between windows", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})
}

// onRecentChanged runs on the watcher goroutine.
func (a *Application) onRecentChanged(files []string) {
	fyne.Do(func() {
		a.actions.Recent.Refresh(files)
	})
	a.bus.Publish(eventbus.Event{Type: eventbus.RecentChanged, Data: map[string]interface{}{
		"count": len(files),
	}})
}

// Shutdown stops background work without quitting the Fyne app.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}
