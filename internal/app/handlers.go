package app

import (
	"errors"
	"fmt"
	"image/color"
	"net/url"
	"os"
	"strings"
	"time"

	"deskkit/internal/actions"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

var errNoDocument = errors.New("no document is open")

// on installs h on act and reports every activation to the event bus.
func (a *Application) on(act *actions.Action, h actions.Handler) {
	act.SetHandler(func(ev actions.Event) {
		a.publishActivation(ev)
		h(ev)
	})
}

func (a *Application) setupHandlers() {
	load := a.actions.Load
	a.on(load.Open, func(actions.Event) { a.HandleOpen() })
	a.on(load.OpenURL, func(actions.Event) { a.HandleOpenURL() })
	a.on(load.Samples, func(actions.Event) { a.HandleSamples() })
	a.on(load.Reload, func(actions.Event) { a.HandleReload() })

	export := a.actions.Export
	a.on(export.Image, func(actions.Event) { a.HandleExport("png") })
	a.on(export.PDF, func(actions.Event) { a.HandleExport("pdf") })
	a.on(export.Vector, func(actions.Event) { a.HandleExport("svg") })
	a.on(export.Spreadsheet, func(actions.Event) { a.HandleExport("csv") })

	for _, act := range a.actions.View.Collection() {
		a.on(act, a.handleViewChange)
	}

	// Slot handlers stay with the MRU; only the open callback is ours.
	a.actions.Recent.SetOpenHandler(func(path string) {
		a.logger.Debug("Application", "recent file selected", map[string]interface{}{"path": path})
		a.OpenPath(path)
	})
}

func (a *Application) HandleOpen() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError("File Open Error", err)
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()
		a.setStatus("Loading " + path + "...")

		go func() {
			doc, readErr := readDocumentFrom(path, reader)
			reader.Close()

			fyne.Do(func() {
				if readErr != nil {
					a.showError("File Read Error", readErr)
					a.setStatus("")
					return
				}
				a.opened(doc)
			})
		}()
	}, a.window)
}

func (a *Application) HandleOpenURL() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("file:///path/to/document")
	items := []*widget.FormItem{widget.NewFormItem("URL", entry)}

	dialog.ShowForm(a.actions.Load.OpenURL.Label(), "Open", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		path, err := pathFromURL(entry.Text)
		if err != nil {
			a.showError("Open URL Error", err)
			return
		}
		a.OpenPath(path)
	}, a.window)
}

func pathFromURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "", "file":
		if u.Path == "" {
			return "", fmt.Errorf("no path in %q", raw)
		}
		return u.Path, nil
	}
	return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
}

func (a *Application) HandleSamples() {
	dialog.ShowInformation(a.actions.Load.Samples.Label(),
		fmt.Sprintf("%s %s ships no sample documents in this build.", a.cfg.Product, AppVersion), a.window)
}

func (a *Application) HandleReload() {
	if a.document == nil {
		a.showError("Reload Error", errNoDocument)
		return
	}
	a.OpenPath(a.document.Path)
}

// OpenPath reads path and, on success, makes it the current document and the
// most recent file. Paths that no longer exist are dropped from the list.
func (a *Application) OpenPath(path string) {
	a.setStatus("Loading " + path + "...")

	go func() {
		doc, err := readDocument(path)

		fyne.Do(func() {
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					a.forget(path)
				}
				a.showError("File Open Error", err)
				a.setStatus("")
				return
			}
			a.opened(doc)
		})
	}()
}

func (a *Application) opened(doc *Document) {
	a.setDocument(doc)
	a.setStatus(fmt.Sprintf("Opened %s (%d bytes)", doc.Name(), len(doc.Data)))

	files, err := a.recent.Add(doc.Path)
	if err != nil {
		a.logger.Error("Application", err, map[string]interface{}{"path": doc.Path})
	}
	a.actions.Recent.Refresh(files)
}

func (a *Application) forget(path string) {
	files, err := a.recent.Remove(path)
	if err != nil {
		a.logger.Error("Application", err, map[string]interface{}{"path": path})
	}
	a.actions.Recent.Refresh(files)
}

// setDocument toggles the document-dependent commands, then reapplies the
// unsupported policy so it wins over the re-enable.
func (a *Application) setDocument(doc *Document) {
	a.document = doc
	open := doc != nil

	for _, act := range a.actions.Export.All() {
		act.SetEnabled(open)
	}
	a.actions.Load.Reload.SetEnabled(open)
	a.actions.Export.ApplyPolicy()
	a.actions.Load.ApplyPolicy()

	if open {
		a.docLabel.SetText(doc.Name())
		a.window.SetTitle(fmt.Sprintf("%s - %s", doc.Name(), a.cfg.Product))
	} else {
		a.docLabel.SetText("")
		a.window.SetTitle(a.cfg.Product)
	}
}

func (a *Application) HandleExport(ext string) {
	doc := a.document
	if doc == nil {
		a.showError("Export Error", errNoDocument)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.showError("Export Error", err)
			return
		}
		if writer == nil {
			return
		}

		go func() {
			_, writeErr := writer.Write(doc.Data)
			closeErr := writer.Close()
			uri := writer.URI()

			fyne.Do(func() {
				if writeErr != nil || closeErr != nil {
					a.showError("Export Error", errors.Join(writeErr, closeErr))
					return
				}
				a.setStatus("Exported " + uri.Name())
			})
		}()
	}, a.window)

	save.SetFileName(strings.TrimSuffix(doc.Name(), storage.NewFileURI(doc.Path).Extension()) + "." + ext)
	save.Show()
}

func (a *Application) handleViewChange(ev actions.Event) {
	var shown string
	switch v := ev.Value.(type) {
	case nil:
		shown = ""
	case bool:
		shown = fmt.Sprintf("%t", v)
	case time.Time:
		shown = v.Format("2006-01-02")
	case color.Color:
		r, g, b, _ := v.RGBA()
		shown = fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	default:
		shown = fmt.Sprint(v)
	}
	a.setStatus(fmt.Sprintf("%s: %s", ev.Action.Label(), shown))
}

func (a *Application) showError(title string, err error) {
	a.logger.Error("Application", err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, a.window)
}
