package bind

import (
	"image/color"
	"strconv"
	"strings"
	"time"

	"deskkit/internal/actions"
	"deskkit/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// state is the control value shared by every control and menu item bound to
// the same action.
type state struct {
	checked bool
	choice  string
	value   int
	date    time.Time
	color   color.Color

	listeners []func()
}

func (s *state) onChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *state) changed() {
	for _, fn := range s.listeners {
		fn()
	}
}

// Binder turns actions into Fyne controls and menu items and keeps them in
// step with later label, enabled and hide-hint changes. It must be used from
// the UI goroutine.
type Binder struct {
	window fyne.Window
	logger logger.Logger
	states map[*actions.Action]*state
}

func New(window fyne.Window, log logger.Logger) *Binder {
	return &Binder{
		window: window,
		logger: log,
		states: make(map[*actions.Action]*state),
	}
}

func (b *Binder) state(a *actions.Action) *state {
	s, ok := b.states[a]
	if !ok {
		s = &state{}
		b.states[a] = s
	}
	return s
}

// Checked reports the current Check/Toggle state of a.
func (b *Binder) Checked(a *actions.Action) bool {
	return b.state(a).checked
}

// Value reports the current Spin value of a.
func (b *Binder) Value(a *actions.Action) int {
	return b.state(a).value
}

// Choice reports the current Choose/Select value of a.
func (b *Binder) Choice(a *actions.Action) string {
	return b.state(a).choice
}

// Control builds the widget that matches the verb of a.
func (b *Binder) Control(a *actions.Action) fyne.CanvasObject {
	switch a.Verb() {
	case actions.Do:
		return b.button(a)
	case actions.Check:
		return b.check(a)
	case actions.Toggle:
		return b.toggle(a)
	case actions.Choose:
		return b.radio(a)
	case actions.Select:
		return b.selector(a)
	case actions.Spin:
		return b.Spinner(a).Object
	case actions.PickDate:
		return b.dialogButton(a, b.pickDate)
	case actions.PickColor:
		return b.dialogButton(a, b.pickColor)
	}

	b.logger.Warning("Binder", "no control for verb", map[string]interface{}{
		"verb":  a.Verb().String(),
		"label": a.Label(),
	})
	return widget.NewLabel(a.Label())
}

// Bar lays out the controls of c side by side.
func (b *Binder) Bar(c actions.Collection) *fyne.Container {
	bar := container.NewHBox()
	for _, a := range c {
		bar.Add(b.Control(a))
	}
	return bar
}

// track applies the action's presentation state now and after every change.
func (b *Binder) track(a *actions.Action, obj fyne.CanvasObject, setLabel func(string), parts ...fyne.Disableable) {
	apply := func() {
		if setLabel != nil {
			setLabel(a.Label())
		}
		for _, p := range parts {
			if a.Enabled() {
				p.Enable()
			} else {
				p.Disable()
			}
		}
		if a.Hidden() {
			obj.Hide()
		} else {
			obj.Show()
		}
	}

	apply()
	a.OnChange(func(*actions.Action) { apply() })
}

func (b *Binder) button(a *actions.Action) *widget.Button {
	btn := widget.NewButtonWithIcon(a.Label(), a.Icon(), func() {
		a.Activate(nil)
	})
	b.track(a, btn, btn.SetText, btn)
	return btn
}

func (b *Binder) check(a *actions.Action) *widget.Check {
	s := b.state(a)
	chk := widget.NewCheck(a.Label(), nil)
	chk.SetChecked(s.checked)
	chk.OnChanged = func(on bool) {
		if on == s.checked {
			return
		}
		s.checked = on
		s.changed()
		a.Activate(on)
	}
	s.onChange(func() { chk.SetChecked(s.checked) })
	b.track(a, chk, chk.SetText, chk)
	return chk
}

func (b *Binder) toggle(a *actions.Action) *widget.Button {
	s := b.state(a)
	btn := widget.NewButtonWithIcon(a.Label(), a.Icon(), nil)
	show := func() {
		if s.checked {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
	btn.OnTapped = func() {
		s.checked = !s.checked
		s.changed()
		a.Activate(s.checked)
	}
	show()
	s.onChange(show)
	b.track(a, btn, btn.SetText, btn)
	return btn
}

func (b *Binder) radio(a *actions.Action) *fyne.Container {
	s := b.state(a)
	title := widget.NewLabel(a.Label())
	radio := widget.NewRadioGroup(a.Choices(), nil)
	radio.Horizontal = true
	radio.SetSelected(s.choice)
	radio.OnChanged = func(choice string) {
		if choice == s.choice {
			return
		}
		s.choice = choice
		s.changed()
		a.Activate(choice)
	}
	s.onChange(func() { radio.SetSelected(s.choice) })

	box := container.NewHBox(title, radio)
	b.track(a, box, title.SetText, radio)
	return box
}

func (b *Binder) selector(a *actions.Action) *widget.Select {
	s := b.state(a)
	sel := widget.NewSelect(a.Choices(), nil)
	sel.PlaceHolder = a.Label()
	if s.choice != "" {
		sel.SetSelected(s.choice)
	}
	sel.OnChanged = func(choice string) {
		if choice == s.choice {
			return
		}
		s.choice = choice
		s.changed()
		a.Activate(choice)
	}
	s.onChange(func() {
		if s.choice == "" {
			sel.ClearSelected()
			return
		}
		sel.SetSelected(s.choice)
	})
	b.track(a, sel, func(label string) {
		sel.PlaceHolder = label
		sel.Refresh()
	}, sel)
	return sel
}

// Spinner is the control built for Spin actions.
type Spinner struct {
	Object *fyne.Container
	Entry  *widget.Entry
	Up     *widget.Button
	Down   *widget.Button
}

func (b *Binder) Spinner(a *actions.Action) *Spinner {
	s := b.state(a)
	title := widget.NewLabel(a.Label())
	entry := widget.NewEntry()
	entry.SetText(strconv.Itoa(s.value))

	set := func(v int) {
		s.value = v
		s.changed()
		a.Activate(v)
	}
	s.onChange(func() { entry.SetText(strconv.Itoa(s.value)) })
	entry.OnSubmitted = func(text string) {
		v, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			entry.SetText(strconv.Itoa(s.value))
			return
		}
		set(v)
	}

	up := widget.NewButton("+", func() { set(s.value + 1) })
	down := widget.NewButton("-", func() { set(s.value - 1) })

	box := container.NewBorder(nil, nil, title, container.NewHBox(down, up), entry)
	b.track(a, box, title.SetText, entry, up, down)
	return &Spinner{Object: box, Entry: entry, Up: up, Down: down}
}

func (b *Binder) dialogButton(a *actions.Action, open func(*actions.Action)) *widget.Button {
	btn := widget.NewButtonWithIcon(a.Label(), a.Icon(), func() {
		open(a)
	})
	b.track(a, btn, btn.SetText, btn)
	return btn
}

func (b *Binder) pickDate(a *actions.Action) {
	if b.window == nil {
		b.logger.Warning("Binder", "date picker needs a window", map[string]interface{}{"label": a.Label()})
		return
	}

	s := b.state(a)
	start := s.date
	if start.IsZero() {
		start = time.Now()
	}

	var popup *widget.PopUp
	calendar := widget.NewCalendar(start, func(picked time.Time) {
		s.date = picked
		if popup != nil {
			popup.Hide()
		}
		a.Activate(picked)
	})
	popup = widget.NewModalPopUp(container.NewVBox(widget.NewLabel(a.Label()), calendar), b.window.Canvas())
	popup.Show()
}

func (b *Binder) pickColor(a *actions.Action) {
	if b.window == nil {
		b.logger.Warning("Binder", "colour picker needs a window", map[string]interface{}{"label": a.Label()})
		return
	}

	s := b.state(a)
	picker := dialog.NewColorPicker(a.Label(), "", func(c color.Color) {
		s.color = c
		a.Activate(c)
	}, b.window)
	picker.Advanced = true
	if s.color != nil {
		picker.SetColor(s.color)
	}
	picker.Show()
}
