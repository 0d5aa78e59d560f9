package bind

import (
	"fmt"

	"deskkit/internal/actions"

	"fyne.io/fyne/v2"
)

// Menu builds a menu from c. Hidden actions are left out, and the menu is
// rebuilt whenever one of its actions changes.
func (b *Binder) Menu(title string, c actions.Collection) *fyne.Menu {
	menu := fyne.NewMenu(title)
	menu.Items = b.MenuItems(c)

	rebuild := func(*actions.Action) {
		menu.Items = b.MenuItems(c)
		menu.Refresh()
	}
	for _, a := range c {
		if a == nil {
			continue
		}
		a.OnChange(rebuild)
		b.state(a).onChange(func() { rebuild(nil) })
	}
	return menu
}

// Section joins collections with separators, skipping empty ones.
func Section(groups ...actions.Collection) actions.Collection {
	var out actions.Collection
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, nil)
		}
		out = append(out, g...)
	}
	return out
}

// MenuItems converts c, treating nil entries as separators.
func (b *Binder) MenuItems(c actions.Collection) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(c))
	for _, a := range c {
		if a == nil {
			if len(items) > 0 && !items[len(items)-1].IsSeparator {
				items = append(items, fyne.NewMenuItemSeparator())
			}
			continue
		}
		if a.Hidden() {
			continue
		}
		items = append(items, b.MenuItem(a))
	}
	if n := len(items); n > 0 && items[n-1].IsSeparator {
		items = items[:n-1]
	}
	return items
}

// MenuItem builds a single menu entry for a.
func (b *Binder) MenuItem(a *actions.Action) *fyne.MenuItem {
	s := b.state(a)
	item := fyne.NewMenuItem(a.Label(), nil)
	item.Icon = a.Icon()
	item.Disabled = !a.Enabled()

	switch a.Verb() {
	case actions.Do:
		item.Action = func() { a.Activate(nil) }
	case actions.Check, actions.Toggle:
		item.Checked = s.checked
		item.Action = func() {
			s.checked = !s.checked
			s.changed()
			a.Activate(s.checked)
		}
	case actions.Choose, actions.Select:
		item.ChildMenu = fyne.NewMenu("", b.choiceItems(a, s)...)
	case actions.Spin:
		item.Label = fmt.Sprintf("%s: %d", a.Label(), s.value)
		item.ChildMenu = fyne.NewMenu("",
			fyne.NewMenuItem("+", func() { b.step(a, s, 1) }),
			fyne.NewMenuItem("-", func() { b.step(a, s, -1) }),
		)
	case actions.PickDate:
		item.Action = func() { b.pickDate(a) }
	case actions.PickColor:
		item.Action = func() { b.pickColor(a) }
	}
	return item
}

func (b *Binder) choiceItems(a *actions.Action, s *state) []*fyne.MenuItem {
	choices := a.Choices()
	items := make([]*fyne.MenuItem, len(choices))
	for i, choice := range choices {
		choice := choice
		items[i] = fyne.NewMenuItem(choice, func() {
			if s.choice == choice {
				return
			}
			s.choice = choice
			s.changed()
			a.Activate(choice)
		})
		items[i].Checked = s.choice == choice
		items[i].Disabled = !a.Enabled()
	}
	return items
}

func (b *Binder) step(a *actions.Action, s *state, delta int) {
	if !a.Enabled() {
		return
	}
	s.value += delta
	s.changed()
	a.Activate(s.value)
}
