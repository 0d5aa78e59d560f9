package actions

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrInvalidCapacity = errors.New("mru capacity must be positive")

type mruSlot struct {
	action *Action
	header string
	path   string
}

// MRU holds a fixed number of recent-file actions. Slot i always shows the
// file ranked i+1; slots without a usable file are blank and disabled.
type MRU struct {
	slots  []mruSlot
	onOpen func(path string)
}

func NewMRU(ctx Context, factory Factory, capacity int) (*MRU, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	m := &MRU{slots: make([]mruSlot, capacity)}
	for i := range m.slots {
		a, err := factory.Make(ctx, KindRecentFile)
		if err != nil {
			return nil, fmt.Errorf("make recent file action %d: %w", i+1, err)
		}
		if a == nil {
			return nil, fmt.Errorf("make recent file action %d: factory returned no action", i+1)
		}
		if a.Verb() != Do {
			a = New(Do, WithKind(KindRecentFile), WithIcon(a.Icon()))
		}

		a.SetHideIfDisabled(true)

		idx := i
		a.SetHandler(func(Event) { m.open(idx) })
		m.slots[i] = mruSlot{
			action: a,
			header: factory.RankHeader(ctx, i+1),
		}
		m.clear(i)
	}
	return m, nil
}

func (m *MRU) Capacity() int {
	return len(m.slots)
}

// SetOpenHandler sets the callback run with a slot's path when the slot is
// activated.
func (m *MRU) SetOpenHandler(fn func(path string)) {
	m.onOpen = fn
}

// Refresh reassigns every slot from filenames. Entries past the capacity are
// ignored; blank entries leave their slot empty.
func (m *MRU) Refresh(filenames []string) {
	for i := range m.slots {
		if i < len(filenames) && strings.TrimSpace(filenames[i]) != "" {
			m.populate(i, filenames[i])
			continue
		}
		m.clear(i)
	}
}

func (m *MRU) populate(i int, path string) {
	s := &m.slots[i]
	s.path = path
	s.action.SetLabel(s.header + filepath.Base(strings.TrimSpace(path)))
	s.action.Enable()
}

func (m *MRU) clear(i int) {
	s := &m.slots[i]
	s.path = ""
	s.action.SetLabel("")
	s.action.Disable()
}

func (m *MRU) open(i int) {
	path := m.slots[i].path
	if path == "" || m.onOpen == nil {
		return
	}
	m.onOpen(path)
}

// Actions returns the slot actions in rank order.
func (m *MRU) Actions() Collection {
	c := make(Collection, len(m.slots))
	for i, s := range m.slots {
		c[i] = s.action
	}
	return c
}

// Paths returns the file held by each slot, "" for empty slots.
func (m *MRU) Paths() []string {
	paths := make([]string, len(m.slots))
	for i, s := range m.slots {
		paths[i] = s.path
	}
	return paths
}

// AppendTo adds every slot, enabled or not, to c in rank order.
func (m *MRU) AppendTo(c *Collection) {
	for _, s := range m.slots {
		c.Append(s.action)
	}
}
