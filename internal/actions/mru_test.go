package actions_test

import (
	"testing"

	"deskkit/internal/actions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMRU(t *testing.T, n int) *actions.MRU {
	t.Helper()
	m, err := actions.NewMRU(testCtx, newStubFactory(), n)
	require.NoError(t, err)
	return m
}

func assertEmpty(t *testing.T, a *actions.Action) {
	t.Helper()
	assert.Equal(t, "", a.Label())
	assert.False(t, a.Enabled())
}

func TestMRUInitialState(t *testing.T) {
	m := newMRU(t, 4)
	assert.Equal(t, 4, m.Capacity())
	for _, a := range m.Actions() {
		assert.True(t, a.IsAction())
		assertEmpty(t, a)
		assert.True(t, a.Hidden())
	}
}

func TestMRUInvalidCapacity(t *testing.T) {
	_, err := actions.NewMRU(testCtx, newStubFactory(), 0)
	assert.ErrorIs(t, err, actions.ErrInvalidCapacity)
}

func TestMRURefresh(t *testing.T) {
	m := newMRU(t, 5)
	m.Refresh([]string{"/home/user/docs/a.txt", "b.txt"})

	slots := m.Actions()
	assert.Equal(t, "1: a.txt", slots[0].Label())
	assert.Equal(t, "2: b.txt", slots[1].Label())
	assert.True(t, slots[0].Enabled())
	assert.True(t, slots[1].Enabled())
	for _, a := range slots[2:] {
		assertEmpty(t, a)
	}
	assert.Equal(t, []string{"/home/user/docs/a.txt", "b.txt", "", "", ""}, m.Paths())
}

func TestMRURefreshEmptyResets(t *testing.T) {
	m := newMRU(t, 3)
	m.Refresh([]string{"a", "b", "c"})
	m.Refresh(nil)
	for _, a := range m.Actions() {
		assertEmpty(t, a)
	}
	m.Refresh([]string{"a", "b", "c"})
	m.Refresh([]string{})
	for _, a := range m.Actions() {
		assertEmpty(t, a)
	}
}

func TestMRURefreshBlankEntry(t *testing.T) {
	m := newMRU(t, 3)
	m.Refresh([]string{"a.txt", "b.txt", "c.txt"})
	m.Refresh([]string{"a.txt", "   ", "c.txt"})

	slots := m.Actions()
	assert.Equal(t, "1: a.txt", slots[0].Label())
	assertEmpty(t, slots[1])
	assert.Equal(t, "3: c.txt", slots[2].Label(), "rank is positional, not compacted")
}

func TestMRURefreshOverflow(t *testing.T) {
	m := newMRU(t, 2)
	m.Refresh([]string{"a", "b", "c", "d"})
	assert.Equal(t, []string{"1: a", "2: b"}, m.Actions().Labels())
}

func TestMRUOpenHandler(t *testing.T) {
	m := newMRU(t, 3)
	var opened []string
	m.SetOpenHandler(func(path string) { opened = append(opened, path) })

	m.Refresh([]string{"/tmp/one.txt", "/tmp/two.txt"})
	slots := m.Actions()
	slots[1].Activate(nil)
	slots[2].Activate(nil)
	assert.Equal(t, []string{"/tmp/two.txt"}, opened)

	m.Refresh([]string{"/tmp/three.txt"})
	slots[0].Activate(nil)
	slots[1].Activate(nil)
	assert.Equal(t, []string{"/tmp/two.txt", "/tmp/three.txt"}, opened)
}

func TestMRUAppendTo(t *testing.T) {
	m := newMRU(t, 3)
	m.Refresh([]string{"x"})

	head := actions.New(actions.Do, actions.WithLabel("Open"))
	c := actions.Collection{head}
	m.AppendTo(&c)

	require.Len(t, c, 4)
	assert.Same(t, head, c[0])
	for i, a := range m.Actions() {
		assert.Same(t, a, c[i+1])
	}
	assert.Equal(t, []string{"Open", "1: x"}, c.Visible().Labels())
}
