package actions_test

import (
	"testing"

	"deskkit/internal/actions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCollection(t *testing.T) {
	f := newStubFactory()
	e, err := actions.NewExportActions(testCtx, f, nil)
	require.NoError(t, err)

	for _, k := range []actions.Kind{
		actions.KindExportImage, actions.KindExportPDF,
		actions.KindExportVector, actions.KindExportSpreadsheet,
	} {
		assert.Equal(t, 1, f.calls[k], "factory called once for %s", k)
	}

	t.Run("always included only", func(t *testing.T) {
		c := e.Collection(false, false)
		assert.Equal(t, actions.Collection{e.Image, e.PDF}, c)
	})

	t.Run("all optional members", func(t *testing.T) {
		c := e.Collection(true, true)
		assert.Equal(t, actions.Collection{e.Image, e.PDF, e.Vector, e.Spreadsheet}, c)
	})

	t.Run("single optional member keeps order", func(t *testing.T) {
		assert.Equal(t, actions.Collection{e.Image, e.PDF, e.Spreadsheet}, e.Collection(false, true))
		assert.Equal(t, actions.Collection{e.Image, e.PDF, e.Vector}, e.Collection(true, false))
	})

	t.Run("idempotent", func(t *testing.T) {
		first := e.Collection(true, true)
		second := e.Collection(true, true)
		assert.Equal(t, first, second)
		for _, a := range second {
			assert.True(t, a.IsAction())
			assert.True(t, a.Enabled())
		}
	})
}

func TestExportUnsupportedPolicy(t *testing.T) {
	unsupported := actions.NewKindSet(actions.KindExportImage, actions.KindExportVector)
	e, err := actions.NewExportActions(testCtx, newStubFactory(), unsupported)
	require.NoError(t, err)

	c := e.Collection(false, false)
	assert.Len(t, c, 2, "disabled members stay in the view")
	assert.False(t, e.Image.Enabled())
	assert.True(t, e.PDF.Enabled())
	assert.False(t, e.Vector.Enabled())
	assert.True(t, e.Spreadsheet.Enabled())

	e.Collection(false, false)
	assert.True(t, e.Image.IsAction(), "verb untouched")
}

func TestLoadCollection(t *testing.T) {
	l, err := actions.NewLoadActions(testCtx, newStubFactory(), nil)
	require.NoError(t, err)

	assert.Equal(t, actions.Collection{l.Open, l.OpenURL}, l.Collection(false, false))
	assert.Equal(t, actions.Collection{l.Open, l.OpenURL, l.Samples, l.Reload}, l.Collection(true, true))
	assert.Equal(t, l.All(), l.Collection(true, true))
}

func TestFactoryFailureIsFatal(t *testing.T) {
	f := newStubFactory()
	f.fail = actions.KindExportPDF

	e, err := actions.NewExportActions(testCtx, f, nil)
	assert.Nil(t, e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(actions.KindExportPDF))
	assert.Zero(t, f.calls[actions.KindExportVector], "building stops at the first failure")

	f.fail = actions.KindLoadReload
	l, err := actions.NewLoadActions(testCtx, f, nil)
	assert.Nil(t, l)
	assert.Error(t, err)
}

func TestApplyPolicyAfterReenable(t *testing.T) {
	e, err := actions.NewExportActions(testCtx, newStubFactory(), actions.NewKindSet(actions.KindExportPDF))
	require.NoError(t, err)

	for _, a := range e.All() {
		a.Enable()
	}
	assert.True(t, e.PDF.Enabled())

	e.ApplyPolicy()
	assert.False(t, e.PDF.Enabled())
	assert.True(t, e.Image.Enabled())
}

func TestLoadUnsupportedPolicy(t *testing.T) {
	l, err := actions.NewLoadActions(testCtx, newStubFactory(), actions.NewKindSet(actions.KindLoadURL))
	require.NoError(t, err)

	l.ApplyPolicy()
	assert.True(t, l.Open.Enabled())
	assert.False(t, l.OpenURL.Enabled())

	assert.Equal(t, actions.Collection{l.Open, l.OpenURL}, l.Collection(false, false),
		"disabled members stay in the view")
}
