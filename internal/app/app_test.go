package app

import (
	"os"
	"path/filepath"
	"testing"

	"deskkit/internal/actions"
	"deskkit/internal/catalog"
	"deskkit/internal/config"
	"deskkit/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Locale = "en"
	cfg.Product = "Atlas"
	cfg.MRUSize = 3
	cfg.RecentFile = filepath.Join(t.TempDir(), "recent.yaml")
	cfg.Splash.Enabled = false
	return cfg
}

func newApplication(t *testing.T, cfg config.Config) *Application {
	t.Helper()
	a, err := NewApplication(test.NewTempApp(t), cfg, logger.NoOpLogger{})
	require.NoError(t, err)
	t.Cleanup(a.Shutdown)
	return a
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestBuildActionsFollowsConfig(t *testing.T) {
	test.NewTempApp(t)
	cat, err := catalog.New(logger.NoOpLogger{})
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Export.Vector = false
	cfg.Export.Spreadsheet = true
	cfg.Load.Samples = true
	cfg.Load.Reload = false

	acts, err := BuildActions(cat.Context("en", "Atlas"), cat, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"Export as Image...", "Export as PDF...", "Export as CSV..."}, acts.ExportView().Labels())
	assert.Equal(t, []string{"Open...", "Open URL...", "Open Atlas Samples"}, acts.LoadView().Labels())
	assert.Equal(t, 3, acts.Recent.Capacity())

	menu := acts.FileMenu()
	require.Len(t, menu, 3)
	assert.Len(t, menu[2], 3)
	assert.Len(t, acts.All(), 4+4+7+3)
}

func TestNewApplicationInitialState(t *testing.T) {
	a := newApplication(t, testConfig(t))
	acts := a.Actions()

	assert.True(t, acts.Load.Open.Enabled())
	assert.False(t, acts.Load.Reload.Enabled(), "nothing to reload yet")
	for _, act := range acts.Export.All() {
		assert.False(t, act.Enabled(), "%s needs a document", act.Kind())
	}
	for _, act := range acts.Recent.Actions() {
		assert.False(t, act.Enabled())
	}
	assert.Equal(t, "Atlas", a.Window().Title())
}

func TestNewApplicationRestoresRecentFiles(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.RecentFile, []byte("version: 1\nfiles:\n  - /data/a.txt\n  - /data/b.txt\n"), 0o644))

	a := newApplication(t, cfg)
	assert.Equal(t, []string{"1 a.txt", "2 b.txt", ""}, a.Actions().Recent.Actions().Labels())
}

func TestNewApplicationSurvivesCorruptRecentFile(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.RecentFile, []byte("files: [oops"), 0o644))

	a := newApplication(t, cfg)
	assert.Equal(t, []string{"", "", ""}, a.Actions().Recent.Actions().Labels())
}

func TestOpenedUpdatesRecentAndCommands(t *testing.T) {
	cfg := testConfig(t)
	cfg.Export.Unsupported = []string{string(actions.KindExportPDF)}
	a := newApplication(t, cfg)

	first := writeFile(t, "first.txt", "one")
	second := writeFile(t, "second.txt", "two")

	for _, p := range []string{first, second} {
		doc, err := readDocument(p)
		require.NoError(t, err)
		a.opened(doc)
	}

	assert.Equal(t, second, a.Document().Path)
	assert.Equal(t, "second.txt - Atlas", a.Window().Title())
	assert.Equal(t, []string{"1 second.txt", "2 first.txt", ""}, a.Actions().Recent.Actions().Labels())
	assert.Equal(t, []string{second, first, ""}, a.Actions().Recent.Paths())

	export := a.Actions().Export
	assert.True(t, export.Image.Enabled())
	assert.False(t, export.PDF.Enabled(), "unsupported kinds stay disabled")
	assert.True(t, a.Actions().Load.Reload.Enabled())

	persisted, err := a.recent.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{second, first}, persisted)
}

func TestForgetDropsMissingFile(t *testing.T) {
	a := newApplication(t, testConfig(t))
	kept := writeFile(t, "kept.txt", "k")
	gone := filepath.Join(t.TempDir(), "gone.txt")

	_, err := a.recent.Add(kept)
	require.NoError(t, err)
	_, err = a.recent.Add(gone)
	require.NoError(t, err)

	a.forget(gone)
	assert.Equal(t, []string{"1 kept.txt", "", ""}, a.Actions().Recent.Actions().Labels())
}

func TestPathFromURL(t *testing.T) {
	p, err := pathFromURL(" file:///tmp/report.csv ")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/report.csv", p)

	p, err = pathFromURL("/tmp/plain.txt")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/plain.txt", p)

	_, err = pathFromURL("https://example.com/a.txt")
	assert.Error(t, err)

	_, err = pathFromURL("file://")
	assert.Error(t, err)
}

func menuLabels(m *fyne.Menu) []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		if item.IsSeparator {
			labels[i] = "-"
			continue
		}
		labels[i] = item.Label
	}
	return labels
}

func TestMainWindowAssembles(t *testing.T) {
	a := newApplication(t, testConfig(t))

	menu := a.mainMenu()
	require.Len(t, menu.Items, 2)
	file := menu.Items[0]
	assert.Equal(t, []string{
		"Open...", "Open URL...", "Reload", "-",
		"Export as Image...", "Export as PDF...", "Export as SVG...",
	}, menuLabels(file), "empty recent slots and their separator stay out")
	assert.Len(t, menu.Items[1].Items, 7)

	content := a.content()
	require.NotNil(t, content)
	a.Window().SetMainMenu(menu)
	a.Window().SetContent(content)

	doc, err := readDocument(writeFile(t, "notes.txt", "n"))
	require.NoError(t, err)
	a.opened(doc)

	labels := menuLabels(file)
	assert.Equal(t, []string{"-", "1 notes.txt"}, labels[len(labels)-2:])
}

func TestLoadUnsupportedSurvivesDocument(t *testing.T) {
	cfg := testConfig(t)
	cfg.Load.Unsupported = []string{string(actions.KindLoadReload)}
	a := newApplication(t, cfg)

	doc, err := readDocument(writeFile(t, "doc.txt", "d"))
	require.NoError(t, err)
	a.opened(doc)

	load := a.Actions().Load
	assert.True(t, load.Open.Enabled())
	assert.False(t, load.Reload.Enabled(), "unsupported kinds stay disabled")
}
