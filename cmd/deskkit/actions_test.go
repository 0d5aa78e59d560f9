package main

import (
	"bytes"
	"strings"
	"testing"

	"deskkit/internal/actions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCollections(t *testing.T) {
	open := actions.New(actions.Do, actions.WithKind(actions.KindLoadOpen), actions.WithLabel("Open..."))
	grid := actions.New(actions.Check, actions.WithKind(actions.KindViewGrid), actions.WithLabel("Show Grid"))
	slot := actions.New(actions.Do, actions.WithKind(actions.KindRecentFile), actions.WithHideIfDisabled(true))
	slot.Disable()
	pdf := actions.New(actions.Do, actions.WithKind(actions.KindExportPDF), actions.WithLabel("Export as PDF..."))
	pdf.Disable()

	var buf bytes.Buffer
	err := printCollections(&buf, map[string]actions.Collection{
		"load":   {open},
		"export": {pdf},
		"view":   {grid},
		"recent": {slot},
	}, []string{"load", "export", "view", "recent"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"GROUP", "KIND", "VERB", "STATE", "LABEL"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"load", "load.open", "do", "enabled", "Open..."}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"export", "export.pdf", "do", "disabled", "Export", "as", "PDF..."}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"view", "view.grid", "check", "enabled", "Show", "Grid"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"recent", "recent.file", "do", "hidden"}, strings.Fields(lines[4]))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "deskkit "+version+"\n", buf.String())
}
