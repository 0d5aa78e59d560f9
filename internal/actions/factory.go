package actions

import (
	"errors"

	"golang.org/x/text/language"
)

var ErrUnknownKind = errors.New("unknown action kind")

// Kind names one slot a factory knows how to build.
type Kind string

const (
	KindExportImage       Kind = "export.image"
	KindExportPDF         Kind = "export.pdf"
	KindExportVector      Kind = "export.vector"
	KindExportSpreadsheet Kind = "export.spreadsheet"

	KindLoadOpen    Kind = "load.open"
	KindLoadURL     Kind = "load.url"
	KindLoadSamples Kind = "load.samples"
	KindLoadReload  Kind = "load.reload"

	KindRecentFile Kind = "recent.file"

	KindViewGrid    Kind = "view.grid"
	KindViewSidebar Kind = "view.sidebar"
	KindViewTheme   Kind = "view.theme"
	KindViewUnits   Kind = "view.units"
	KindViewZoom    Kind = "view.zoom"
	KindViewDate    Kind = "view.date"
	KindViewAccent  Kind = "view.accent"
)

// Context is the locale and branding a collection is built for. Collections
// only pass it through to their Factory.
type Context struct {
	Locale  language.Tag
	Product string
}

// Factory builds labelled, iconed actions for a context.
type Factory interface {
	Make(ctx Context, kind Kind) (*Action, error)
	// RankHeader is the label prefix for the MRU entry at a 1-based rank.
	RankHeader(ctx Context, rank int) string
}
