package actions

import "fmt"

// KindSet is a set of kinds, used for the forced-disable policy.
type KindSet map[Kind]bool

func NewKindSet(kinds ...Kind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = true
	}
	return s
}

func (s KindSet) Has(k Kind) bool {
	return s[k]
}

type builder struct {
	ctx     Context
	factory Factory
	err     error
}

func (b *builder) make(kind Kind) *Action {
	if b.err != nil {
		return nil
	}
	a, err := b.factory.Make(b.ctx, kind)
	if err != nil {
		b.err = fmt.Errorf("make %s action: %w", kind, err)
		return nil
	}
	if a == nil {
		b.err = fmt.Errorf("make %s action: factory returned no action", kind)
	}
	return a
}

type member struct {
	kind   Kind
	action *Action
}

// applyPolicy disables every member whose kind is flagged unsupported.
func applyPolicy(unsupported KindSet, members ...member) {
	for _, m := range members {
		if unsupported.Has(m.kind) {
			m.action.Disable()
		}
	}
}

// ExportActions groups the export commands of a document window.
type ExportActions struct {
	Image       *Action
	PDF         *Action
	Vector      *Action
	Spreadsheet *Action

	unsupported KindSet
}

// NewExportActions makes each export action once. Kinds in unsupported are
// forced disabled whenever the presentation view is built.
func NewExportActions(ctx Context, factory Factory, unsupported KindSet) (*ExportActions, error) {
	b := &builder{ctx: ctx, factory: factory}
	e := &ExportActions{
		Image:       b.make(KindExportImage),
		PDF:         b.make(KindExportPDF),
		Vector:      b.make(KindExportVector),
		Spreadsheet: b.make(KindExportSpreadsheet),
		unsupported: unsupported,
	}
	if b.err != nil {
		return nil, b.err
	}
	return e, nil
}

// Collection returns Image and PDF followed by the optional members whose
// flag is set.
func (e *ExportActions) Collection(includeVector, includeSpreadsheet bool) Collection {
	c := Collection{e.Image, e.PDF}
	if includeVector {
		c.Append(e.Vector)
	}
	if includeSpreadsheet {
		c.Append(e.Spreadsheet)
	}
	e.ApplyPolicy()
	return c
}

// ApplyPolicy forces the unsupported members disabled. Call it again after
// re-enabling members.
func (e *ExportActions) ApplyPolicy() {
	applyPolicy(e.unsupported,
		member{KindExportImage, e.Image},
		member{KindExportPDF, e.PDF},
		member{KindExportVector, e.Vector},
		member{KindExportSpreadsheet, e.Spreadsheet},
	)
}

func (e *ExportActions) All() Collection {
	return Collection{e.Image, e.PDF, e.Vector, e.Spreadsheet}
}

// LoadActions groups the commands that bring a document into the window.
type LoadActions struct {
	Open    *Action
	OpenURL *Action
	Samples *Action
	Reload  *Action

	unsupported KindSet
}

func NewLoadActions(ctx Context, factory Factory, unsupported KindSet) (*LoadActions, error) {
	b := &builder{ctx: ctx, factory: factory}
	l := &LoadActions{
		Open:        b.make(KindLoadOpen),
		OpenURL:     b.make(KindLoadURL),
		Samples:     b.make(KindLoadSamples),
		Reload:      b.make(KindLoadReload),
		unsupported: unsupported,
	}
	if b.err != nil {
		return nil, b.err
	}
	return l, nil
}

func (l *LoadActions) Collection(includeSamples, includeReload bool) Collection {
	c := Collection{l.Open, l.OpenURL}
	if includeSamples {
		c.Append(l.Samples)
	}
	if includeReload {
		c.Append(l.Reload)
	}
	l.ApplyPolicy()
	return c
}

func (l *LoadActions) ApplyPolicy() {
	applyPolicy(l.unsupported,
		member{KindLoadOpen, l.Open},
		member{KindLoadURL, l.OpenURL},
		member{KindLoadSamples, l.Samples},
		member{KindLoadReload, l.Reload},
	)
}

func (l *LoadActions) All() Collection {
	return Collection{l.Open, l.OpenURL, l.Samples, l.Reload}
}

// ViewActions holds the window's view settings, one per non-Do verb.
type ViewActions struct {
	Grid    *Action
	Sidebar *Action
	Theme   *Action
	Units   *Action
	Zoom    *Action
	Date    *Action
	Accent  *Action
}

func NewViewActions(ctx Context, factory Factory) (*ViewActions, error) {
	b := &builder{ctx: ctx, factory: factory}
	v := &ViewActions{
		Grid:    b.make(KindViewGrid),
		Sidebar: b.make(KindViewSidebar),
		Theme:   b.make(KindViewTheme),
		Units:   b.make(KindViewUnits),
		Zoom:    b.make(KindViewZoom),
		Date:    b.make(KindViewDate),
		Accent:  b.make(KindViewAccent),
	}
	if b.err != nil {
		return nil, b.err
	}
	return v, nil
}

func (v *ViewActions) Collection() Collection {
	return Collection{v.Grid, v.Sidebar, v.Theme, v.Units, v.Zoom, v.Date, v.Accent}
}
