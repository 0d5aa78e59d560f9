package app

import (
	"fmt"

	"deskkit/internal/actions"
	"deskkit/internal/config"
)

// Actions is every command collection a main window presents.
type Actions struct {
	Context actions.Context
	Export  *actions.ExportActions
	Load    *actions.LoadActions
	View    *actions.ViewActions
	Recent  *actions.MRU

	cfg config.Config
}

// BuildActions creates the collections once. Any factory failure aborts the
// build.
func BuildActions(ctx actions.Context, factory actions.Factory, cfg config.Config) (*Actions, error) {
	export, err := actions.NewExportActions(ctx, factory, kindSet(cfg.Export.Unsupported))
	if err != nil {
		return nil, fmt.Errorf("build export actions: %w", err)
	}
	load, err := actions.NewLoadActions(ctx, factory, kindSet(cfg.Load.Unsupported))
	if err != nil {
		return nil, fmt.Errorf("build load actions: %w", err)
	}
	view, err := actions.NewViewActions(ctx, factory)
	if err != nil {
		return nil, fmt.Errorf("build view actions: %w", err)
	}
	recent, err := actions.NewMRU(ctx, factory, cfg.MRUSize)
	if err != nil {
		return nil, fmt.Errorf("build recent file actions: %w", err)
	}

	return &Actions{
		Context: ctx,
		Export:  export,
		Load:    load,
		View:    view,
		Recent:  recent,
		cfg:     cfg,
	}, nil
}

func kindSet(names []string) actions.KindSet {
	kinds := make([]actions.Kind, 0, len(names))
	for _, k := range names {
		kinds = append(kinds, actions.Kind(k))
	}
	return actions.NewKindSet(kinds...)
}

func (a *Actions) ExportView() actions.Collection {
	return a.Export.Collection(a.cfg.Export.Vector, a.cfg.Export.Spreadsheet)
}

func (a *Actions) LoadView() actions.Collection {
	return a.Load.Collection(a.cfg.Load.Samples, a.cfg.Load.Reload)
}

// FileMenu is load, export and recent files, in that order.
func (a *Actions) FileMenu() []actions.Collection {
	var recent actions.Collection
	a.Recent.AppendTo(&recent)
	return []actions.Collection{a.LoadView(), a.ExportView(), recent}
}

// All returns every action once, for wiring handlers and listings.
func (a *Actions) All() actions.Collection {
	var all actions.Collection
	all.Append(a.Load.All()...)
	all.Append(a.Export.All()...)
	all.Append(a.View.Collection()...)
	a.Recent.AppendTo(&all)
	return all
}
