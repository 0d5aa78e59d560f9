package actions

import (
	"time"

	"fyne.io/fyne/v2"
)

// Event is the payload delivered to an action handler on activation. Value
// carries the control state for verbs that have one (bool for Check/Toggle,
// string for Choose/Select, int for Spin, time.Time for PickDate and
// color.Color for PickColor).
type Event struct {
	Action *Action
	Value  interface{}
	Time   time.Time
}

type Handler func(Event)

// Action is a single user-invokable command. The verb is fixed at
// construction; label, icon, enabled state and handler may change.
//
// An Action is owned by the UI goroutine and carries no locking.
type Action struct {
	verb           Verb
	kind           Kind
	label          string
	icon           fyne.Resource
	choices        []string
	enabled        bool
	hideIfDisabled bool
	handler        Handler
	listeners      []func(*Action)
}

type Option func(*Action)

func WithLabel(label string) Option {
	return func(a *Action) { a.label = label }
}

func WithIcon(icon fyne.Resource) Option {
	return func(a *Action) { a.icon = icon }
}

func WithHandler(h Handler) Option {
	return func(a *Action) { a.handler = h }
}

// WithChoices sets the option list shown by Choose and Select controls.
func WithChoices(choices ...string) Option {
	return func(a *Action) { a.choices = append([]string(nil), choices...) }
}

func WithKind(kind Kind) Option {
	return func(a *Action) { a.kind = kind }
}

func WithHideIfDisabled(hide bool) Option {
	return func(a *Action) { a.hideIfDisabled = hide }
}

// New creates an enabled, visible action. Out-of-range verbs collapse to Do.
func New(verb Verb, opts ...Option) *Action {
	if !verb.Valid() {
		verb = DefaultVerb()
	}

	a := &Action{
		verb:    verb,
		enabled: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Action) Verb() Verb { return a.verb }

func (a *Action) Kind() Kind { return a.kind }

func (a *Action) IsAction() bool { return a.verb == Do }
func (a *Action) IsCheck() bool  { return a.verb == Check }
func (a *Action) IsToggle() bool { return a.verb == Toggle }
func (a *Action) IsChoice() bool { return a.verb == Choose }
func (a *Action) IsSelect() bool { return a.verb == Select }
func (a *Action) IsSpin() bool   { return a.verb == Spin }
func (a *Action) IsDate() bool   { return a.verb == PickDate }
func (a *Action) IsColor() bool  { return a.verb == PickColor }

func (a *Action) Label() string { return a.label }

func (a *Action) SetLabel(label string) {
	if a.label == label {
		return
	}
	a.label = label
	a.changed()
}

func (a *Action) Icon() fyne.Resource { return a.icon }

func (a *Action) SetIcon(icon fyne.Resource) {
	a.icon = icon
	a.changed()
}

func (a *Action) Choices() []string {
	return append([]string(nil), a.choices...)
}

func (a *Action) Enabled() bool { return a.enabled }

func (a *Action) SetEnabled(enabled bool) {
	if a.enabled == enabled {
		return
	}
	a.enabled = enabled
	a.changed()
}

func (a *Action) Enable()  { a.SetEnabled(true) }
func (a *Action) Disable() { a.SetEnabled(false) }

func (a *Action) HideIfDisabled() bool { return a.hideIfDisabled }

func (a *Action) SetHideIfDisabled(hide bool) {
	if a.hideIfDisabled == hide {
		return
	}
	a.hideIfDisabled = hide
	a.changed()
}

// Hidden reports whether a presenter honouring the hide hint should omit the
// action entirely.
func (a *Action) Hidden() bool {
	return a.hideIfDisabled && !a.enabled
}

func (a *Action) SetHandler(h Handler) {
	a.handler = h
}

// Activate runs the handler once. Disabled actions and actions without a
// handler ignore activation.
func (a *Action) Activate(value interface{}) bool {
	if !a.enabled || a.handler == nil {
		return false
	}
	a.handler(Event{Action: a, Value: value, Time: time.Now()})
	return true
}

// OnChange registers fn to run after label, icon, enabled state or hide hint
// change.
func (a *Action) OnChange(fn func(*Action)) {
	a.listeners = append(a.listeners, fn)
}

func (a *Action) changed() {
	for _, fn := range a.listeners {
		fn(a)
	}
}

func (a *Action) String() string {
	return a.label
}
