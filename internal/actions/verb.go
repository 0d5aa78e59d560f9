package actions

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVerb = errors.New("unknown action verb")

// Verb tags an action with the interaction shape it implies. Presentation code
// switches over it to decide which control to build.
type Verb uint8

const (
	Do Verb = iota
	Check
	Toggle
	Choose
	Select
	Spin
	PickDate
	PickColor
)

var verbNames = [...]string{
	Do:        "do",
	Check:     "check",
	Toggle:    "toggle",
	Choose:    "choose",
	Select:    "select",
	Spin:      "spin",
	PickDate:  "pick_date",
	PickColor: "pick_color",
}

func DefaultVerb() Verb {
	return Do
}

// Verbs returns every verb in declaration order.
func Verbs() []Verb {
	return []Verb{Do, Check, Toggle, Choose, Select, Spin, PickDate, PickColor}
}

func (v Verb) Valid() bool {
	return int(v) < len(verbNames)
}

func (v Verb) String() string {
	if !v.Valid() {
		return fmt.Sprintf("verb(%d)", uint8(v))
	}
	return verbNames[v]
}

func ParseVerb(name string) (Verb, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range verbNames {
		if n == name {
			return Verb(i), nil
		}
	}
	return Do, fmt.Errorf("%w: %q", ErrUnknownVerb, name)
}
