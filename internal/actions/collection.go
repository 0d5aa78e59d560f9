package actions

// Collection is an ordered run of actions used to populate a menu or toolbar.
type Collection []*Action

func (c *Collection) Append(actions ...*Action) {
	*c = append(*c, actions...)
}

// Visible drops actions whose hide hint applies.
func (c Collection) Visible() Collection {
	out := make(Collection, 0, len(c))
	for _, a := range c {
		if !a.Hidden() {
			out = append(out, a)
		}
	}
	return out
}

func (c Collection) Labels() []string {
	labels := make([]string, len(c))
	for i, a := range c {
		labels[i] = a.Label()
	}
	return labels
}
