package espir

// MenuItem describes one button of a Menu.
// Action defaults to Label when empty.
type MenuItem struct {
	Label  string
	Action string
}

func (mi MenuItem) action() string {
	if mi.Action == "" {
		return mi.Label
	}
	return mi.Action
}
