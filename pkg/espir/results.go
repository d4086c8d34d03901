package espir

import "errors"

// ErrPrecondition is wrapped by every construction error caused by
// out-of-range sizes or indices.
var ErrPrecondition = errors.New("precondition violated")

type NavigationAction int

const (
	NavigationActionNone NavigationAction = iota
	NavigationActionMoved
	NavigationActionActivated
	NavigationActionEntered
	NavigationActionPressed
	NavigationActionExited
)

func (a NavigationAction) String() string {
	switch a {
	case NavigationActionMoved:
		return "moved"
	case NavigationActionActivated:
		return "activated"
	case NavigationActionEntered:
		return "entered"
	case NavigationActionPressed:
		return "pressed"
	case NavigationActionExited:
		return "exited"
	default:
		return "none"
	}
}

// NavigationResult reports what a single command did.
type NavigationResult struct {
	Action   NavigationAction
	Button   string // Action identifier of the button involved
	Selector int    // Active selector index, -1 outside a sub-menu
	Selected []int  // Selection of the active selector after a press
	Changed  bool   // Whether a press altered the selection
}
