package espir

import (
	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/pawndev/espir/pkg/espir/internal"
)

type navigationMode int

const (
	modeMenu navigationMode = iota
	modeSubMenu
)

// Navigator turns discrete commands into Menu, Button and Selector calls.
// In the menu, Up/Down move the highlight and Select activates the highlighted
// button, opening its sub-menu when it has one. In a sub-menu the directions
// move between options and selectors, Select presses and flashes, and Back
// returns to the menu.
type Navigator struct {
	menu *Menu
	mode navigationMode
}

func NewNavigator(menu *Menu) *Navigator {
	return &Navigator{menu: menu}
}

func (n *Navigator) Menu() *Menu {
	return n.menu
}

func (n *Navigator) InSubMenu() bool {
	return n.mode == modeSubMenu
}

// Start paints the menu.
func (n *Navigator) Start() {
	n.mode = modeMenu
	n.menu.Render()
}

func (n *Navigator) Handle(cmd constants.Command) NavigationResult {
	var result NavigationResult
	if n.mode == modeSubMenu {
		result = n.handleSubMenu(cmd)
	} else {
		result = n.handleMenu(cmd)
	}

	if result.Action != NavigationActionNone {
		internal.GetInternalLogger().Debug("Handled command",
			"command", cmd.String(),
			"action", result.Action.String(),
			"button", result.Button,
			"selector", result.Selector,
		)
	}

	return result
}

func (n *Navigator) handleMenu(cmd constants.Command) NavigationResult {
	result := NavigationResult{Selector: -1}

	switch cmd {
	case constants.CommandUp:
		n.menu.MoveUp()
		result.Action = NavigationActionMoved
	case constants.CommandDown:
		n.menu.MoveDown()
		result.Action = NavigationActionMoved
	case constants.CommandSelect:
		button := n.menu.HighlightedButton()
		result.Button = n.menu.Activate()
		if !button.HasSubMenu() {
			result.Action = NavigationActionActivated
			return result
		}
		n.mode = modeSubMenu
		button.RenderSubMenu()
		result.Action = NavigationActionEntered
		result.Selector = button.ActiveIndex()
		return result
	}

	result.Button = n.menu.Activate()
	return result
}

func (n *Navigator) handleSubMenu(cmd constants.Command) NavigationResult {
	button := n.menu.HighlightedButton()
	result := NavigationResult{Button: button.Action()}

	switch cmd {
	case constants.CommandUp, constants.CommandDown, constants.CommandLeft, constants.CommandRight:
		switch cmd {
		case constants.CommandUp:
			button.SubMenuUp()
		case constants.CommandDown:
			button.SubMenuDown()
		case constants.CommandLeft:
			button.SubMenuLeft()
		case constants.CommandRight:
			button.SubMenuRight()
		}
		// Row moves and selector switches paint nothing, so pulse the cursor cell.
		button.FlashActive()
		result.Action = NavigationActionMoved
	case constants.CommandSelect:
		result.Changed = button.Press()
		button.FlashActive()
		result.Action = NavigationActionPressed
		result.Selected = button.ActiveSelector().Selected()
	case constants.CommandBack:
		n.mode = modeMenu
		n.menu.Render()
		result.Action = NavigationActionExited
		result.Selector = -1
		return result
	}

	result.Selector = button.ActiveIndex()
	return result
}
