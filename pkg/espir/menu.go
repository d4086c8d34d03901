package espir

import (
	"fmt"

	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/pawndev/espir/pkg/espir/internal"
)

// Menu is a single column of buttons with exactly one highlighted.
type Menu struct {
	display     Display
	buttons     []*Button
	highlighted int
}

// NewMenu lays out one full-width button per item, top to bottom.
func NewMenu(display Display, items []MenuItem) (*Menu, error) {
	if display == nil {
		return nil, fmt.Errorf("%w: menu needs a display", ErrPrecondition)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: menu needs at least one button", ErrPrecondition)
	}

	buttons := make([]*Button, len(items))
	for i, item := range items {
		buttons[i] = newButton(display, 0, ButtonY(i), display.Width(), constants.ButtonHeight, item)
	}

	return &Menu{
		display: display,
		buttons: buttons,
	}, nil
}

// Activate returns the action identifier of the highlighted button.
func (m *Menu) Activate() string {
	return m.buttons[m.highlighted].Action()
}

func (m *Menu) Buttons() []*Button {
	return m.buttons
}

func (m *Menu) Highlighted() int {
	return m.highlighted
}

func (m *Menu) HighlightedButton() *Button {
	return m.buttons[m.highlighted]
}

func (m *Menu) Render() {
	m.display.FillRect(0, 0, m.display.Width(), m.display.Height(), internal.GetTheme().BackgroundColor)
	m.display.SetTextColor(internal.GetTheme().ButtonTextColor)
	m.display.SetTextSize(1)

	for i, button := range m.buttons {
		button.Render(i == m.highlighted)
	}
}

func (m *Menu) MoveDown() {
	m.buttons[m.highlighted].Render(false)
	m.highlighted = (m.highlighted + 1) % len(m.buttons)
	m.buttons[m.highlighted].Render(true)
}

func (m *Menu) MoveUp() {
	m.buttons[m.highlighted].Render(false)
	m.highlighted--
	if m.highlighted < 0 {
		m.highlighted = len(m.buttons) - 1
	}
	m.buttons[m.highlighted].Render(true)
}
