package espir

import (
	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/pawndev/espir/pkg/espir/internal"
)

// Button is one entry of a Menu. It owns the selectors of its sub-menu and
// routes sub-menu navigation to the active one.
type Button struct {
	display Display

	x, y, w, h int32
	label      string
	action     string

	selectors []*Selector
	active    int
}

func newButton(display Display, x, y, w, h int32, item MenuItem) *Button {
	return &Button{
		display:   display,
		x:         x,
		y:         y,
		w:         w,
		h:         h,
		label:     item.Label,
		action:    item.action(),
		selectors: make([]*Selector, 0, constants.MaxSelectors),
	}
}

func (b *Button) Label() string {
	return b.label
}

func (b *Button) Action() string {
	return b.action
}

func (b *Button) Selectors() []*Selector {
	return b.selectors
}

// ActiveSelector returns nil when the button has no sub-menu.
func (b *Button) ActiveSelector() *Selector {
	if len(b.selectors) == 0 {
		return nil
	}
	return b.selectors[b.active]
}

func (b *Button) ActiveIndex() int {
	if len(b.selectors) == 0 {
		return -1
	}
	return b.active
}

func (b *Button) HasSubMenu() bool {
	return len(b.selectors) > 0
}

func (b *Button) Render(selected bool) {
	theme := internal.GetTheme()

	fill, text := theme.ButtonColor, theme.ButtonTextColor
	if selected {
		fill, text = theme.HighlightColor, theme.HighlightedTextColor
	}

	b.display.FillRoundRect(b.x, b.y, b.w, b.h, constants.ButtonCornerRadius, fill)
	b.display.SetCursor(b.x+constants.ButtonTextInset, b.y+(b.h-constants.GlyphHeight)/2)
	b.display.SetTextColor(text)
	b.display.Print(b.label)
}

// AddSelector appends a selector to the sub-menu. Once MaxSelectors are present
// further calls are ignored. Invalid configurations are rejected with an error
// wrapping ErrPrecondition.
func (b *Button) AddSelector(cfg SelectorConfig) error {
	if len(b.selectors) >= constants.MaxSelectors {
		internal.GetInternalLogger().Debug("Sub-menu full, selector ignored", "button", b.action, "prompt", cfg.Prompt)
		return nil
	}

	selector, err := newSelector(b.display, 0, SelectorY(len(b.selectors)), cfg)
	if err != nil {
		return err
	}

	b.selectors = append(b.selectors, selector)
	return nil
}

func (b *Button) RenderSubMenu() {
	b.display.FillRect(0, 0, b.display.Width(), b.display.Height(), internal.GetTheme().BackgroundColor)

	for _, selector := range b.selectors {
		selector.Render()
	}
}

// Press presses the active selector and reports whether its selection changed.
func (b *Button) Press() bool {
	selector := b.ActiveSelector()
	if selector == nil {
		return false
	}
	return selector.Press()
}

func (b *Button) FlashActive() {
	if selector := b.ActiveSelector(); selector != nil {
		selector.FlashSelected()
	}
}

// SubMenuDown moves to the next selector when the active one is on its last
// row, otherwise moves the cursor one row down.
func (b *Button) SubMenuDown() {
	selector := b.ActiveSelector()
	if selector == nil {
		return
	}

	if selector.AtBottom() {
		b.active = (b.active + 1) % len(b.selectors)
		return
	}
	selector.MoveDown()
}

// SubMenuUp moves to the previous selector when the active one is on its first
// row, otherwise moves the cursor one row up.
func (b *Button) SubMenuUp() {
	selector := b.ActiveSelector()
	if selector == nil {
		return
	}

	if selector.AtTop() {
		b.active--
		if b.active < 0 {
			b.active = len(b.selectors) - 1
		}
		return
	}
	selector.MoveUp()
}

func (b *Button) SubMenuLeft() {
	if selector := b.ActiveSelector(); selector != nil {
		selector.MoveLeft()
	}
}

func (b *Button) SubMenuRight() {
	if selector := b.ActiveSelector(); selector != nil {
		selector.MoveRight()
	}
}
