package espir

import (
	"fmt"
	"image/color"
	"slices"
	"time"

	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/pawndev/espir/pkg/espir/internal"
)

const noSelection = -1

// SelectorConfig describes one row group of a sub-menu.
// OptionCount limits the selector to the first OptionCount labels; zero means
// all of them. MaxSelected is the number of options that may be chosen at once.
type SelectorConfig struct {
	Prompt      string
	Options     []string
	WindowSize  int
	MaxSelected int
	OptionCount int
}

func (sc SelectorConfig) validate() (int, error) {
	count := sc.OptionCount
	if count == 0 {
		count = len(sc.Options)
	}

	switch {
	case count < 1:
		return 0, fmt.Errorf("%w: selector %q has no options", ErrPrecondition, sc.Prompt)
	case count > len(sc.Options):
		return 0, fmt.Errorf("%w: selector %q option count %d exceeds %d labels", ErrPrecondition, sc.Prompt, count, len(sc.Options))
	case sc.WindowSize < 1:
		return 0, fmt.Errorf("%w: selector %q window size %d must be at least 1", ErrPrecondition, sc.Prompt, sc.WindowSize)
	case sc.MaxSelected < 1 || sc.MaxSelected > count:
		return 0, fmt.Errorf("%w: selector %q max selected %d must be within [1, %d]", ErrPrecondition, sc.Prompt, sc.MaxSelected, count)
	}

	return count, nil
}

// Selector is a grid of options with a bounded selection set and a cursor.
//
// The selection set holds option indices most recently selected first, padded
// with empty slots. It always holds at least one option.
type Selector struct {
	display Display
	delay   func(time.Duration)

	x, y        int32
	prompt      string
	options     []string
	windowSize  int
	maxSelected int

	selected []int
	cursor   int
}

func newSelector(display Display, x, y int32, cfg SelectorConfig) (*Selector, error) {
	count, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	selected := make([]int, cfg.MaxSelected)
	for i := range selected {
		selected[i] = noSelection
	}
	selected[0] = 0

	return &Selector{
		display:     display,
		delay:       delayFunc(display),
		x:           x,
		y:           y,
		prompt:      cfg.Prompt,
		options:     slices.Clone(cfg.Options[:count]),
		windowSize:  cfg.WindowSize,
		maxSelected: cfg.MaxSelected,
		selected:    selected,
	}, nil
}

func (s *Selector) Prompt() string {
	return s.prompt
}

func (s *Selector) Options() []string {
	return slices.Clone(s.options)
}

func (s *Selector) Cursor() int {
	return s.cursor
}

func (s *Selector) Y() int32 {
	return s.y
}

// Selected returns the chosen option indices, most recently selected first.
func (s *Selector) Selected() []int {
	out := make([]int, 0, len(s.selected))
	for _, idx := range s.selected {
		if idx != noSelection {
			out = append(out, idx)
		}
	}
	return out
}

func (s *Selector) IsSelected(index int) bool {
	return index != noSelection && slices.Contains(s.selected, index)
}

// SetSelected replaces the selection, most recent first. It does not repaint.
func (s *Selector) SetSelected(indices ...int) error {
	if len(indices) < 1 || len(indices) > s.maxSelected {
		return fmt.Errorf("%w: selector %q needs between 1 and %d selections, got %d", ErrPrecondition, s.prompt, s.maxSelected, len(indices))
	}

	for i, idx := range indices {
		if idx < 0 || idx >= len(s.options) {
			return fmt.Errorf("%w: selector %q option %d out of range", ErrPrecondition, s.prompt, idx)
		}
		if slices.Contains(indices[:i], idx) {
			return fmt.Errorf("%w: selector %q option %d selected twice", ErrPrecondition, s.prompt, idx)
		}
	}

	for i := range s.selected {
		s.selected[i] = noSelection
	}
	copy(s.selected, indices)

	return nil
}

func (s *Selector) AtTop() bool {
	return s.cursor < s.windowSize
}

func (s *Selector) AtBottom() bool {
	return s.cursor >= len(s.options)-s.windowSize
}

func (s *Selector) MoveLeft() {
	s.drawItem(s.cursor)
	s.cursor--
	if s.cursor < 0 {
		s.cursor = len(s.options) - 1
	}
	s.drawItem(s.cursor)
}

func (s *Selector) MoveRight() {
	s.drawItem(s.cursor)
	s.cursor++
	if s.cursor >= len(s.options) {
		s.cursor = 0
	}
	s.drawItem(s.cursor)
}

// MoveDown moves the cursor one row down if that row has an option in the same
// column. It reports whether the cursor moved.
func (s *Selector) MoveDown() bool {
	if s.cursor+s.windowSize >= len(s.options) {
		return false
	}
	s.cursor += s.windowSize
	return true
}

// MoveUp moves the cursor one row up unless it is on the first row.
func (s *Selector) MoveUp() bool {
	if s.cursor-s.windowSize < 0 {
		return false
	}
	s.cursor -= s.windowSize
	return true
}

// Press toggles the option under the cursor. With a single slot the option
// replaces the previous choice. With several slots a chosen option is removed
// unless it is the only one, and a new option is inserted first, evicting the
// oldest choice when the set is full. It reports whether the selection changed.
func (s *Selector) Press() bool {
	logger := internal.GetInternalLogger()

	if s.maxSelected == 1 {
		previous := s.selected[0]
		s.selected[0] = s.cursor
		s.unselectIndex(previous)
		s.selectIndex(s.cursor)
		return previous != s.cursor
	}

	if pos := slices.Index(s.selected, s.cursor); pos >= 0 {
		if pos == 0 && s.selected[1] == noSelection {
			logger.Debug("Rejected removal of the last selected option", "prompt", s.prompt, "option", s.cursor)
			return false
		}

		copy(s.selected[pos:], s.selected[pos+1:])
		s.selected[s.maxSelected-1] = noSelection
		s.unselectIndex(s.cursor)
		return true
	}

	if evicted := s.selected[s.maxSelected-1]; evicted != noSelection {
		s.selected[s.maxSelected-1] = noSelection
		s.unselectIndex(evicted)
		logger.Debug("Evicted oldest selected option", "prompt", s.prompt, "option", evicted)
	}

	copy(s.selected[1:], s.selected[:s.maxSelected-1])
	s.selected[0] = s.cursor
	s.selectIndex(s.cursor)

	return true
}

// FlashSelected pulses the cell under the cursor: neutral, hold, true style, hold.
// It blocks for the whole pulse.
func (s *Selector) FlashSelected() {
	s.paintCell(s.cursor, internal.GetTheme().FlashColor)
	s.delay(constants.FlashHold)
	s.drawItem(s.cursor)
	s.delay(constants.FlashHold)
}

func (s *Selector) Render() {
	theme := internal.GetTheme()
	rows := internal.CeilDiv(len(s.options), s.windowSize)

	s.display.FillRect(s.x, s.y-constants.SelectorClearInset, s.display.Width(), SelectorHeight(rows), theme.BackgroundColor)
	s.display.SetTextColor(theme.PromptColor)
	s.display.SetCursor(s.x+constants.PromptInset, s.y)
	s.display.Print(s.prompt)

	for i := range s.options {
		s.drawItem(i)
	}
}

func (s *Selector) drawItem(index int) {
	if s.IsSelected(index) {
		s.selectIndex(index)
	} else {
		s.unselectIndex(index)
	}
}

func (s *Selector) selectIndex(index int) {
	s.paintCell(index, internal.GetTheme().SelectedColor)
}

func (s *Selector) unselectIndex(index int) {
	s.paintCell(index, internal.GetTheme().UnselectedColor)
}

func (s *Selector) paintCell(index int, fill color.RGBA) {
	width := s.display.Width()
	cellX := ColumnX(index, s.windowSize, width)
	cellY := RowY(s.y, Row(index, s.windowSize))

	s.display.FillRoundRect(cellX, cellY, CellWidth(s.windowSize, width), constants.OptionCellHeight, constants.OptionCornerRadius, fill)
	s.display.SetTextColor(internal.GetTheme().OptionTextColor)
	s.display.SetCursor(cellX+constants.OptionTextInset, cellY+constants.OptionTextOffset-constants.OptionCellOffset)
	s.display.Print(s.options[index])
}
