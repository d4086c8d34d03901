package constants

import (
	"os"
	"time"
)

const (
	DevModeEnvVar   = "ESPIR_DEV"
	ThemePathEnvVar = "ESPIR_THEME_PATH"
)

// IsDevMode reports whether the toolkit runs on a workstation instead of the device.
func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) != ""
}

// Command is a discrete navigation command produced by the caller's input layer.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandSelect
	CommandBack
)

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandSelect:
		return "select"
	case CommandBack:
		return "back"
	default:
		return "none"
	}
}

// Glyph size of the built-in 5x7 panel font at text size 1, including spacing.
const (
	GlyphWidth  = 6
	GlyphHeight = 8
)

// Button list geometry.
const (
	ButtonTop          = 4
	ButtonPitch        = 14
	ButtonHeight       = 12
	ButtonCornerRadius = 2
	ButtonTextInset    = 8
)

// Selector geometry. Cell offsets are relative to the selector's base y.
const (
	MaxSelectors = 5

	SelectorTop        = 3
	SelectorPitch      = 28
	SelectorClearInset = 3
	SelectorBaseHeight = 31
	PromptInset        = 5

	OptionLeftMargin   = 3
	OptionRowPitch     = 13
	OptionCellOffset   = 10
	OptionTextOffset   = 12
	OptionTextInset    = 2
	OptionCellHeight   = 12
	OptionCornerRadius = 2
)

// FlashHold is how long each phase of the confirmation pulse is held.
const FlashHold = 100 * time.Millisecond
