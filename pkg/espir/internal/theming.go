package internal

import "image/color"

type Theme struct {
	BackgroundColor      color.RGBA // Screen and sub-menu clear colour
	ButtonColor          color.RGBA // Button pill in normal style
	ButtonTextColor      color.RGBA // Button label in normal style
	HighlightColor       color.RGBA // Button pill when highlighted
	HighlightedTextColor color.RGBA // Button label when highlighted
	PromptColor          color.RGBA // Selector prompt text
	SelectedColor        color.RGBA // Chosen option cell
	UnselectedColor      color.RGBA // Option cell not chosen
	FlashColor           color.RGBA // Confirmation pulse
	OptionTextColor      color.RGBA // Option labels
}

// DefaultTheme is the palette of the reference ST7735 panel.
var DefaultTheme = Theme{
	BackgroundColor:      HexToColor(0x000000),
	ButtonColor:          HexToColor(0x404040),
	ButtonTextColor:      HexToColor(0xFFFFFF),
	HighlightColor:       HexToColor(0x808080),
	HighlightedTextColor: HexToColor(0x000000),
	PromptColor:          HexToColor(0xFFFFFF),
	SelectedColor:        HexToColor(0x00FF00),
	UnselectedColor:      HexToColor(0xFF0000),
	FlashColor:           HexToColor(0x404040),
	OptionTextColor:      HexToColor(0xFFFFFF),
}

var currentTheme = DefaultTheme

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
