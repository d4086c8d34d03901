package espir

import (
	"image/color"
	"time"
)

// Display is the paint surface the widgets draw on. Coordinates are in panel
// pixels with the origin at the top-left corner. Text is drawn at the current
// cursor using the current text colour and size, the way Adafruit GFX panels work.
type Display interface {
	Width() int32
	Height() int32
	FillRect(x, y, w, h int32, c color.RGBA)
	FillRoundRect(x, y, w, h, radius int32, c color.RGBA)
	SetCursor(x, y int32)
	SetTextColor(c color.RGBA)
	SetTextSize(size int)
	Print(text string)
}

// Delayer is implemented by displays that need to present pending paint calls
// before a blocking wait. Displays without it fall back to time.Sleep.
type Delayer interface {
	Delay(d time.Duration)
}

func delayFunc(display Display) func(time.Duration) {
	if d, ok := display.(Delayer); ok {
		return d.Delay
	}
	return time.Sleep
}
