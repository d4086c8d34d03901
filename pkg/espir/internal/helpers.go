package internal

import "image/color"

func HexToColor(hex uint32) color.RGBA {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func ColorToHex(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// MapRange re-maps x from [inMin, inMax] onto [outMin, outMax] with integer math.
// A degenerate input range maps everything to outMin.
func MapRange(x, inMin, inMax, outMin, outMax int32) int32 {
	if inMax == inMin {
		return outMin
	}
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
