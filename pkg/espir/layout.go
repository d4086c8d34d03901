package espir

import (
	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/pawndev/espir/pkg/espir/internal"
)

// ColumnX returns the left edge of the cell holding option index in a grid of
// windowSize columns across a display of the given width. Columns are spread
// linearly from the left margin to width - width/windowSize.
func ColumnX(index, windowSize int, width int32) int32 {
	ws := int32(windowSize)
	col := int32(index % windowSize)
	return internal.MapRange(col, 0, ws-1, constants.OptionLeftMargin, width-width/ws)
}

// Row returns the grid row of option index.
func Row(index, windowSize int) int {
	return index / windowSize
}

// CellWidth is 90% of one column.
func CellWidth(windowSize int, width int32) int32 {
	return (width / int32(windowSize)) * 9 / 10
}

// RowY returns the top of the cells in the given row of a selector placed at baseY.
func RowY(baseY int32, row int) int32 {
	return baseY + constants.OptionCellOffset + constants.OptionRowPitch*int32(row)
}

// SelectorHeight is the height cleared when a selector with the given number of
// grid rows is rendered.
func SelectorHeight(rows int) int32 {
	return constants.SelectorBaseHeight + constants.OptionRowPitch*int32(rows-1)
}

// SelectorY returns the base y of the selector appended at position (0-based).
func SelectorY(position int) int32 {
	return constants.SelectorTop + constants.SelectorPitch*int32(position)
}

// ButtonY returns the top of the button at position (0-based) in the menu list.
func ButtonY(position int) int32 {
	return constants.ButtonTop + constants.ButtonPitch*int32(position)
}
