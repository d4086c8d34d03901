// Package terminal is a Display that previews a panel in a terminal. Every
// character cell stands for one glyph of the panel font at text size 1.
package terminal

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pawndev/espir/pkg/espir"
	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/pawndev/espir/pkg/espir/internal"
)

var (
	_ espir.Display = (*Display)(nil)
	_ espir.Delayer = (*Display)(nil)
)

type cell struct {
	r      rune
	fg, bg color.RGBA
}

type Display struct {
	out      io.Writer
	renderer *lipgloss.Renderer

	width, height int32
	cols, rows    int
	cells         []cell

	cursorX, cursorY int32
	textColor        color.RGBA
	textSize         int
}

// New creates a display of width x height panel pixels that writes frames to out.
func New(out io.Writer, width, height int32) *Display {
	cols := int(width / constants.GlyphWidth)
	rows := int(height / constants.GlyphHeight)

	d := &Display{
		out:       out,
		renderer:  lipgloss.NewRenderer(out),
		width:     width,
		height:    height,
		cols:      cols,
		rows:      rows,
		cells:     make([]cell, cols*rows),
		textColor: internal.HexToColor(0xFFFFFF),
		textSize:  1,
	}
	d.FillRect(0, 0, width, height, internal.HexToColor(0x000000))
	return d
}

func (d *Display) Width() int32  { return d.width }
func (d *Display) Height() int32 { return d.height }

// FillRect paints every cell whose centre lies inside the rectangle.
func (d *Display) FillRect(x, y, w, h int32, c color.RGBA) {
	for row := 0; row < d.rows; row++ {
		cy := int32(row)*constants.GlyphHeight + constants.GlyphHeight/2
		if cy < y || cy >= y+h {
			continue
		}
		for col := 0; col < d.cols; col++ {
			cx := int32(col)*constants.GlyphWidth + constants.GlyphWidth/2
			if cx < x || cx >= x+w {
				continue
			}
			d.cells[row*d.cols+col] = cell{r: ' ', fg: c, bg: c}
		}
	}
}

// FillRoundRect ignores the radius; corners are smaller than a cell.
func (d *Display) FillRoundRect(x, y, w, h, _ int32, c color.RGBA) {
	d.FillRect(x, y, w, h, c)
}

func (d *Display) SetCursor(x, y int32) {
	d.cursorX, d.cursorY = x, y
}

func (d *Display) SetTextColor(c color.RGBA) {
	d.textColor = c
}

func (d *Display) SetTextSize(size int) {
	if size < 1 {
		size = 1
	}
	d.textSize = size
}

// Print writes text into the row nearest the cursor, keeping cell backgrounds.
func (d *Display) Print(text string) {
	row := int((d.cursorY + constants.GlyphHeight/2) / constants.GlyphHeight)
	col := int((d.cursorX + constants.GlyphWidth/2) / constants.GlyphWidth)

	for _, r := range text {
		if row >= 0 && row < d.rows && col >= 0 && col < d.cols {
			c := &d.cells[row*d.cols+col]
			c.r = r
			c.fg = d.textColor
		}
		col += d.textSize
	}

	d.cursorX += int32(len([]rune(text)) * constants.GlyphWidth * d.textSize)
}

// Plain returns the current frame without colours.
func (d *Display) Plain() string {
	var b strings.Builder
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			b.WriteRune(d.cells[row*d.cols+col].r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Frame returns the current frame with colours applied.
func (d *Display) Frame() string {
	var b strings.Builder
	for row := 0; row < d.rows; row++ {
		line := d.cells[row*d.cols : (row+1)*d.cols]
		start := 0
		for col := 1; col <= len(line); col++ {
			if col < len(line) && line[col].fg == line[start].fg && line[col].bg == line[start].bg {
				continue
			}
			var run strings.Builder
			for _, c := range line[start:col] {
				run.WriteRune(c.r)
			}
			b.WriteString(d.style(line[start]).Render(run.String()))
			start = col
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Present redraws the frame from the top-left corner of the terminal.
func (d *Display) Present() {
	fmt.Fprint(d.out, "\x1b[H"+strings.ReplaceAll(d.Frame(), "\n", "\r\n"))
}

// Delay presents the frame, then blocks.
func (d *Display) Delay(duration time.Duration) {
	d.Present()
	time.Sleep(duration)
}

func (d *Display) style(c cell) lipgloss.Style {
	return d.renderer.NewStyle().
		Foreground(lipgloss.Color(hexColor(c.fg))).
		Background(lipgloss.Color(hexColor(c.bg)))
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%06X", internal.ColorToHex(c))
}
