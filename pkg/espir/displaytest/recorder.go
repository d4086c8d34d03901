// Package displaytest provides an in-memory display that records paint calls.
package displaytest

import (
	"image/color"
	"time"
)

type OpKind int

const (
	OpFillRect OpKind = iota
	OpFillRoundRect
	OpSetCursor
	OpSetTextColor
	OpSetTextSize
	OpPrint
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill_rect"
	case OpFillRoundRect:
		return "fill_round_rect"
	case OpSetCursor:
		return "set_cursor"
	case OpSetTextColor:
		return "set_text_color"
	case OpSetTextSize:
		return "set_text_size"
	case OpPrint:
		return "print"
	default:
		return "unknown"
	}
}

// Op is one recorded call. Only the fields relevant to Kind are set.
// Print ops carry the cursor, colour and size in effect when printed.
type Op struct {
	Kind       OpKind
	X, Y, W, H int32
	Radius     int32
	Color      color.RGBA
	Size       int
	Text       string
}

// Recorder implements the display and delay capabilities without drawing.
type Recorder struct {
	width, height int32

	cursorX, cursorY int32
	textColor        color.RGBA
	textSize         int

	Ops    []Op
	Delays []time.Duration
}

func New(width, height int32) *Recorder {
	return &Recorder{width: width, height: height, textSize: 1}
}

func (r *Recorder) Width() int32  { return r.width }
func (r *Recorder) Height() int32 { return r.height }

func (r *Recorder) FillRect(x, y, w, h int32, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillRoundRect(x, y, w, h, radius int32, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRoundRect, X: x, Y: y, W: w, H: h, Radius: radius, Color: c})
}

func (r *Recorder) SetCursor(x, y int32) {
	r.cursorX, r.cursorY = x, y
	r.Ops = append(r.Ops, Op{Kind: OpSetCursor, X: x, Y: y})
}

func (r *Recorder) SetTextColor(c color.RGBA) {
	r.textColor = c
	r.Ops = append(r.Ops, Op{Kind: OpSetTextColor, Color: c})
}

func (r *Recorder) SetTextSize(size int) {
	r.textSize = size
	r.Ops = append(r.Ops, Op{Kind: OpSetTextSize, Size: size})
}

func (r *Recorder) Print(text string) {
	r.Ops = append(r.Ops, Op{
		Kind:  OpPrint,
		X:     r.cursorX,
		Y:     r.cursorY,
		Color: r.textColor,
		Size:  r.textSize,
		Text:  text,
	})
}

func (r *Recorder) Delay(d time.Duration) {
	r.Delays = append(r.Delays, d)
}

// Reset forgets recorded ops and delays but keeps the text state.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.Delays = nil
}

// Filter returns the recorded ops of the given kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Prints returns the printed strings, in order.
func (r *Recorder) Prints() []string {
	var out []string
	for _, op := range r.Filter(OpPrint) {
		out = append(out, op.Text)
	}
	return out
}
