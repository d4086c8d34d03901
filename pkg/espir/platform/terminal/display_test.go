package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pawndev/espir/pkg/espir"
	"github.com/pawndev/espir/pkg/espir/internal"
)

func TestDisplayGrid(t *testing.T) {
	d := New(&bytes.Buffer{}, 128, 160)
	if d.cols != 21 || d.rows != 20 {
		t.Fatalf("expected 21x20 cells, got %dx%d", d.cols, d.rows)
	}

	lines := strings.Split(strings.TrimSuffix(d.Plain(), "\n"), "\n")
	if len(lines) != 20 || len([]rune(lines[0])) != 21 {
		t.Fatalf("unexpected frame shape %d lines", len(lines))
	}
}

func TestDisplayFillAndPrint(t *testing.T) {
	d := New(&bytes.Buffer{}, 128, 160)
	red := internal.HexToColor(0xFF0000)

	d.FillRect(6, 8, 12, 8, red)
	if got := d.cells[1*d.cols+1].bg; got != red {
		t.Fatalf("expected cell (1,1) red, got %+v", got)
	}
	if got := d.cells[1*d.cols+3].bg; got == red {
		t.Fatalf("cell (3,1) lies outside the rectangle")
	}

	d.SetCursor(6, 8)
	d.SetTextColor(internal.HexToColor(0x00FF00))
	d.Print("hi")
	if got := d.cells[1*d.cols+1]; got.r != 'h' || got.bg != red || got.fg != internal.HexToColor(0x00FF00) {
		t.Fatalf("unexpected cell %+v", got)
	}
	if d.cursorX != 6+12 {
		t.Fatalf("expected cursor advanced to 18, got %d", d.cursorX)
	}

	d.SetCursor(120, 8)
	d.Print("overflow")
}

func TestDisplayRendersMenu(t *testing.T) {
	var out bytes.Buffer
	d := New(&out, 128, 160)

	menu, err := espir.NewMenu(d, []espir.MenuItem{{Label: "Power"}, {Label: "Mode"}})
	if err != nil {
		t.Fatalf("NewMenu: %v", err)
	}
	menu.Render()

	plain := d.Plain()
	if !strings.Contains(plain, "Power") || !strings.Contains(plain, "Mode") {
		t.Fatalf("expected labels in frame:\n%s", plain)
	}

	d.Present()
	if !strings.HasPrefix(out.String(), "\x1b[H") {
		t.Fatalf("expected cursor-home prefix")
	}
	if !strings.Contains(out.String(), "Power") {
		t.Fatalf("expected label in presented frame")
	}
}
