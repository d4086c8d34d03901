package espir

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/pawndev/espir/pkg/espir/displaytest"
	"github.com/pawndev/espir/pkg/espir/internal"
)

var (
	_ Display = (*displaytest.Recorder)(nil)
	_ Delayer = (*displaytest.Recorder)(nil)
)

func optionLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("o%d", i)
	}
	return out
}

func newTestSelector(t *testing.T, windowSize, maxSelected, count int) (*Selector, *displaytest.Recorder) {
	t.Helper()
	rec := displaytest.New(128, 160)
	s, err := newSelector(rec, 0, SelectorY(0), SelectorConfig{
		Prompt:      "Pick",
		Options:     optionLabels(count),
		WindowSize:  windowSize,
		MaxSelected: maxSelected,
	})
	if err != nil {
		t.Fatalf("newSelector: %v", err)
	}
	return s, rec
}

func assertSelected(t *testing.T, s *Selector, want ...int) {
	t.Helper()
	if got := s.Selected(); !slices.Equal(got, want) {
		t.Fatalf("expected selection %v, got %v", want, got)
	}
}

func TestSelectorDefaults(t *testing.T) {
	s, rec := newTestSelector(t, 3, 2, 5)
	assertSelected(t, s, 0)
	if s.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", s.Cursor())
	}
	if len(rec.Ops) != 0 {
		t.Fatalf("construction should not paint, got %d ops", len(rec.Ops))
	}
}

func TestNewSelectorPreconditions(t *testing.T) {
	tests := []struct {
		name string
		cfg  SelectorConfig
	}{
		{"no options", SelectorConfig{WindowSize: 1, MaxSelected: 1}},
		{"zero window", SelectorConfig{Options: optionLabels(3), WindowSize: 0, MaxSelected: 1}},
		{"zero max", SelectorConfig{Options: optionLabels(3), WindowSize: 3, MaxSelected: 0}},
		{"max above count", SelectorConfig{Options: optionLabels(3), WindowSize: 3, MaxSelected: 4}},
		{"count above labels", SelectorConfig{Options: optionLabels(3), WindowSize: 3, MaxSelected: 1, OptionCount: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newSelector(displaytest.New(128, 160), 0, 0, tt.cfg)
			if !errors.Is(err, ErrPrecondition) {
				t.Fatalf("expected ErrPrecondition, got %v", err)
			}
		})
	}
}

func TestSelectorOptionCountTruncatesLabels(t *testing.T) {
	s, err := newSelector(displaytest.New(128, 160), 0, 0, SelectorConfig{
		Options:     optionLabels(6),
		WindowSize:  2,
		MaxSelected: 1,
		OptionCount: 4,
	})
	if err != nil {
		t.Fatalf("newSelector: %v", err)
	}
	if got := len(s.Options()); got != 4 {
		t.Fatalf("expected 4 options, got %d", got)
	}
}

func TestSelectorSingleSelectReplaces(t *testing.T) {
	s, rec := newTestSelector(t, 4, 1, 8)
	theme := internal.GetTheme()

	s.cursor = 2
	if !s.Press() {
		t.Fatalf("expected selection change")
	}
	assertSelected(t, s, 2)

	cells := rec.Filter(displaytest.OpFillRoundRect)
	if len(cells) != 2 {
		t.Fatalf("expected 2 cell paints, got %d", len(cells))
	}
	if cells[0].X != 3 || cells[0].Color != theme.UnselectedColor {
		t.Fatalf("expected old cell unselected at x=3, got %+v", cells[0])
	}
	if cells[1].X != 65 || cells[1].Y != 13 || cells[1].Color != theme.SelectedColor {
		t.Fatalf("expected new cell selected at (65,13), got %+v", cells[1])
	}

	if s.Press() {
		t.Fatalf("pressing the sole choice again should report no change")
	}
	assertSelected(t, s, 2)
}

func TestSelectorSingleSelectAlwaysOne(t *testing.T) {
	s, _ := newTestSelector(t, 3, 1, 7)
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		s.cursor = r.Intn(7)
		s.Press()
		if got := s.Selected(); len(got) != 1 || got[0] != s.cursor {
			t.Fatalf("step %d: expected [%d], got %v", i, s.cursor, got)
		}
	}
}

func TestSelectorMultiSelectBounds(t *testing.T) {
	for maxSelected := 2; maxSelected <= 4; maxSelected++ {
		s, _ := newTestSelector(t, 3, maxSelected, 9)
		r := rand.New(rand.NewSource(int64(maxSelected)))

		for i := 0; i < 1000; i++ {
			s.cursor = r.Intn(9)
			s.Press()

			got := s.Selected()
			if len(got) < 1 || len(got) > maxSelected {
				t.Fatalf("max %d step %d: selection size %d out of bounds", maxSelected, i, len(got))
			}
			sorted := slices.Clone(got)
			slices.Sort(sorted)
			if len(slices.Compact(sorted)) != len(got) {
				t.Fatalf("max %d step %d: duplicate entries in %v", maxSelected, i, got)
			}
			if s.selected[0] == noSelection {
				t.Fatalf("max %d step %d: first slot empty", maxSelected, i)
			}
		}
	}
}

func TestSelectorMultiSelectRemoveAndSoleNoop(t *testing.T) {
	s, rec := newTestSelector(t, 3, 3, 5)

	s.cursor = 1
	s.Press()
	assertSelected(t, s, 1, 0)

	rec.Reset()
	if !s.Press() {
		t.Fatalf("expected removal")
	}
	assertSelected(t, s, 0)
	cells := rec.Filter(displaytest.OpFillRoundRect)
	if len(cells) != 1 || cells[0].Color != internal.GetTheme().UnselectedColor {
		t.Fatalf("expected removed cell repainted unselected, got %+v", cells)
	}

	s.cursor = 0
	rec.Reset()
	if s.Press() {
		t.Fatalf("removing the sole entry must be rejected")
	}
	assertSelected(t, s, 0)
	if len(rec.Ops) != 0 {
		t.Fatalf("rejected press should not paint, got %d ops", len(rec.Ops))
	}
}

func TestSelectorRemovesFromMiddle(t *testing.T) {
	s, _ := newTestSelector(t, 3, 3, 5)
	if err := s.SetSelected(4, 2, 1); err != nil {
		t.Fatalf("SetSelected: %v", err)
	}

	s.cursor = 2
	s.Press()
	assertSelected(t, s, 4, 1)
	if s.selected[2] != noSelection {
		t.Fatalf("expected trailing slot emptied, got %v", s.selected)
	}
}

func TestSelectorEvictsOldest(t *testing.T) {
	s, rec := newTestSelector(t, 4, 2, 4)
	if err := s.SetSelected(0, 1); err != nil {
		t.Fatalf("SetSelected: %v", err)
	}

	s.cursor = 2
	s.Press()
	assertSelected(t, s, 2, 0)

	cells := rec.Filter(displaytest.OpFillRoundRect)
	if len(cells) != 2 {
		t.Fatalf("expected eviction and insertion paints, got %d", len(cells))
	}
	if cells[0].X != ColumnX(1, 4, 128) || cells[0].Color != internal.GetTheme().UnselectedColor {
		t.Fatalf("expected evicted option 1 repainted unselected, got %+v", cells[0])
	}
	if cells[1].X != ColumnX(2, 4, 128) || cells[1].Color != internal.GetTheme().SelectedColor {
		t.Fatalf("expected option 2 painted selected, got %+v", cells[1])
	}

	s.cursor = 3
	s.Press()
	assertSelected(t, s, 3, 2)
}

func TestSelectorAtTopAtBottom(t *testing.T) {
	s, _ := newTestSelector(t, 3, 1, 7)

	for cursor := 0; cursor < 7; cursor++ {
		s.cursor = cursor
		if got, want := s.AtTop(), cursor < 3; got != want {
			t.Errorf("cursor %d: AtTop = %v, want %v", cursor, got, want)
		}
		if got, want := s.AtBottom(), cursor >= 4; got != want {
			t.Errorf("cursor %d: AtBottom = %v, want %v", cursor, got, want)
		}
	}
}

func TestSelectorMoveDownBoundary(t *testing.T) {
	tests := []struct {
		from  int
		want  int
		moved bool
	}{
		{0, 3, true},
		{3, 6, true},
		{4, 4, false},
		{6, 6, false},
	}

	for _, tt := range tests {
		s, rec := newTestSelector(t, 3, 1, 7)
		s.cursor = tt.from
		if moved := s.MoveDown(); moved != tt.moved {
			t.Errorf("from %d: moved = %v, want %v", tt.from, moved, tt.moved)
		}
		if s.cursor != tt.want {
			t.Errorf("from %d: cursor = %d, want %d", tt.from, s.cursor, tt.want)
		}
		if len(rec.Ops) != 0 {
			t.Errorf("from %d: MoveDown should not paint", tt.from)
		}
	}
}

func TestSelectorMoveUp(t *testing.T) {
	s, _ := newTestSelector(t, 3, 1, 7)
	s.cursor = 5
	if !s.MoveUp() || s.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", s.cursor)
	}
	if s.MoveUp() || s.cursor != 2 {
		t.Fatalf("expected no movement from the first row, got %d", s.cursor)
	}
}

func TestSelectorCursorStaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for ws := 1; ws <= 5; ws++ {
		for count := 1; count <= 12; count++ {
			s, _ := newTestSelector(t, ws, 1, count)

			for i := 0; i < 200; i++ {
				atTop, atBottom := s.AtTop(), s.AtBottom()
				switch r.Intn(4) {
				case 0:
					if moved := s.MoveDown(); moved == atBottom {
						t.Fatalf("ws %d count %d cursor %d: MoveDown moved=%v with AtBottom=%v", ws, count, s.cursor, moved, atBottom)
					}
				case 1:
					if moved := s.MoveUp(); moved == atTop {
						t.Fatalf("ws %d count %d cursor %d: MoveUp moved=%v with AtTop=%v", ws, count, s.cursor, moved, atTop)
					}
				case 2:
					s.MoveLeft()
				case 3:
					s.MoveRight()
				}

				if s.cursor < 0 || s.cursor >= count {
					t.Fatalf("ws %d count %d: cursor %d out of range", ws, count, s.cursor)
				}
			}
		}
	}
}

func TestSelectorMoveLeftRightWrap(t *testing.T) {
	s, rec := newTestSelector(t, 3, 1, 5)

	s.MoveLeft()
	if s.cursor != 4 {
		t.Fatalf("expected wrap to 4, got %d", s.cursor)
	}
	s.MoveRight()
	if s.cursor != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.cursor)
	}
	s.MoveRight()
	s.MoveRight()
	s.MoveRight()
	if s.cursor != 3 {
		t.Fatalf("expected move across rows to 3, got %d", s.cursor)
	}

	if got := len(rec.Filter(displaytest.OpFillRoundRect)); got != 10 {
		t.Fatalf("expected two cell paints per move, got %d", got)
	}
}

func TestSelectorFlashSelected(t *testing.T) {
	s, rec := newTestSelector(t, 3, 1, 5)
	theme := internal.GetTheme()

	s.FlashSelected()

	cells := rec.Filter(displaytest.OpFillRoundRect)
	if len(cells) != 2 {
		t.Fatalf("expected 2 cell paints, got %d", len(cells))
	}
	if cells[0].Color != theme.FlashColor {
		t.Fatalf("expected flash colour first, got %+v", cells[0].Color)
	}
	if cells[1].Color != theme.SelectedColor {
		t.Fatalf("expected selected colour restored, got %+v", cells[1].Color)
	}
	if want := []time.Duration{constants.FlashHold, constants.FlashHold}; !slices.Equal(rec.Delays, want) {
		t.Fatalf("expected delays %v, got %v", want, rec.Delays)
	}
	assertSelected(t, s, 0)
}

func TestSelectorRender(t *testing.T) {
	s, rec := newTestSelector(t, 3, 2, 7)
	s.Render()

	clear := rec.Ops[0]
	if clear.Kind != displaytest.OpFillRect {
		t.Fatalf("expected area clear first, got %v", clear.Kind)
	}
	if clear.Y != 0 || clear.W != 128 || clear.H != 31+13*2 {
		t.Fatalf("unexpected clear rect %+v", clear)
	}

	prints := rec.Prints()
	want := append([]string{"Pick"}, optionLabels(7)...)
	if !slices.Equal(prints, want) {
		t.Fatalf("expected prints %v, got %v", want, prints)
	}

	cells := rec.Filter(displaytest.OpFillRoundRect)
	for i, cell := range cells {
		wantColor := internal.GetTheme().UnselectedColor
		if i == 0 {
			wantColor = internal.GetTheme().SelectedColor
		}
		if cell.Color != wantColor {
			t.Errorf("cell %d: colour %+v, want %+v", i, cell.Color, wantColor)
		}
		if cell.Y != RowY(s.y, i/3) {
			t.Errorf("cell %d: y %d, want %d", i, cell.Y, RowY(s.y, i/3))
		}
	}
}

func TestSelectorSetSelected(t *testing.T) {
	s, _ := newTestSelector(t, 3, 2, 5)

	for _, bad := range [][]int{{}, {1, 2, 3}, {5}, {-1}, {2, 2}} {
		if err := s.SetSelected(bad...); !errors.Is(err, ErrPrecondition) {
			t.Errorf("SetSelected(%v): expected ErrPrecondition, got %v", bad, err)
		}
	}
	assertSelected(t, s, 0)

	if err := s.SetSelected(3); err != nil {
		t.Fatalf("SetSelected: %v", err)
	}
	assertSelected(t, s, 3)
	if !s.IsSelected(3) || s.IsSelected(0) {
		t.Fatalf("IsSelected disagrees with selection %v", s.Selected())
	}
}
