package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/holoplot/go-evdev"
	"github.com/pawndev/espir/pkg/espir"
	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
	"golang.org/x/term"
)

// inputEvent is a navigation command or a request to quit the demo.
type inputEvent struct {
	Command constants.Command
	Quit    bool
}

type commandSource interface {
	Events() <-chan inputEvent
	Close() error
}

var sdlKeyMap = map[sdl.Keycode]constants.Command{
	sdl.K_UP:        constants.CommandUp,
	sdl.K_DOWN:      constants.CommandDown,
	sdl.K_LEFT:      constants.CommandLeft,
	sdl.K_RIGHT:     constants.CommandRight,
	sdl.K_RETURN:    constants.CommandSelect,
	sdl.K_SPACE:     constants.CommandSelect,
	sdl.K_a:         constants.CommandSelect,
	sdl.K_b:         constants.CommandBack,
	sdl.K_BACKSPACE: constants.CommandBack,
}

// sdlEvent translates one SDL event; ok is false for events the demo ignores.
func sdlEvent(event sdl.Event) (inputEvent, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return inputEvent{Quit: true}, true
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return inputEvent{}, false
		}
		if e.Keysym.Sym == sdl.K_ESCAPE || e.Keysym.Sym == sdl.K_q {
			return inputEvent{Quit: true}, true
		}
		if cmd, ok := sdlKeyMap[e.Keysym.Sym]; ok {
			return inputEvent{Command: cmd}, true
		}
	}
	return inputEvent{}, false
}

var evdevKeyMap = map[evdev.EvCode]constants.Command{
	evdev.KEY_UP:         constants.CommandUp,
	evdev.KEY_DOWN:       constants.CommandDown,
	evdev.KEY_LEFT:       constants.CommandLeft,
	evdev.KEY_RIGHT:      constants.CommandRight,
	evdev.KEY_ENTER:      constants.CommandSelect,
	evdev.KEY_BACKSPACE:  constants.CommandBack,
	evdev.BTN_DPAD_UP:    constants.CommandUp,
	evdev.BTN_DPAD_DOWN:  constants.CommandDown,
	evdev.BTN_DPAD_LEFT:  constants.CommandLeft,
	evdev.BTN_DPAD_RIGHT: constants.CommandRight,
	evdev.BTN_SOUTH:      constants.CommandSelect,
	evdev.BTN_EAST:       constants.CommandBack,
}

// evdevSource reads key presses from a Linux input device, such as GPIO
// buttons exposed through gpio-keys.
type evdevSource struct {
	device *evdev.InputDevice
	events chan inputEvent
	closed *atomic.Bool
}

func newEvdevSource(path string) (*evdevSource, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input device %s: %w", path, err)
	}

	name, _ := device.Name()
	espir.GetLogger().Info("Reading buttons from input device", "path", path, "name", name)

	s := &evdevSource{
		device: device,
		events: make(chan inputEvent, 16),
		closed: atomic.NewBool(false),
	}
	go s.read()

	return s, nil
}

func (s *evdevSource) read() {
	defer close(s.events)

	for {
		event, err := s.device.ReadOne()
		if err != nil {
			if !s.closed.Load() {
				espir.GetLogger().Error("Input device read failed", "error", err)
			}
			return
		}

		// Value 1 is a press; releases (0) and autorepeat (2) are ignored.
		if event.Type != evdev.EV_KEY || event.Value != 1 {
			continue
		}
		if event.Code == evdev.KEY_ESC {
			s.events <- inputEvent{Quit: true}
			continue
		}
		if cmd, ok := evdevKeyMap[event.Code]; ok {
			s.events <- inputEvent{Command: cmd}
		}
	}
}

func (s *evdevSource) Events() <-chan inputEvent {
	return s.events
}

func (s *evdevSource) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.device.Close()
}

// keySource reads commands from a byte stream: arrow keys or WASD to move,
// Enter or space to select, Backspace or b to go back, q or Ctrl-C to quit.
type keySource struct {
	events  chan inputEvent
	closed  *atomic.Bool
	restore func() error
}

// newTerminalKeySource puts stdin into raw mode when it is a terminal.
func newTerminalKeySource() (*keySource, error) {
	restore := func() error { return nil }

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("failed to enable raw mode: %w", err)
		}
		restore = func() error { return term.Restore(fd, state) }
	}

	s := newKeySource(os.Stdin)
	s.restore = restore
	return s, nil
}

func newKeySource(r io.Reader) *keySource {
	s := &keySource{
		events:  make(chan inputEvent, 16),
		closed:  atomic.NewBool(false),
		restore: func() error { return nil },
	}
	go s.read(bufio.NewReader(r))
	return s
}

func (s *keySource) read(r *bufio.Reader) {
	defer close(s.events)

	for {
		b, err := r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) && !s.closed.Load() {
				espir.GetLogger().Error("Key read failed", "error", err)
			}
			return
		}

		event, ok := decodeKey(b, r)
		if !ok {
			continue
		}
		if s.closed.Load() {
			return
		}
		s.events <- event
	}
}

func decodeKey(b byte, r *bufio.Reader) (inputEvent, bool) {
	switch b {
	case 'w', 'k':
		return inputEvent{Command: constants.CommandUp}, true
	case 's', 'j':
		return inputEvent{Command: constants.CommandDown}, true
	case 'a', 'h':
		return inputEvent{Command: constants.CommandLeft}, true
	case 'd', 'l':
		return inputEvent{Command: constants.CommandRight}, true
	case '\r', '\n', ' ':
		return inputEvent{Command: constants.CommandSelect}, true
	case 'b', 0x7f, 0x08:
		return inputEvent{Command: constants.CommandBack}, true
	case 'q', 0x03:
		return inputEvent{Quit: true}, true
	case 0x1b:
		// CSI arrow keys: ESC [ A..D
		if next, err := r.ReadByte(); err != nil || next != '[' {
			return inputEvent{}, false
		}
		final, err := r.ReadByte()
		if err != nil {
			return inputEvent{}, false
		}
		switch final {
		case 'A':
			return inputEvent{Command: constants.CommandUp}, true
		case 'B':
			return inputEvent{Command: constants.CommandDown}, true
		case 'C':
			return inputEvent{Command: constants.CommandRight}, true
		case 'D':
			return inputEvent{Command: constants.CommandLeft}, true
		}
	}
	return inputEvent{}, false
}

func (s *keySource) Events() <-chan inputEvent {
	return s.events
}

func (s *keySource) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.restore()
}

// parseScript turns "down,select,right" into commands for headless runs.
func parseScript(script string) ([]constants.Command, error) {
	var cmds []constants.Command
	for _, word := range strings.Split(script, ",") {
		word = strings.TrimSpace(strings.ToLower(word))
		if word == "" {
			continue
		}
		cmd, ok := scriptCommands[word]
		if !ok {
			return nil, fmt.Errorf("unknown command %q", word)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

var scriptCommands = map[string]constants.Command{
	constants.CommandUp.String():     constants.CommandUp,
	constants.CommandDown.String():   constants.CommandDown,
	constants.CommandLeft.String():   constants.CommandLeft,
	constants.CommandRight.String():  constants.CommandRight,
	constants.CommandSelect.String(): constants.CommandSelect,
	constants.CommandBack.String():   constants.CommandBack,
}
