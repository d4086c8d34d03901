// Espir-demo drives a menu definition on an SDL window, a terminal or a
// headless recorder.
//
// Usage:
//
//	espir-demo run --config menu.toml [flags]
//	espir-demo validate --config menu.toml
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pawndev/espir/pkg/espir"
	"github.com/pawndev/espir/pkg/espir/platform/sdl2"
	"github.com/pawndev/espir/pkg/espir/platform/terminal"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "espir-demo",
	Short: "Preview espir menus",
	Long: `Loads a menu definition (TOML, YAML or JSON) and drives it with
up/down/left/right/select/back commands, the way a panel's buttons would.`,
	SilenceUsage: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "menu.toml", "Path to the menu definition")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}

var (
	backend   string
	inputKind string
	device    string
	logFile   string
	logLevel  string
	script    string
	themePath string
	debugLogs bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the menu and navigate it",
	Example: `  # Preview in an SDL window using the keyboard
  espir-demo run --config menu.toml

  # Preview in the terminal
  espir-demo run --backend terminal

  # Drive with GPIO buttons exposed as an input device
  espir-demo run --backend sdl2 --input evdev --device /dev/input/event0

  # Replay commands without a display and print the final frame
  espir-demo run --backend headless --script down,select,right,select`,
	RunE: runDemo,
}

func init() {
	runCmd.Flags().StringVar(&backend, "backend", "sdl2", "Display backend (sdl2, terminal, headless)")
	runCmd.Flags().StringVar(&inputKind, "input", "keyboard", "Input source (keyboard, evdev)")
	runCmd.Flags().StringVar(&device, "device", "/dev/input/event0", "Input device for --input evdev")
	runCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to logs/<name> instead of stderr")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().StringVar(&script, "script", "", "Comma-separated commands for --backend headless")
	runCmd.Flags().StringVar(&themePath, "theme", "", "JSON or TOML palette file")
	runCmd.Flags().BoolVar(&debugLogs, "debug", false, "Enable toolkit debug logging")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a menu definition loads and builds",
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := loadDefinition()
		if err != nil {
			return err
		}

		display := terminal.New(io.Discard, def.Width, def.Height)
		menu, err := def.Build(display)
		if err != nil {
			return err
		}

		for _, button := range menu.Buttons() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %d selector(s)\n", button.Label(), button.Action(), len(button.Selectors()))
		}
		return nil
	},
}

func loadDefinition() (*MenuDefinition, error) {
	def, err := LoadMenuDefinition(configPath)
	if err != nil {
		return nil, err
	}
	if err := def.LoadTranslations(); err != nil {
		return nil, err
	}
	return def, nil
}

type presenter interface {
	espir.Display
	Present()
}

func runDemo(cmd *cobra.Command, args []string) error {
	espir.Init(espir.Options{
		LogFilename: logFile,
		LogLevel:    logLevel,
		DebugLogs:   debugLogs,
		ThemePath:   themePath,
	})
	defer espir.Close()

	def, err := loadDefinition()
	if err != nil {
		return err
	}

	switch backend {
	case "headless":
		return runHeadless(cmd.OutOrStdout(), def)
	case "terminal":
		return runTerminal(def)
	case "sdl2":
		return runSDL(def)
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
}

func runHeadless(out io.Writer, def *MenuDefinition) error {
	cmds, err := parseScript(script)
	if err != nil {
		return err
	}

	display := terminal.New(io.Discard, def.Width, def.Height)
	navigator, err := newNavigator(def, display)
	if err != nil {
		return err
	}

	for _, c := range cmds {
		report(out, navigator.Handle(c))
	}

	fmt.Fprint(out, display.Plain())
	return nil
}

func runTerminal(def *MenuDefinition) error {
	display := terminal.New(os.Stdout, def.Width, def.Height)
	navigator, err := newNavigator(def, display)
	if err != nil {
		return err
	}

	source, err := openSource(func() (commandSource, error) { return newTerminalKeySource() })
	if err != nil {
		return err
	}
	defer source.Close()

	fmt.Fprint(os.Stdout, "\x1b[2J")
	display.Present()

	for event := range source.Events() {
		if event.Quit {
			break
		}
		navigator.Handle(event.Command)
		display.Present()
	}
	return nil
}

func runSDL(def *MenuDefinition) error {
	options := sdl2.DefaultOptions()
	options.Width, options.Height = def.Width, def.Height

	display, err := sdl2.New(options)
	if err != nil {
		return err
	}
	defer display.Close()

	navigator, err := newNavigator(def, display)
	if err != nil {
		return err
	}
	display.Present()

	// SDL events are polled on this goroutine; evdev presses arrive on a channel.
	var buttons <-chan inputEvent
	if inputKind == "evdev" {
		source, err := openSource(nil)
		if err != nil {
			return err
		}
		defer source.Close()
		buttons = source.Events()
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			input, ok := sdlEvent(event)
			if !ok {
				continue
			}
			if !handle(navigator, display, input) {
				return nil
			}
		}

		select {
		case input, ok := <-buttons:
			if !ok {
				return nil
			}
			if !handle(navigator, display, input) {
				return nil
			}
		default:
		}

		sdl.Delay(16)
	}
}

func handle(navigator *espir.Navigator, display presenter, input inputEvent) bool {
	if input.Quit {
		return false
	}
	result := navigator.Handle(input.Command)
	if result.Action == espir.NavigationActionActivated {
		espir.GetLogger().Info("Button activated", "action", result.Button)
	}
	display.Present()
	return true
}

// openSource opens the evdev device for --input evdev, or falls back to
// keyboard when one is given.
func openSource(keyboard func() (commandSource, error)) (commandSource, error) {
	switch inputKind {
	case "evdev":
		return newEvdevSource(device)
	case "keyboard":
		if keyboard == nil {
			return nil, fmt.Errorf("keyboard input is read by the display backend")
		}
		return keyboard()
	default:
		return nil, fmt.Errorf("unknown input %q", inputKind)
	}
}

func newNavigator(def *MenuDefinition, display espir.Display) (*espir.Navigator, error) {
	menu, err := def.Build(display)
	if err != nil {
		return nil, err
	}

	navigator := espir.NewNavigator(menu)
	navigator.Start()
	return navigator, nil
}

func report(out io.Writer, result espir.NavigationResult) {
	if result.Action == espir.NavigationActionNone {
		return
	}

	line := fmt.Sprintf("%s %s", result.Action, result.Button)
	if result.Selector >= 0 {
		line += fmt.Sprintf(" selector=%d", result.Selector)
	}
	if result.Action == espir.NavigationActionPressed {
		selected := make([]string, len(result.Selected))
		for i, index := range result.Selected {
			selected[i] = fmt.Sprint(index)
		}
		line += fmt.Sprintf(" selected=[%s] changed=%t", strings.Join(selected, ","), result.Changed)
	}
	fmt.Fprintln(out, line)
}
