package espir

import (
	"log/slog"
	"os"

	"github.com/pawndev/espir/pkg/espir/internal"
)

type Options struct {
	LogFilename string
	LogLevel    string
	DebugLogs   bool // Also enables the toolkit's internal debug logging
	ThemePath   string

	// Non-zero hex values override the matching default theme colours.
	SelectedColorHex  uint32
	HighlightColorHex uint32
	BackgroundHex     uint32
}

// Init configures logging and theming. It is optional; the zero state logs
// errors to stderr and uses the default panel palette. A theme file that cannot
// be loaded is logged and the default palette is kept.
func Init(options Options) {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.DebugLogs || os.Getenv("ESPIR_DEBUG") != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if err := LoadThemeFile(options.ThemePath); err != nil {
		internal.GetLogger().Error("Failed to load theme", "error", err)
	}

	theme := internal.GetTheme()
	if options.SelectedColorHex != 0 {
		theme.SelectedColor = internal.HexToColor(options.SelectedColorHex)
	}
	if options.HighlightColorHex != 0 {
		theme.HighlightColor = internal.HexToColor(options.HighlightColorHex)
	}
	if options.BackgroundHex != 0 {
		theme.BackgroundColor = internal.HexToColor(options.BackgroundHex)
	}
	internal.SetTheme(theme)
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
