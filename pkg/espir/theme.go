package espir

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/pawndev/espir/pkg/espir/internal"
)

// ThemeFile is a palette on disk. Colours are hex strings such as "0x00FF00"
// or "#00FF00"; empty entries keep the default colour.
type ThemeFile struct {
	Background      string `json:"background" toml:"background"`
	Button          string `json:"button" toml:"button"`
	ButtonText      string `json:"button_text" toml:"button_text"`
	Highlight       string `json:"highlight" toml:"highlight"`
	HighlightedText string `json:"highlighted_text" toml:"highlighted_text"`
	Prompt          string `json:"prompt" toml:"prompt"`
	Selected        string `json:"selected" toml:"selected"`
	Unselected      string `json:"unselected" toml:"unselected"`
	Flash           string `json:"flash" toml:"flash"`
	OptionText      string `json:"option_text" toml:"option_text"`
}

// LoadThemeFile applies a JSON or TOML palette on top of the default theme.
// In dev mode an empty path falls back to ESPIR_THEME_PATH.
func LoadThemeFile(path string) error {
	if path == "" && constants.IsDevMode() {
		path = os.Getenv(constants.ThemePathEnvVar)
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading theme file: %w", err)
	}

	var tf ThemeFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &tf)
	default:
		err = json.Unmarshal(data, &tf)
	}
	if err != nil {
		return fmt.Errorf("error parsing theme file %s: %w", path, err)
	}

	internal.SetTheme(tf.apply(internal.DefaultTheme))
	internal.GetInternalLogger().Debug("Loaded theme", "path", path)

	return nil
}

func (tf ThemeFile) apply(theme internal.Theme) internal.Theme {
	for _, entry := range []struct {
		hex    string
		target *color.RGBA
	}{
		{tf.Background, &theme.BackgroundColor},
		{tf.Button, &theme.ButtonColor},
		{tf.ButtonText, &theme.ButtonTextColor},
		{tf.Highlight, &theme.HighlightColor},
		{tf.HighlightedText, &theme.HighlightedTextColor},
		{tf.Prompt, &theme.PromptColor},
		{tf.Selected, &theme.SelectedColor},
		{tf.Unselected, &theme.UnselectedColor},
		{tf.Flash, &theme.FlashColor},
		{tf.OptionText, &theme.OptionTextColor},
	} {
		if entry.hex == "" {
			continue
		}
		*entry.target = parseHexColor(entry.hex, *entry.target)
	}
	return theme
}

// parseHexColor returns fallback when hexStr is not a 24-bit hex colour.
func parseHexColor(hexStr string, fallback color.RGBA) color.RGBA {
	hexStr = strings.TrimPrefix(strings.TrimPrefix(hexStr, "#"), "0x")

	hex, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil || hex > 0xFFFFFF {
		internal.GetInternalLogger().Warn("Invalid theme colour, keeping default", "value", hexStr)
		return fallback
	}

	return internal.HexToColor(uint32(hex))
}

// ResetTheme restores the default palette.
func ResetTheme() {
	internal.SetTheme(internal.DefaultTheme)
}
