package espir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pawndev/espir/pkg/espir/constants"
	"github.com/pawndev/espir/pkg/espir/internal"
)

func TestLoadThemeFileJSON(t *testing.T) {
	t.Cleanup(ResetTheme)

	path := filepath.Join(t.TempDir(), "theme.json")
	content := `{"selected": "0x0000FF", "unselected": "#FFFF00", "flash": "nope"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := LoadThemeFile(path); err != nil {
		t.Fatalf("LoadThemeFile: %v", err)
	}

	theme := internal.GetTheme()
	if theme.SelectedColor != internal.HexToColor(0x0000FF) {
		t.Errorf("unexpected selected colour %+v", theme.SelectedColor)
	}
	if theme.UnselectedColor != internal.HexToColor(0xFFFF00) {
		t.Errorf("unexpected unselected colour %+v", theme.UnselectedColor)
	}
	if theme.FlashColor != internal.DefaultTheme.FlashColor {
		t.Errorf("invalid colour should keep default, got %+v", theme.FlashColor)
	}
	if theme.ButtonColor != internal.DefaultTheme.ButtonColor {
		t.Errorf("missing colour should keep default, got %+v", theme.ButtonColor)
	}
}

func TestLoadThemeFileTOMLFromEnv(t *testing.T) {
	t.Cleanup(ResetTheme)

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`highlight = "0x123456"`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(constants.DevModeEnvVar, "1")
	t.Setenv(constants.ThemePathEnvVar, path)

	if err := LoadThemeFile(""); err != nil {
		t.Fatalf("LoadThemeFile: %v", err)
	}
	if got := internal.GetTheme().HighlightColor; got != internal.HexToColor(0x123456) {
		t.Fatalf("unexpected highlight %+v", got)
	}
}

func TestLoadThemeFileErrors(t *testing.T) {
	t.Cleanup(ResetTheme)

	if err := LoadThemeFile(""); err != nil {
		t.Fatalf("empty path outside dev mode should be a no-op, got %v", err)
	}
	if err := LoadThemeFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected read error")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := LoadThemeFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestThemeAppliesToRendering(t *testing.T) {
	t.Cleanup(ResetTheme)

	theme := internal.DefaultTheme
	theme.HighlightColor = internal.HexToColor(0xABCDEF)
	internal.SetTheme(theme)

	m, rec := newTestMenu(t, "a", "b")
	m.Render()

	var found bool
	for _, op := range rec.Ops {
		if op.Color == theme.HighlightColor {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected highlighted button painted with theme colour")
	}
}
