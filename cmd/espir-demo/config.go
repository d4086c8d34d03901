package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pawndev/espir/pkg/espir"
	"github.com/pawndev/espir/pkg/espir/i18n"
	"gopkg.in/yaml.v3"
)

const defaultWindowSize = 4

type SelectorDefinition struct {
	Prompt      string   `toml:"prompt" yaml:"prompt" json:"prompt"`
	Options     []string `toml:"options" yaml:"options" json:"options"`
	Window      int      `toml:"window" yaml:"window" json:"window"`
	MaxSelected int      `toml:"max_selected" yaml:"max_selected" json:"max_selected"`
	Selected    []int    `toml:"selected" yaml:"selected" json:"selected"`
}

type ButtonDefinition struct {
	Label     string               `toml:"label" yaml:"label" json:"label"`
	Action    string               `toml:"action" yaml:"action" json:"action"`
	Selectors []SelectorDefinition `toml:"selectors" yaml:"selectors" json:"selectors"`
}

// MenuDefinition is the on-disk description of a menu tree.
type MenuDefinition struct {
	Width    int32              `toml:"width" yaml:"width" json:"width"`
	Height   int32              `toml:"height" yaml:"height" json:"height"`
	Language string             `toml:"language" yaml:"language" json:"language"`
	Messages []string           `toml:"messages" yaml:"messages" json:"messages"`
	Buttons  []ButtonDefinition `toml:"buttons" yaml:"buttons" json:"buttons"`
}

func LoadMenuDefinition(path string) (*MenuDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu definition: %w", err)
	}

	var def MenuDefinition
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &def)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &def)
	case ".json":
		err = json.Unmarshal(data, &def)
	default:
		return nil, fmt.Errorf("unsupported menu definition format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse menu definition %s: %w", path, err)
	}

	def.applyDefaults()

	// Message files are resolved next to the definition.
	for i, msg := range def.Messages {
		if !filepath.IsAbs(msg) {
			def.Messages[i] = filepath.Join(filepath.Dir(path), msg)
		}
	}

	return &def, nil
}

func (md *MenuDefinition) applyDefaults() {
	if md.Width == 0 {
		md.Width = 128
	}
	if md.Height == 0 {
		md.Height = 160
	}

	for i := range md.Buttons {
		for j := range md.Buttons[i].Selectors {
			sel := &md.Buttons[i].Selectors[j]
			if sel.Window == 0 {
				sel.Window = min(len(sel.Options), defaultWindowSize)
			}
			if sel.MaxSelected == 0 {
				sel.MaxSelected = 1
			}
		}
	}
}

// LoadTranslations loads the definition's message files and selects its language.
func (md *MenuDefinition) LoadTranslations() error {
	if len(md.Messages) == 0 {
		return nil
	}

	if err := i18n.InitI18N(md.Messages); err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	if md.Language != "" {
		if err := i18n.SetWithCode(md.Language); err != nil {
			return fmt.Errorf("invalid language %q: %w", md.Language, err)
		}
	}

	return nil
}

// Build creates the menu on display with translated labels. Actions keep the
// untranslated label so callers can match on them.
func (md *MenuDefinition) Build(display espir.Display) (*espir.Menu, error) {
	items := make([]espir.MenuItem, len(md.Buttons))
	for i, b := range md.Buttons {
		action := b.Action
		if action == "" {
			action = b.Label
		}
		items[i] = espir.MenuItem{Label: i18n.Label(b.Label), Action: action}
	}

	menu, err := espir.NewMenu(display, items)
	if err != nil {
		return nil, err
	}

	for i, b := range md.Buttons {
		button := menu.Buttons()[i]
		for _, sel := range b.Selectors {
			before := len(button.Selectors())
			err := button.AddSelector(espir.SelectorConfig{
				Prompt:      i18n.Label(sel.Prompt),
				Options:     i18n.Labels(sel.Options),
				WindowSize:  sel.Window,
				MaxSelected: sel.MaxSelected,
			})
			if err != nil {
				return nil, fmt.Errorf("button %q: %w", b.Label, err)
			}

			selectors := button.Selectors()
			if len(sel.Selected) == 0 || len(selectors) == before {
				continue
			}
			if err := selectors[before].SetSelected(sel.Selected...); err != nil {
				return nil, fmt.Errorf("button %q: %w", b.Label, err)
			}
		}
	}

	return menu, nil
}
