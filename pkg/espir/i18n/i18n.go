// Package i18n localises button labels, prompts and option labels.
// Labels double as message IDs; a label without a translation is shown as is.
package i18n

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func InitI18N(messageFilePaths []string) error {
	bundle := newBundle()

	for _, messageFile := range messageFilePaths {
		_, err := bundle.LoadMessageFile(messageFile)
		if err != nil {
			return err
		}
	}

	i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}

	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		_, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name)
		if err != nil {
			return err
		}
	}

	i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}

	return nil
}

func SetLanguage(lang language.Tag) {
	if i == nil {
		return
	}
	i = &I18N{localizer: i18n.NewLocalizer(i.bundle, lang.String()), bundle: i.bundle}
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Reset drops loaded translations; Label then returns its input.
func Reset() {
	i = nil
}

// Label returns the translation of key, or key itself when no bundle is loaded
// or the key has no message.
func Label(key string) string {
	if i == nil || key == "" {
		return key
	}

	msg, err := i.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: key, Other: key},
	})
	if err != nil {
		return key
	}
	return msg
}

// Labels translates every key.
func Labels(keys []string) []string {
	out := make([]string, len(keys))
	for idx, key := range keys {
		out[idx] = Label(key)
	}
	return out
}
