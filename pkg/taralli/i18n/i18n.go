package i18n

import (
	"encoding/json"
	"errors"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// ErrNotInitialized is returned by lookups before Init has loaded a bundle.
var ErrNotInitialized = errors.New("i18n: bundle not initialized")

// MessageFile is an in-memory message file. Name must carry the format
// extension (json or toml) so the right unmarshaler is picked.
type MessageFile struct {
	Name    string
	Content []byte
}

type state struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

var current *state

func newBundle(defaultLang language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// Init loads message files from disk and installs a localizer for the
// default language.
func Init(defaultLang language.Tag, paths []string) error {
	bundle := newBundle(defaultLang)
	for _, path := range paths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return err
		}
	}
	current = &state{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, defaultLang.String()),
	}
	return nil
}

// InitFromBytes loads message files from memory, for callers that embed
// their translations.
func InitFromBytes(defaultLang language.Tag, files []MessageFile) error {
	bundle := newBundle(defaultLang)
	for _, file := range files {
		if _, err := bundle.ParseMessageFileBytes(file.Content, file.Name); err != nil {
			return err
		}
	}
	current = &state{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, defaultLang.String()),
	}
	return nil
}

// SetLanguage switches the active language, keeping the loaded bundle.
func SetLanguage(lang language.Tag) error {
	if current == nil {
		return ErrNotInitialized
	}
	current = &state{
		bundle:    current.bundle,
		localizer: i18n.NewLocalizer(current.bundle, lang.String()),
	}
	return nil
}

// SetLanguageCode is SetLanguage for a BCP 47 code string.
func SetLanguageCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	return SetLanguage(lang)
}

// GetString resolves a localized string by message id.
func GetString(id string) (string, error) {
	if current == nil {
		return "", ErrNotInitialized
	}
	return current.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
}

// GetStringOr resolves a localized string, falling back to the given text
// when the id is unknown.
func GetStringOr(id, fallback string) string {
	if s, err := GetString(id); err == nil {
		return s
	}
	return fallback
}

// GetStringWithData resolves a localized string with template data.
func GetStringWithData(id string, data map[string]interface{}) (string, error) {
	if current == nil {
		return "", ErrNotInitialized
	}
	return current.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
}
