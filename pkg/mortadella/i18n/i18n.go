package i18n

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var active *localization

type localization struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

// MessageFile is a message catalog held in memory, for hosts that embed
// their translations instead of shipping files.
type MessageFile struct {
	Name    string
	Content []byte
}

// Init loads message files (json or toml) and activates an English-based
// bundle. Calling Init is optional: without it every lookup falls back to
// the message's default text, which is always a usable key label.
func Init(messageFilePaths []string) error {
	bundle := newBundle()
	for _, path := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return err
		}
	}
	activate(bundle, language.English)
	return nil
}

// InitFromBytes is Init for in-memory catalogs.
func InitFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()
	for _, mf := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(mf.Content, mf.Name); err != nil {
			return err
		}
	}
	activate(bundle, language.English)
	return nil
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func activate(bundle *i18n.Bundle, lang language.Tag) {
	localizer := i18n.NewLocalizer(bundle, lang.String())
	active = &localization{localizer: localizer, bundle: bundle}
}

// SetLanguage switches the active language. No-op before Init.
func SetLanguage(lang language.Tag) {
	if active == nil {
		return
	}
	activate(active.bundle, lang)
}

// SetWithCode switches the active language from a BCP 47 code.
func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Message is an alias for i18n.Message to avoid requiring users to import
// go-i18n directly.
type Message = i18n.Message

// Localize resolves a message for the active language. The DefaultMessage
// provides the message ID and fallback text; lookups never fail, they fall
// back to the default's Other text. Key labels must always render, so there
// is no error path here.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}
	if active == nil {
		return message.Other
	}

	config := &i18n.LocalizeConfig{DefaultMessage: message}
	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := active.localizer.Localize(config)
	if err != nil {
		return message.Other
	}
	return msg
}
